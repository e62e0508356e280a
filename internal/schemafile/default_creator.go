package schemafile

import "github.com/tauraamui/hubschema/pkg/schemadef"

func DefaultCreator() schemadef.Creator {
	return defaultCreator{}
}

type defaultCreator struct{}

func (d defaultCreator) Create() error {
	return create()
}
