package schemafile

import "github.com/tauraamui/hubschema/pkg/schemadef"

func DefaultDestroyer() schemadef.Destroyer {
	return defaultDestroyer{}
}

type defaultDestroyer struct{}

func (d defaultDestroyer) Destroy() error {
	return destroy()
}
