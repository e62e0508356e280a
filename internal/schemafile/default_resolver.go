package schemafile

import "github.com/tauraamui/hubschema/pkg/schemadef"

func DefaultResolver() schemadef.Resolver {
	return defaultResolver{}
}

type defaultResolver struct{}

func (d defaultResolver) Resolve() (schemadef.Values, error) {
	return load()
}
