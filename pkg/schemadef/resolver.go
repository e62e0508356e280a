package schemadef

import "errors"

var ErrSchemaFileAlreadyExists = errors.New("schema file already exists")

type Resolver interface {
	Resolve() (Values, error)
}

type Creator interface {
	Create() error
}

type Destroyer interface {
	Destroy() error
}
