// Package schemafile exposes the schema definition file stored under the
// user's config directory, or wherever HUB_SCHEMA_FILE points.
package schemafile

import (
	"github.com/tauraamui/hubschema/internal/schemafile"
	"github.com/tauraamui/hubschema/pkg/schemadef"
)

type Resolver interface {
	schemadef.Resolver
}

type Creator interface {
	schemadef.Creator
}

type Destroyer interface {
	schemadef.Destroyer
}

func DefaultResolver() Resolver {
	return schemafile.DefaultResolver()
}

func DefaultCreator() Creator {
	return schemafile.DefaultCreator()
}

func DefaultDestroyer() Destroyer {
	return schemafile.DefaultDestroyer()
}
