package schemafile

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tauraamui/xerror"
)

const (
	vendorName     = "tauraamui"
	appName        = "hubschema"
	schemaFileName = "schema.json"
	schemaFileEnv  = "HUB_SCHEMA_FILE"
)

var fs afero.Fs = afero.NewOsFs()

func resolveSchemaPath() (string, error) {
	schemaPath := os.Getenv(schemaFileEnv)
	if len(schemaPath) > 0 {
		return schemaPath, nil
	}

	configParentDir, err := userConfigDir()
	if err != nil {
		return "", xerror.Errorf("unable to resolve %s location: %w", schemaFileName, err)
	}

	return filepath.Join(
		configParentDir,
		vendorName,
		appName,
		schemaFileName), nil
}

var userConfigDir = func() (string, error) {
	return os.UserConfigDir()
}
