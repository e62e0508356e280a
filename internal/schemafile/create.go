package schemafile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/tauraamui/hubschema/pkg/log"
	"github.com/tauraamui/hubschema/pkg/schema"
	"github.com/tauraamui/hubschema/pkg/schemadef"
	"github.com/tauraamui/xerror"
)

func create() error {
	data, err := loadRawDefaultSchemaFile()
	if err != nil {
		return xerror.Errorf("unable to init default schema file into memory: %w", err)
	}

	path, err := resolveSchemaPath()
	if err != nil {
		return err
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	if err := writeSchemaFileToDisk(data, path, false); err != nil {
		if errors.Is(err, os.ErrExist) {
			return schemadef.ErrSchemaFileAlreadyExists
		}
		return err
	}

	log.Info("Created default schema file: %s", path)
	return nil
}

func destroy() error {
	path, err := resolveSchemaPath()
	if err != nil {
		return xerror.Errorf("unable to delete schema file: %w", err)
	}
	return fs.Remove(path)
}

func writeSchemaFileToDisk(data []byte, path string, overwrite bool) error {
	flags := os.O_RDWR | os.O_CREATE
	if !overwrite {
		flags |= os.O_EXCL
	}

	file, err := fs.OpenFile(path, flags, 0666)
	if err != nil {
		return xerror.Errorf("unable to create/open file: %w", err)
	}
	defer file.Close()

	bc, err := file.Write(data)
	if err != nil {
		return xerror.Errorf("unable to write schema file: %s: %w", path, err)
	}

	if bc != len(data) {
		return xerror.Errorf("unable to write full schema data to file: %s", path)
	}

	return nil
}

func loadRawDefaultSchemaFile() ([]byte, error) {
	video, err := schema.NewVideo(schema.Options{})
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(
		schemadef.Values{
			Dataset: defaultSettings[DATASET].(string),
			Schemas: []schemadef.TensorDef{
				schemadef.FromSchema(defaultSettings[SCHEMANAME].(string), video),
			},
		}, "", " ")
}

func ensureParentDir(path string) error {
	parentDirPath := filepath.Dir(path)
	if _, err := fs.Stat(parentDirPath); errors.Is(err, os.ErrNotExist) {
		if err := fs.MkdirAll(parentDirPath, os.ModeDir|os.ModePerm); err != nil {
			return xerror.Errorf("unable to create schema file parent directory: %w", err)
		}
	}
	return nil
}
