package schemafile

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tauraamui/hubschema/pkg/log"
	"github.com/tauraamui/hubschema/pkg/schemadef"
)

func load() (schemadef.Values, error) {
	var values schemadef.Values

	schemaPath, err := resolveSchemaPath()
	if err != nil {
		return schemadef.Values{}, err
	}

	log.Info("Resolved schema file location: %s", schemaPath)
	file, err := readSchemaFile(schemaPath)
	if err != nil {
		return schemadef.Values{}, err
	}

	if err := unmarshal(file, &values); err != nil {
		return schemadef.Values{}, err
	}

	loadDefaultKinds(values.Schemas)

	if err = values.RunValidate(); err != nil {
		return schemadef.Values{}, err
	}

	return values, nil
}

func loadDefaultKinds(defs []schemadef.TensorDef) {
	for i := range defs {
		if len(defs[i].Kind) == 0 {
			defs[i].Kind = defaultSettings[KIND].(string)
		}
	}
}

var readSchemaFile = func(path string) ([]byte, error) {
	return afero.ReadFile(fs, path)
}

func unmarshal(content []byte, values *schemadef.Values) error {
	err := json.Unmarshal(content, values)
	if err != nil {
		return errors.Errorf("parsing schema file error: %v", err)
	}
	return nil
}
