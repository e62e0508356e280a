package schemadef

import (
	"errors"
	"fmt"

	"github.com/tauraamui/hubschema/pkg/schema"
	"github.com/tauraamui/xerror"
	"gopkg.in/dealancer/validate.v2"
)

type TensorDef struct {
	Name       string `json:"name" validate:"empty=false"`
	Kind       string `json:"kind" validate:"one_of=tensor,video"`
	Shape      []*int `json:"shape"`
	Dtype      string `json:"dtype,omitempty" validate:"empty=true | one_of=bool,uint8,uint16,uint32,uint64,int8,int16,int32,int64,float16,float32,float64"`
	MaxShape   []*int `json:"max_shape,omitempty"`
	Chunks     []int  `json:"chunks,omitempty"`
	Compressor string `json:"compressor,omitempty" validate:"empty=true | one_of=none,default,lz4,zstd,png,jpeg"`
}

type Values struct {
	Dataset string      `json:"dataset" validate:"empty=false"`
	Schemas []TensorDef `json:"schemas"`
}

func (v Values) RunValidate() error {
	if err := validate.Validate(&v); err != nil {
		return err
	}
	return v.Validate()
}

func (v Values) Validate() error {
	const validationErrorHeader = "validation failed: %w"
	if hasDupSchemaNames(v.Schemas) {
		return fmt.Errorf(validationErrorHeader, errors.New("schema names must be unique"))
	}
	return nil
}

func hasDupSchemaNames(defs []TensorDef) bool {
	seen := map[string]struct{}{}
	for _, def := range defs {
		if _, ok := seen[def.Name]; ok {
			return true
		}
		seen[def.Name] = struct{}{}
	}
	return false
}

// Build constructs every defined schema, in definition order.
func (v Values) Build() (*schema.Dict, error) {
	dict := schema.NewDict()
	for _, def := range v.Schemas {
		s, err := def.Build()
		if err != nil {
			return nil, err
		}
		if err := dict.Add(def.Name, s); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

func (d TensorDef) Build() (schema.Schema, error) {
	opts := schema.Options{
		Shape:      toShape(d.Shape),
		Dtype:      schema.Dtype(d.Dtype),
		MaxShape:   toShape(d.MaxShape),
		Compressor: schema.Compressor(d.Compressor),
	}
	if d.Chunks != nil {
		opts.Chunks = schema.Shape(append([]int{}, d.Chunks...))
	}

	switch schema.Kind(d.Kind) {
	case schema.VideoKind:
		video, err := schema.NewVideo(opts)
		if err != nil {
			return nil, xerror.Errorf("schema %s: %w", d.Name, err)
		}
		return video, nil
	case schema.TensorKind, "":
		tensor, err := schema.NewTensor(opts)
		if err != nil {
			return nil, xerror.Errorf("schema %s: %w", d.Name, err)
		}
		return tensor, nil
	default:
		return nil, xerror.Errorf("schema %s: unknown kind %q", d.Name, d.Kind)
	}
}

// FromSchema describes an existing schema as a definition, omitting
// chunks which were left to auto detection.
func FromSchema(name string, s schema.Schema) TensorDef {
	def := TensorDef{
		Name:       name,
		Kind:       string(s.Kind()),
		Shape:      fromShape(s.Shape()),
		Dtype:      string(s.Dtype()),
		Compressor: string(s.Compressor()),
	}
	if maxShape := s.MaxShape(); !maxShape.Equal(s.Shape()) {
		def.MaxShape = fromShape(maxShape)
	}
	if chunks := s.Chunks(); chunks != nil {
		def.Chunks = []int(chunks)
	}
	return def
}

func toShape(dims []*int) schema.Shape {
	if dims == nil {
		return nil
	}
	shape := make(schema.Shape, len(dims))
	for i, d := range dims {
		if d == nil {
			shape[i] = schema.None
			continue
		}
		shape[i] = *d
	}
	return shape
}

func fromShape(shape schema.Shape) []*int {
	if shape == nil {
		return nil
	}
	dims := make([]*int, len(shape))
	for i := range shape {
		if shape[i] == schema.None {
			continue
		}
		d := shape[i]
		dims[i] = &d
	}
	return dims
}
