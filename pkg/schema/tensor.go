package schema

import (
	"fmt"
	"strings"
)

const tensorLabel = "Tensor"

var (
	defaultTensorShape = Shape{None}
	defaultTensorDtype = Float64
	defaultCompressor  = LZ4
)

type Tensor struct {
	shape      Shape
	dtype      Dtype
	maxShape   Shape
	chunks     Shape
	compressor Compressor
}

func NewTensor(opts Options) (*Tensor, error) {
	shape := opts.Shape.Copy()
	if shape == nil {
		shape = defaultTensorShape.Copy()
	}
	if err := checkDims(shape); err != nil {
		return nil, err
	}

	maxShape := opts.MaxShape.Copy()
	if maxShape == nil {
		maxShape = shape.Copy()
	}
	if err := checkMaxShape(shape, maxShape); err != nil {
		return nil, err
	}

	dtype := defaultTensorDtype
	if len(opts.Dtype) > 0 {
		d, err := ParseDtype(string(opts.Dtype))
		if err != nil {
			return nil, err
		}
		dtype = d
	}

	compressor := defaultCompressor
	if len(opts.Compressor) > 0 {
		c, err := ParseCompressor(string(opts.Compressor))
		if err != nil {
			return nil, err
		}
		compressor = c
	}

	chunks := opts.Chunks.Copy()
	if chunks != nil {
		if err := checkChunks(shape, chunks); err != nil {
			return nil, err
		}
	}

	return &Tensor{
		shape:      shape,
		dtype:      dtype,
		maxShape:   maxShape,
		chunks:     chunks,
		compressor: compressor,
	}, nil
}

func checkDims(shape Shape) error {
	for i, d := range shape {
		if d != None && d < 1 {
			return wrapf(InvalidShape, ErrInvalidShape, "dimension %d of %s must be None or positive", i, shape)
		}
	}
	return nil
}

func checkMaxShape(shape, maxShape Shape) error {
	if len(shape) != len(maxShape) {
		return wrapf(
			InvalidShape, ErrInvalidShape,
			"max shape %s must have the same number of dimensions as shape %s", maxShape, shape,
		)
	}
	if err := checkDims(maxShape); err != nil {
		return err
	}
	for i, d := range shape {
		if d == None {
			continue
		}
		if maxShape[i] != d {
			return wrapf(
				InvalidShape, ErrInvalidShape,
				"max shape %s must match shape %s wherever shape is fixed", maxShape, shape,
			)
		}
	}
	return nil
}

func checkChunks(shape, chunks Shape) error {
	if len(chunks) != len(shape)+1 {
		return wrapf(
			InvalidChunks, ErrInvalidChunks,
			"chunks %s must have %d dimensions, sample count followed by each of %s", chunks, len(shape)+1, shape,
		)
	}
	for _, c := range chunks {
		if c < 1 {
			return wrapf(InvalidChunks, ErrInvalidChunks, "chunks %s must all be positive", chunks)
		}
	}
	return nil
}

func (t *Tensor) Kind() Kind { return TensorKind }

func (t *Tensor) Shape() Shape { return t.shape.Copy() }

func (t *Tensor) Dtype() Dtype { return t.dtype }

func (t *Tensor) MaxShape() Shape { return t.maxShape.Copy() }

// Chunks returns the explicitly configured chunk shape, nil when chunking
// is left to ResolveChunks.
func (t *Tensor) Chunks() Shape { return t.chunks.Copy() }

func (t *Tensor) Compressor() Compressor { return t.compressor }

func (t *Tensor) NDim() int { return len(t.shape) }

func (t *Tensor) IsDynamic() bool { return t.shape.IsDynamic() }

// CheckSample verifies that a concrete sample shape can be stored
// under this descriptor.
func (t *Tensor) CheckSample(sample Shape) error {
	if len(sample) != len(t.shape) {
		return wrapf(
			SampleMismatch, ErrSampleMismatch,
			"sample shape %s has %d dimensions, expected %d", sample, len(sample), len(t.shape),
		)
	}
	for i, d := range sample {
		if d < 0 {
			return wrapf(SampleMismatch, ErrSampleMismatch, "sample shape %s has negative dimension %d", sample, i)
		}
		if fixed := t.shape[i]; fixed != None && d != fixed {
			return wrapf(
				SampleMismatch, ErrSampleMismatch,
				"sample shape %s does not match %s at dimension %d", sample, t.shape, i,
			)
		}
		if limit := t.maxShape[i]; limit != None && d > limit {
			return wrapf(
				SampleMismatch, ErrSampleMismatch,
				"sample shape %s exceeds max shape %s at dimension %d", sample, t.maxShape, i,
			)
		}
	}
	return nil
}

func (t *Tensor) String() string {
	sb := strings.Builder{}
	sb.WriteString(tensorLabel)
	sb.WriteString(fmt.Sprintf("(shape=%s, dtype=%s", t.shape, t.dtype))
	if !t.maxShape.Equal(t.shape) {
		sb.WriteString(fmt.Sprintf(", max_shape=%s", t.maxShape))
	}
	if t.chunks != nil {
		sb.WriteString(fmt.Sprintf(", chunks=%s", t.chunks))
	}
	sb.WriteString(fmt.Sprintf(", compressor=%s)", t.compressor))
	return sb.String()
}
