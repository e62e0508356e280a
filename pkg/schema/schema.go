package schema

type Kind string

const (
	TensorKind = Kind("tensor")
	VideoKind  = Kind("video")
)

// Schema describes how a single sample is validated and laid out
// for storage.
type Schema interface {
	Kind() Kind
	Shape() Shape
	Dtype() Dtype
	MaxShape() Shape
	Chunks() Shape
	Compressor() Compressor
	NDim() int
	IsDynamic() bool
	ResolveChunks() (Shape, error)
	CheckSample(Shape) error
	String() string
}

// Options configures a descriptor, zero valued fields fall back to
// the descriptor's defaults.
type Options struct {
	Shape      Shape
	Dtype      Dtype
	MaxShape   Shape
	Chunks     Shape
	Compressor Compressor
}
