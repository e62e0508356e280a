package schema

import "strings"

type Dtype string

const (
	Bool    = Dtype("bool")
	Uint8   = Dtype("uint8")
	Uint16  = Dtype("uint16")
	Uint32  = Dtype("uint32")
	Uint64  = Dtype("uint64")
	Int8    = Dtype("int8")
	Int16   = Dtype("int16")
	Int32   = Dtype("int32")
	Int64   = Dtype("int64")
	Float16 = Dtype("float16")
	Float32 = Dtype("float32")
	Float64 = Dtype("float64")
)

var itemSizes = map[Dtype]int{
	Bool:    1,
	Uint8:   1,
	Uint16:  2,
	Uint32:  4,
	Uint64:  8,
	Int8:    1,
	Int16:   2,
	Int32:   4,
	Int64:   8,
	Float16: 2,
	Float32: 4,
	Float64: 8,
}

// ParseDtype resolves a dtype name, ignoring case and surrounding space.
func ParseDtype(s string) (Dtype, error) {
	d := Dtype(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", wrapf(InvalidDtype, ErrInvalidDtype, "unknown dtype %q", s)
	}
	return d, nil
}

func (d Dtype) Valid() bool {
	_, ok := itemSizes[d]
	return ok
}

// ItemSize is the number of bytes a single element occupies, 0 if unknown.
func (d Dtype) ItemSize() int {
	return itemSizes[d]
}

func (d Dtype) String() string {
	return string(d)
}
