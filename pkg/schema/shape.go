package schema

import (
	"strconv"
	"strings"
)

// None marks a dimension whose size is only known per sample.
const None = -1

// Shape lists a descriptor's dimension sizes, where any dimension
// may be None.
type Shape []int

func (s Shape) Len() int {
	return len(s)
}

// IsDynamic reports whether any dimension is None.
func (s Shape) IsDynamic() bool {
	for _, d := range s {
		if d == None {
			return true
		}
	}
	return false
}

func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Product multiplies all dimensions together, an empty shape gives 1.
// The result is meaningless for dynamic shapes.
func (s Shape) Product() int {
	p := 1
	for _, d := range s {
		p *= d
	}
	return p
}

func (s Shape) Copy() Shape {
	if s == nil {
		return nil
	}
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

func (s Shape) String() string {
	dims := make([]string, len(s))
	for i, d := range s {
		if d == None {
			dims[i] = "None"
			continue
		}
		dims[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(dims, ", ") + ")"
}
