package schema

import "strings"

type Compressor string

const (
	NoCompression     = Compressor("none")
	DefaultCompressor = Compressor("default")
	LZ4               = Compressor("lz4")
	Zstd              = Compressor("zstd")
	PNG               = Compressor("png")
	JPEG              = Compressor("jpeg")
)

var compressors = []Compressor{NoCompression, DefaultCompressor, LZ4, Zstd, PNG, JPEG}

func ParseCompressor(s string) (Compressor, error) {
	c := Compressor(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", wrapf(InvalidCompressor, ErrInvalidCompressor, "unknown compressor %q", s)
	}
	return c, nil
}

func (c Compressor) Valid() bool {
	for _, known := range compressors {
		if c == known {
			return true
		}
	}
	return false
}

func (c Compressor) String() string {
	return string(c)
}
