package schema

import (
	"fmt"

	"github.com/tauraamui/xerror"
)

const (
	InvalidShape      = xerror.Kind("invalid_shape")
	InvalidDtype      = xerror.Kind("invalid_dtype")
	InvalidCompressor = xerror.Kind("invalid_compressor")
	InvalidChunks     = xerror.Kind("invalid_chunks")
	SampleMismatch    = xerror.Kind("sample_mismatch")
	InvalidName       = xerror.Kind("invalid_name")
	DuplicateName     = xerror.Kind("duplicate_name")
)

var (
	ErrInvalidShape      = xerror.New("invalid shape")
	ErrInvalidDtype      = xerror.New("invalid dtype")
	ErrInvalidCompressor = xerror.New("invalid compressor")
	ErrInvalidChunks     = xerror.New("invalid chunks")
	ErrSampleMismatch    = xerror.New("sample does not match schema")
	ErrInvalidName       = xerror.New("invalid schema name")
	ErrDuplicateName     = xerror.New("duplicate schema name")
)

// wrapf returns an error of the given kind which wraps sentinel, so that
// errors.Is(err, sentinel) holds for the result.
func wrapf(k xerror.Kind, sentinel error, format string, a ...interface{}) error {
	return xerror.Errorf("%w: %s", sentinel, fmt.Sprintf(format, a...)).AsKind(k)
}
