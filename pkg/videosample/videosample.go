// Package videosample checks decoded OpenCV frames against video schemas.
package videosample

import (
	"github.com/tauraamui/hubschema/pkg/schema"
	"github.com/tauraamui/xerror"
	"gocv.io/x/gocv"
)

const depthMask = 7

var (
	ErrNoFrames        = xerror.New("sample has no frames")
	ErrInconsistent    = xerror.New("frames are inconsistent")
	ErrUnsupportedType = xerror.New("unsupported frame type")
)

var depthDtypes = map[gocv.MatType]schema.Dtype{
	gocv.MatTypeCV8U:  schema.Uint8,
	gocv.MatTypeCV8S:  schema.Int8,
	gocv.MatTypeCV16U: schema.Uint16,
	gocv.MatTypeCV16S: schema.Int16,
	gocv.MatTypeCV32S: schema.Int32,
	gocv.MatTypeCV32F: schema.Float32,
	gocv.MatTypeCV64F: schema.Float64,
}

// DtypeOf resolves the element type of a frame from its OpenCV depth.
func DtypeOf(frame gocv.Mat) (schema.Dtype, error) {
	depth := frame.Type() & depthMask
	dtype, ok := depthDtypes[depth]
	if !ok {
		return "", xerror.Errorf("%w: depth %d", ErrUnsupportedType, depth)
	}
	return dtype, nil
}

// ShapeOf gives the (num_frames, height, width, channels) shape of
// frames, which must all share dimensions and type.
func ShapeOf(frames []gocv.Mat) (schema.Shape, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	first := frames[0]
	for i, frame := range frames[1:] {
		if frame.Rows() != first.Rows() || frame.Cols() != first.Cols() || frame.Type() != first.Type() {
			return nil, xerror.Errorf(
				"%w: frame %d is %dx%d of type %d, expected %dx%d of type %d", ErrInconsistent,
				i+1, frame.Cols(), frame.Rows(), frame.Type(), first.Cols(), first.Rows(), first.Type(),
			)
		}
	}

	return schema.Shape{len(frames), first.Rows(), first.Cols(), first.Channels()}, nil
}

// Check verifies that frames form a sample the video schema accepts.
func Check(video *schema.Video, frames []gocv.Mat) error {
	shape, err := ShapeOf(frames)
	if err != nil {
		return err
	}

	dtype, err := DtypeOf(frames[0])
	if err != nil {
		return err
	}
	if dtype != video.Dtype() {
		return xerror.Errorf("%w: frames are %s, expected %s", schema.ErrSampleMismatch, dtype, video.Dtype())
	}

	return video.CheckSample(shape)
}
