package schema

import "strings"

const videoLabel = "Video"

var (
	defaultVideoShape = Shape{None, None, None, 3}
	defaultVideoDtype = Uint8
)

// Video describes a video sample, frames stored individually as a
// 4 dimensional array of (num_frames, height, width, channels) where
// channels is either 1 or 3.
type Video struct {
	*Tensor
}

// NewVideo checks the video shape before building the underlying
// tensor descriptor. Unset options default to a (None, None, None, 3)
// uint8 shape compressed with lz4. Like any tensor, fixed dims must be
// positive.
func NewVideo(opts Options) (*Video, error) {
	if opts.Shape == nil {
		opts.Shape = defaultVideoShape
	}
	if len(opts.Dtype) == 0 {
		opts.Dtype = defaultVideoDtype
	}

	if err := checkVideoShape(opts.Shape); err != nil {
		return nil, err
	}

	t, err := NewTensor(opts)
	if err != nil {
		return nil, err
	}

	return &Video{Tensor: t}, nil
}

func checkVideoShape(shape Shape) error {
	if len(shape) != 4 || (shape[3] != 1 && shape[3] != 3) {
		return wrapf(
			InvalidShape, ErrInvalidShape,
			"wrong video shape %s, should be of the format (num_frames, height, width, channels), "+
				"where num_frames, height, width can be positive or None and channels is 1 or 3", shape,
		)
	}
	return nil
}

func (v *Video) Kind() Kind { return VideoKind }

func (v *Video) Channels() int {
	return v.shape[3]
}

func (v *Video) String() string {
	return videoLabel + strings.TrimPrefix(v.Tensor.String(), tensorLabel)
}
