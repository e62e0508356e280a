package schema

import "math"

// chunkTargetBytes is the size auto-detected chunks aim to stay under.
const chunkTargetBytes = 16 * 1024 * 1024

// ResolveChunks gives the chunk shape samples are split into on disk. The
// leading dimension counts samples per chunk, the rest slice a sample.
func (t *Tensor) ResolveChunks() (Shape, error) {
	if t.chunks != nil {
		return t.chunks.Copy(), nil
	}

	if t.maxShape.IsDynamic() {
		return nil, wrapf(
			InvalidChunks, ErrInvalidChunks,
			"unable to detect chunks for dynamic max shape %s", t.maxShape,
		)
	}

	itemSize := t.dtype.ItemSize()
	if sampleBytes, ok := byteSize(itemSize, t.maxShape); ok && sampleBytes <= chunkTargetBytes {
		return append(Shape{chunkTargetBytes / sampleBytes}, t.maxShape...), nil
	}

	dims := t.maxShape.Copy()
	for {
		if size, ok := byteSize(itemSize, dims); ok && size <= chunkTargetBytes {
			break
		}
		largest := 0
		for i, d := range dims {
			if d > dims[largest] {
				largest = i
			}
		}
		dims[largest] = (dims[largest] + 1) / 2
	}
	return append(Shape{1}, dims...), nil
}

// byteSize multiplies itemSize by every dim, ok is false on overflow.
func byteSize(itemSize int, dims Shape) (int, bool) {
	size := itemSize
	for _, d := range dims {
		if d > 0 && size > math.MaxInt/d {
			return 0, false
		}
		size *= d
	}
	return size, true
}
