package mandel

import "fmt"

// Animation describes a full zoom run.
type Animation struct {
	Width, Height int
	Frames        int // clamped to at least 1
	MaxIter       int
	ZoomStart     float64
	ZoomEnd       float64
	Path          Path
}

// Render computes every frame in order and hands each to sink exactly
// once, with strictly increasing indices. Frames already handed to the
// sink are not rolled back on error.
func (a Animation) Render(sink FrameSink) error {
	frames := max(a.Frames, 1)
	for k := 0; k < frames; k++ {
		center, zoom := FrameParams(k, frames, a.ZoomStart, a.ZoomEnd, a.Path)
		buf := RenderFrame(a.Width, a.Height, center, zoom, a.MaxIter)
		if err := sink.WriteFrame(k, ToRGBA(buf, a.Width, a.Height)); err != nil {
			return fmt.Errorf("frame %d: %w", k, err)
		}
	}
	return nil
}
