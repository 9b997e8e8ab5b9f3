// Package mandel renders Mandelbrot deep-zoom animations: escape-time
// iteration with smooth coloring, an HSV palette, and an exponentially
// interpolated camera that follows a fixed path into the set.
package mandel

import "image"

// FrameSink persists rendered frames. WriteFrame is called with
// strictly increasing indices, each index exactly once. The first
// error returned aborts the run.
type FrameSink interface {
	WriteFrame(index int, img *image.RGBA) error
}
