package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/maya0513/mandelbrot-animation/live"
	"github.com/setanarut/apng"
)

// pngDirSink writes each frame as frame_NNNNNN.png into dir and prints
// one progress line per frame. It optionally feeds a live preview
// server and retains frames in memory for APNG assembly.
type pngDirSink struct {
	dir     string
	total   int
	preview *live.Server
	keep    bool
	frames  []image.Image
}

func (s *pngDirSink) WriteFrame(index int, img *image.RGBA) error {
	name := filepath.Join(s.dir, fmt.Sprintf("frame_%06d.png", index))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	if s.preview != nil {
		s.preview.Broadcast(index, s.total, img)
	}
	if s.keep {
		s.frames = append(s.frames, img)
	}

	fmt.Printf("frame %d/%d -> %s\n", index+1, s.total, name)
	return nil
}

// saveAPNG assembles the retained frames into one animated PNG.
// The delay is in hundredths of a second, as in GIF.
func (s *pngDirSink) saveAPNG(path string, fps int) error {
	delay := 1
	if fps > 0 && 100/fps > 1 {
		delay = 100 / fps
	}
	return apng.Save(path, s.frames, delay)
}
