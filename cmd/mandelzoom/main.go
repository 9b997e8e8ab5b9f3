// mandelzoom renders the frames of a Mandelbrot deep-zoom animation as
// numbered PNG files, ready to be muxed into a video with ffmpeg.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	mandel "github.com/maya0513/mandelbrot-animation"
	"github.com/maya0513/mandelbrot-animation/live"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	width := flag.Int("width", 1920, "frame width in pixels")
	height := flag.Int("height", 1080, "frame height in pixels")
	frames := flag.Int("frames", 300, "number of frames to render")
	fps := flag.Int("fps", 30, "frame rate for the suggested ffmpeg command")
	maxIter := flag.Int("max-iter", 2000, "iteration bound per pixel")
	zoomStart := flag.Float64("zoom-start", 1.0, "half-height of the first frame, in plane units")
	zoomEnd := flag.Float64("zoom-end", 1e-6, "half-height of the last frame")
	outDir := flag.String("out-dir", "out/frames", "directory for the rendered frames")
	target := flag.String("target", "deep-spiral",
		"camera path, one of: "+strings.Join(mandel.TargetNames(), ", "))
	previewAddr := flag.String("preview", "", "serve a live browser preview on this address (e.g. :8080)")
	apngPath := flag.String("apng", "", "additionally assemble all frames into an animated PNG at this path")
	flag.Parse()

	path, ok := mandel.Targets[*target]
	if !ok {
		return fmt.Errorf("unknown target %q (have: %s)", *target, strings.Join(mandel.TargetNames(), ", "))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	total := max(*frames, 1)
	sink := &pngDirSink{
		dir:   *outDir,
		total: total,
		keep:  *apngPath != "",
	}
	if *previewAddr != "" {
		sink.preview = live.NewServer()
		sink.preview.Start(*previewAddr)
	}

	anim := mandel.Animation{
		Width:     *width,
		Height:    *height,
		Frames:    total,
		MaxIter:   *maxIter,
		ZoomStart: *zoomStart,
		ZoomEnd:   *zoomEnd,
		Path:      path,
	}
	if err := anim.Render(sink); err != nil {
		return err
	}

	if *apngPath != "" {
		if err := sink.saveAPNG(*apngPath, *fps); err != nil {
			return fmt.Errorf("assemble apng: %w", err)
		}
		log.Printf("animated png saved to %q", *apngPath)
	}

	fmt.Println()
	fmt.Println("ffmpeg example:")
	fmt.Printf("ffmpeg -framerate %d -i %s/frame_%%06d.png -c:v libx264 -pix_fmt yuv420p out/mandelbrot.mp4\n",
		*fps, *outDir)

	return nil
}
