package mandel

import (
	"image"
	"runtime"
	"sync"
)

// Frames are rendered in square tiles; workers pull tiles off a
// channel and write into disjoint parts of the shared buffer.
const tileSize = 64

// RenderFrame samples one frame into a row-major RGB buffer of exactly
// 3·w·h bytes. The camera shows the region of half-height/half-width
// zoom around center, scaled uniformly by the shorter image side. The
// y axis is not flipped: y grows downward in the image and is used
// directly as the imaginary coordinate.
//
// The result is a pure function of the arguments; repeated calls yield
// byte-identical buffers.
func RenderFrame(w, h int, center complex128, zoom float64, maxIter int) []byte {
	buf := make([]byte, 3*w*h)
	halfMin := float64(min(w, h)) / 2
	scale := zoom / halfMin

	tiles := make(chan image.Rectangle)
	var wg sync.WaitGroup
	for n := 0; n < runtime.NumCPU(); n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tiles {
				renderTile(buf, w, h, tile, center, scale, maxIter)
			}
		}()
	}
	for _, tile := range splitRectNoClip(image.Rect(0, 0, w, h), tileSize, tileSize) {
		tiles <- tile
	}
	close(tiles)
	wg.Wait()

	return buf
}

// renderTile fills the tile's pixels. Tiles are disjoint, so workers
// write to disjoint byte ranges of buf without synchronization.
func renderTile(buf []byte, w, h int, tile image.Rectangle, center complex128, scale float64, maxIter int) {
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		cy := (float64(y)-float64(h)/2)*scale + imag(center)
		row := buf[3*y*w : 3*(y+1)*w]
		for x := tile.Min.X; x < tile.Max.X; x++ {
			cx := (float64(x)-float64(w)/2)*scale + real(center)
			rgb := ColorAt(complex(cx, cy), maxIter)
			copy(row[3*x:3*x+3], rgb[:])
		}
	}
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}

// ToRGBA copies a row-major RGB buffer into an image.RGBA so the
// frame can enter the stdlib image pipeline (PNG encoding, scaling).
func ToRGBA(buf []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[4*i+0] = buf[3*i+0]
		img.Pix[4*i+1] = buf[3*i+1]
		img.Pix[4*i+2] = buf[3*i+2]
		img.Pix[4*i+3] = 0xff
	}
	return img
}
