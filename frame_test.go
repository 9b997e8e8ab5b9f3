package mandel

import (
	"bytes"
	"image"
	"testing"
)

func TestRenderFrameShape(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{16, 16},
		{17, 5},
		{1, 1},
		{64, 33},
	} {
		buf := RenderFrame(tc.w, tc.h, complex(0, 0), 1.0, 20)
		if len(buf) != 3*tc.w*tc.h {
			t.Errorf("%dx%d: len = %d, want %d", tc.w, tc.h, len(buf), 3*tc.w*tc.h)
		}
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	a := RenderFrame(16, 16, complex(0, 0), 1.0, 50)
	b := RenderFrame(16, 16, complex(0, 0), 1.0, 50)
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same frame differ")
	}
}

func TestRenderFrameCenterPixel(t *testing.T) {
	// The pixel at (w/2, h/2) samples the center exactly; with the
	// camera on the origin it must be inside the set, hence black.
	const w, h = 16, 16
	buf := RenderFrame(w, h, complex(0, 0), 1.0, 50)
	off := 3 * (h/2*w + w/2)
	if buf[off] != 0 || buf[off+1] != 0 || buf[off+2] != 0 {
		t.Errorf("center pixel = (%d,%d,%d), want black", buf[off], buf[off+1], buf[off+2])
	}
}

func TestRenderFrameCornerEscapes(t *testing.T) {
	// At zoom 2 the top-left corner samples c = (-2,-2), far outside
	// the set, so it must carry a palette color.
	buf := RenderFrame(16, 16, complex(0, 0), 2.0, 50)
	if buf[0] == 0 && buf[1] == 0 && buf[2] == 0 {
		t.Error("corner pixel is black, want a palette color")
	}
}

func TestSplitRectNoClipCoversRect(t *testing.T) {
	r := image.Rect(0, 0, 150, 70)
	tiles := splitRectNoClip(r, 64, 64)

	area := 0
	for _, tile := range tiles {
		if !tile.In(r) {
			t.Errorf("tile %v leaves %v", tile, r)
		}
		area += tile.Dx() * tile.Dy()
	}
	if area != r.Dx()*r.Dy() {
		t.Errorf("tiles cover %d pixels, want %d", area, r.Dx()*r.Dy())
	}
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			if a.Overlaps(b) {
				t.Errorf("tiles %v and %v overlap", a, b)
			}
		}
	}
}

func TestToRGBA(t *testing.T) {
	buf := []byte{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}
	img := ToRGBA(buf, 2, 2)
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", got)
	}
	r, g, b, a := img.At(1, 0).RGBA()
	if r>>8 != 4 || g>>8 != 5 || b>>8 != 6 || a>>8 != 255 {
		t.Errorf("pixel (1,0) = (%d,%d,%d,%d), want (4,5,6,255)", r>>8, g>>8, b>>8, a>>8)
	}
}
