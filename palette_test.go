package mandel

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestHSVSectorCorners(t *testing.T) {
	testCases := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{60, 255, 255, 0},
		{120, 0, 255, 0},
		{180, 0, 255, 255},
		{240, 0, 0, 255},
		{300, 255, 0, 255},
	}
	for _, tc := range testCases {
		if got := HSVToRGB(tc.h, 1, 1); got != [3]uint8{tc.r, tc.g, tc.b} {
			t.Errorf("HSVToRGB(%g,1,1) = %v, want (%d,%d,%d)", tc.h, got, tc.r, tc.g, tc.b)
		}

		// At exact sector corners every HSV implementation must agree;
		// go-colorful serves as the independent reference.
		ref := colorful.Hsv(tc.h, 1, 1)
		rr, rg, rb := ref.RGB255()
		if rr != tc.r || rg != tc.g || rb != tc.b {
			t.Errorf("go-colorful disagrees at hue %g: (%d,%d,%d)", tc.h, rr, rg, rb)
		}
	}
}

func TestHSVHueWrap(t *testing.T) {
	base := HSVToRGB(300, 0.95, 0.7)
	for _, h := range []float64{-60, 660, -420, 300 + 3*360} {
		if got := HSVToRGB(h, 0.95, 0.7); got != base {
			t.Errorf("HSVToRGB(%g) = %v, want %v (wrap to 300°)", h, got, base)
		}
	}
}

func TestHSVZeroValueIsBlack(t *testing.T) {
	for _, h := range []float64{0, 90, 317.5} {
		if got := HSVToRGB(h, 1, 0); got != [3]uint8{0, 0, 0} {
			t.Errorf("HSVToRGB(%g,1,0) = %v, want black", h, got)
		}
	}
}

func TestHSVZeroSaturationIsGray(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		want := uint8(clamp(v*255, 0, 255))
		got := HSVToRGB(123, 0, v)
		if got != [3]uint8{want, want, want} {
			t.Errorf("HSVToRGB(123,0,%g) = %v, want gray %d", v, got, want)
		}
	}
}

func TestPaletteTotalOnUnitInterval(t *testing.T) {
	for i := 0; i <= 100; i++ {
		PaletteColor(float64(i) / 100) // must not panic anywhere on [0,1]
	}

	// At t = 1 the raw value 0.25 + 0.85 is clamped to 1.
	hue := math.Mod(360*(0.65+2.2), 360)
	if got, want := PaletteColor(1), HSVToRGB(hue, 0.95, 1); got != want {
		t.Errorf("PaletteColor(1) = %v, want %v", got, want)
	}
}
