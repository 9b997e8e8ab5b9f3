package mandel

import "math"

// PaletteColor maps a normalized escape value t ∈ [0,1] to RGB. The
// hue sweeps 2.2 turns around the color wheel starting in the blue
// range; value rises with t so fine detail near the set stays dark.
func PaletteColor(t float64) [3]uint8 {
	hue := math.Mod(360*(0.65+2.2*t), 360)
	val := clamp(0.25+0.85*t, 0, 1)
	return HSVToRGB(hue, 0.95, val)
}

// HSVToRGB converts a hue in degrees and saturation/value in [0,1] to
// 8-bit RGB using the standard six-sector formula. Hues outside
// [0,360), including negative ones, are wrapped first. Channels are
// clamped to [0,255] before truncation.
func HSVToRGB(h, s, v float64) [3]uint8 {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return [3]uint8{
		uint8(clamp((r+m)*255, 0, 255)),
		uint8(clamp((g+m)*255, 0, 255)),
		uint8(clamp((b+m)*255, 0, 255)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
