package mandel

import (
	"math"
	"sort"
)

// Path is a camera trajectory: a polyline in the complex plane with
// uniform parameter spacing per segment. A path has at least one
// anchor; a single-anchor path is a fixed camera position.
type Path []complex128

// DeepSpiral is the default animation target: a dive toward a spiral
// minibrot near the seahorse valley. The later anchors refine the
// approach so the camera stays on interesting structure all the way
// down to the 1e-6 zoom the renderer is built for.
var DeepSpiral = Path{
	complex(-0.743643887037151, 0.13182590420533),
	complex(-0.743643135, 0.13182733),
	complex(-0.743642, 0.131829),
	complex(-0.74364085, 0.1318309),
}

// Classic landmarks in the Mandelbrot set, as single-anchor paths.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Path{complex(-0.75, 0.1)}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Path{complex(-1.8, -0.06)}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Path{complex(-0.7465, 0.0965)}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Path{complex(-0.7375, 0.1825)}
)

// Targets maps the camera path names accepted by the CLI.
var Targets = map[string]Path{
	"deep-spiral":          DeepSpiral,
	"seahorse-valley":      SeahorseValley,
	"elephant-valley":      ElephantValley,
	"triple-spiral":        TripleSpiral,
	"valley-of-the-dragon": ValleyOfTheDragon,
}

// TargetNames returns the keys of Targets in sorted order.
func TargetNames() []string {
	names := make([]string, 0, len(Targets))
	for name := range Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Position interpolates the polyline at t ∈ [0,1], piecewise-linearly
// with uniform parameter spacing per segment. t is clamped; the
// segment parameter is capped just below the final anchor so the last
// segment is never indexed past its end.
func (p Path) Position(t float64) complex128 {
	if len(p) <= 1 {
		return p[0]
	}
	segments := float64(len(p) - 1)
	s := math.Min(clamp(t, 0, 1)*segments, segments-1e-9)
	i := int(s)
	u := s - float64(i)
	a, b := p[i], p[i+1]
	return a + complex(u, 0)*(b-a)
}

// ZoomAt interpolates the zoom at t ∈ [0,1]: geometric between
// zoomStart and zoomEnd when both are positive (constant per-frame
// zoom factor), linear otherwise.
func ZoomAt(zoomStart, zoomEnd, t float64) float64 {
	if zoomStart <= 0 || zoomEnd <= 0 {
		return zoomStart + (zoomEnd-zoomStart)*t
	}
	return zoomStart * math.Pow(zoomEnd/zoomStart, t)
}

// dampedCenter weights the camera between the path's first anchor and
// the current path position by the zoom ratio: wide frames stay
// anchored on base, deep frames converge onto target.
func dampedCenter(base, target complex128, zoom, zoomStart float64) complex128 {
	r := 1.0
	if zoomStart > 0 {
		r = clamp(zoom/zoomStart, 0, 1)
	}
	return base + complex(r, 0)*(target-base)
}

// FrameParams returns the camera center and zoom for frame k of n.
// The frame parameter t runs over [0,1] inclusive; a single-frame
// animation renders t = 0.
func FrameParams(k, n int, zoomStart, zoomEnd float64, path Path) (complex128, float64) {
	t := 0.0
	if n > 1 {
		t = float64(k) / float64(n-1)
	}
	zoom := ZoomAt(zoomStart, zoomEnd, t)
	center := dampedCenter(path[0], path.Position(t), zoom, zoomStart)
	return center, zoom
}
