package mandel

import "math"

// A point escapes once |z|² exceeds this; |z|² == 4 does not yet
// count, the loop only stops at the following test.
const escapeRadiusSqr = 4.0

// Escape iterates z ← z² + c from z = 0 and returns the number of
// completed iterations together with the final iterate. If c does not
// escape within maxIter iterations, the count equals maxIter and z is
// the last iterate (its magnitude may still be ≤ 2).
func Escape(c complex128, maxIter int) (int, complex128) {
	z := complex(0, 0)
	iter := 0
	for iter < maxIter && normSqr(z) <= escapeRadiusSqr {
		z = z*z + c
		iter++
	}
	return iter, z
}

func normSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// ColorAt maps a point of the complex plane to its RGB color. Points
// that stay bounded for maxIter iterations are black; escaped points
// get a palette color from the smooth (continuous) escape count
//
//	iter + 1 − log₂(ln|z|)
//
// normalized by maxIter. The log of a log is safe: escape implies
// |z| > 2, so ln|z| > ln 2 > 0.
func ColorAt(c complex128, maxIter int) [3]uint8 {
	iter, z := Escape(c, maxIter)
	if iter >= maxIter {
		return [3]uint8{0, 0, 0}
	}
	zn := math.Sqrt(normSqr(z))
	smooth := float64(iter) + 1 - math.Log(math.Log(zn))/math.Ln2
	t := clamp(smooth/float64(maxIter), 0, 1)
	return PaletteColor(t)
}
