package semiring

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// posInf is the float32 +Inf shared by the tropical and log Zero.
var posInf = float32(math.Inf(1))

func isNaN32(v float32) bool { return v != v }

func isPosInf32(v float32) bool { return v > math.MaxFloat32 }

// approxEqual32 compares two raw scalars with an absolute tolerance.
// Equal infinities match; NaN never matches.
func approxEqual32(a, b float32, eps float64) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), eps)
}

// quantize32 rounds v to the nearest multiple of delta. Infinities and NaN are
// returned unchanged, as is everything when delta is not positive.
func quantize32(v float32, delta float64) float32 {
	f := float64(v)
	if delta <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}
	return float32(math.Floor(f/delta+0.5) * delta)
}

// addLogSpace is the shared ⊗ of tropical and log weights: plain addition in
// the negative-log domain, undefined only for +Inf + -Inf.
func addLogSpace(t Type, a, b float32) (float32, error) {
	if isNaN32(a) || isNaN32(b) {
		return float32(math.NaN()), instability(t, "Times", a, b)
	}
	if isPosInf32(a) || isPosInf32(b) {
		if math.IsInf(float64(a), -1) || math.IsInf(float64(b), -1) {
			return float32(math.NaN()), instability(t, "Times", a, b)
		}
		return posInf, nil
	}
	return a + b, nil
}
