package semiring

import "math"

// LogWeight is the log semiring over float32: weights are negative log
// probabilities, Times is addition and Plus is the numerically stable
//
//	Plus(a, b) = min(a, b) - log(1 + exp(-|a - b|))
//
// which equals -log(exp(-a) + exp(-b)) without overflowing for large |a|, |b|.
// Zero = +Inf, One = 0.
type LogWeight float32

var _ = Zero[LogWeight] // LogWeight satisfies Semiring

// Zero returns +Inf.
func (LogWeight) Zero() LogWeight { return LogWeight(posInf) }

// One returns 0.
func (LogWeight) One() LogWeight { return 0 }

// Plus returns -log(exp(-w) + exp(-o)).
// Complexity: O(1); computed in float64 and rounded once to float32.
func (w LogWeight) Plus(o LogWeight) (LogWeight, error) {
	a, b := float32(w), float32(o)
	if isNaN32(a) || isNaN32(b) {
		return w.Zero(), instability(TypeLog, "Plus", a, b)
	}
	if isPosInf32(a) {
		return o, nil
	}
	if isPosInf32(b) {
		return w, nil
	}
	fa, fb := float64(a), float64(b)
	r := math.Min(fa, fb) - math.Log1p(math.Exp(-math.Abs(fa-fb)))
	if math.IsNaN(r) {
		// only reachable for -Inf ⊕ -Inf
		return w.Zero(), instability(TypeLog, "Plus", a, b)
	}
	return LogWeight(r), nil
}

// Times returns w + o, with +Inf absorbing.
func (w LogWeight) Times(o LogWeight) (LogWeight, error) {
	v, err := addLogSpace(TypeLog, float32(w), float32(o))
	if err != nil {
		return w.Zero(), err
	}
	return LogWeight(v), nil
}

// ApproxEqual reports |w - o| <= eps.
func (w LogWeight) ApproxEqual(o LogWeight, eps float64) bool {
	return approxEqual32(float32(w), float32(o), eps)
}

// IsZero reports w == +Inf.
func (w LogWeight) IsZero() bool { return isPosInf32(float32(w)) }

// Value returns the raw scalar.
func (w LogWeight) Value() float32 { return float32(w) }

// WithValue converts a raw scalar.
func (LogWeight) WithValue(v float32) LogWeight { return LogWeight(v) }

// Quantize rounds w to a multiple of delta.
func (w LogWeight) Quantize(delta float64) LogWeight {
	return LogWeight(quantize32(float32(w), delta))
}

// Type returns TypeLog.
func (LogWeight) Type() Type { return TypeLog }

func (w LogWeight) String() string { return formatScalar(float32(w)) }
