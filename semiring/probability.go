package semiring

// ProbabilityWeight is the real semiring (+, ×) over non-negative float32
// values with Zero = 0 and One = 1. Plus is not closed over [0, 1].
type ProbabilityWeight float32

var _ = Zero[ProbabilityWeight] // ProbabilityWeight satisfies Semiring

// Zero returns 0.
func (ProbabilityWeight) Zero() ProbabilityWeight { return 0 }

// One returns 1.
func (ProbabilityWeight) One() ProbabilityWeight { return 1 }

// Plus returns w + o.
func (w ProbabilityWeight) Plus(o ProbabilityWeight) (ProbabilityWeight, error) {
	return w.apply("Plus", o, float32(w)+float32(o))
}

// Times returns w × o.
func (w ProbabilityWeight) Times(o ProbabilityWeight) (ProbabilityWeight, error) {
	return w.apply("Times", o, float32(w)*float32(o))
}

// apply validates operands and result of a single arithmetic step
// (Inf - Inf under Plus and 0 × Inf under Times both yield NaN).
func (w ProbabilityWeight) apply(op string, o ProbabilityWeight, r float32) (ProbabilityWeight, error) {
	if isNaN32(float32(w)) || isNaN32(float32(o)) || isNaN32(r) {
		return w.Zero(), instability(TypeProbability, op, float32(w), float32(o))
	}
	return ProbabilityWeight(r), nil
}

// ApproxEqual reports |w - o| <= eps.
func (w ProbabilityWeight) ApproxEqual(o ProbabilityWeight, eps float64) bool {
	return approxEqual32(float32(w), float32(o), eps)
}

// IsZero reports w == 0 (either sign).
func (w ProbabilityWeight) IsZero() bool { return w == 0 }

// Value returns the raw scalar.
func (w ProbabilityWeight) Value() float32 { return float32(w) }

// WithValue converts a raw scalar.
func (ProbabilityWeight) WithValue(v float32) ProbabilityWeight { return ProbabilityWeight(v) }

// Quantize rounds w to a multiple of delta.
func (w ProbabilityWeight) Quantize(delta float64) ProbabilityWeight {
	return ProbabilityWeight(quantize32(float32(w), delta))
}

// Type returns TypeProbability.
func (ProbabilityWeight) Type() Type { return TypeProbability }

func (w ProbabilityWeight) String() string { return formatScalar(float32(w)) }
