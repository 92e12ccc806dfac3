package semiring

import "strconv"

// TropicalWeight is the (min, +) semiring over float32 with Zero = +Inf and
// One = 0. It is the "standard" weight of OpenFst-compatible automata.
type TropicalWeight float32

var _ = Zero[TropicalWeight] // TropicalWeight satisfies Semiring

// Zero returns +Inf.
func (TropicalWeight) Zero() TropicalWeight { return TropicalWeight(posInf) }

// One returns 0.
func (TropicalWeight) One() TropicalWeight { return 0 }

// Plus returns min(w, o).
func (w TropicalWeight) Plus(o TropicalWeight) (TropicalWeight, error) {
	a, b := float32(w), float32(o)
	if isNaN32(a) || isNaN32(b) {
		return w.Zero(), instability(TypeTropical, "Plus", a, b)
	}
	if b < a {
		return o, nil
	}
	return w, nil
}

// Times returns w + o, with +Inf absorbing.
func (w TropicalWeight) Times(o TropicalWeight) (TropicalWeight, error) {
	v, err := addLogSpace(TypeTropical, float32(w), float32(o))
	if err != nil {
		return w.Zero(), err
	}
	return TropicalWeight(v), nil
}

// ApproxEqual reports |w - o| <= eps.
func (w TropicalWeight) ApproxEqual(o TropicalWeight, eps float64) bool {
	return approxEqual32(float32(w), float32(o), eps)
}

// IsZero reports w == +Inf.
func (w TropicalWeight) IsZero() bool { return isPosInf32(float32(w)) }

// Value returns the raw scalar.
func (w TropicalWeight) Value() float32 { return float32(w) }

// WithValue converts a raw scalar.
func (TropicalWeight) WithValue(v float32) TropicalWeight { return TropicalWeight(v) }

// Quantize rounds w to a multiple of delta.
func (w TropicalWeight) Quantize(delta float64) TropicalWeight {
	return TropicalWeight(quantize32(float32(w), delta))
}

// Type returns TypeTropical.
func (TropicalWeight) Type() Type { return TypeTropical }

// String renders the scalar the way OpenFst prints weights ("Infinity" for Zero).
func (w TropicalWeight) String() string { return formatScalar(float32(w)) }

func formatScalar(v float32) string {
	if isPosInf32(v) {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
