package fst

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/wfst/semiring"
)

// Equal reports whether a and b are observationally identical: same number of
// states, same start, and per state the same final weight and the same arcs in
// the same order. Weights are compared with ApproxEqual(eps); use eps = 0 for
// exact equality.
// Complexity: O(V + E).
func Equal[W semiring.Semiring[W]](a, b Fst[W], eps float64) bool {
	return Diff(a, b, eps) == ""
}

// Diff returns a description of the first observable difference between a and
// b, or "" when Equal(a, b, eps) holds. States are compared in id order.
func Diff[W semiring.Semiring[W]](a, b Fst[W], eps float64) string {
	if a.NumStates() != b.NumStates() {
		return fmt.Sprintf("NumStates: %d != %d", a.NumStates(), b.NumStates())
	}
	sa, oka := a.Start()
	sb, okb := b.Start()
	if oka != okb || sa != sb {
		return fmt.Sprintf("Start: %d != %d", sa, sb)
	}
	for s := range States(a) {
		fa, _ := a.Final(s)
		fb, _ := b.Final(s)
		if !fa.ApproxEqual(fb, eps) {
			return fmt.Sprintf("Final(%d): %v != %v", s, fa, fb)
		}
		na, _ := a.NumArcs(s)
		nb, _ := b.NumArcs(s)
		if na != nb {
			return fmt.Sprintf("NumArcs(%d): %d != %d", s, na, nb)
		}
		arcsA, _ := a.Arcs(s)
		arcsB, _ := b.Arcs(s)
		left := slices.Collect(arcsA)
		i := 0
		for y := range arcsB {
			x := left[i]
			if x.ILabel != y.ILabel || x.OLabel != y.OLabel || x.NextState != y.NextState ||
				!x.Weight.ApproxEqual(y.Weight, eps) {
				return fmt.Sprintf("Arcs(%d)[%d]: %v != %v", s, i, x, y)
			}
			i++
		}
	}
	return ""
}
