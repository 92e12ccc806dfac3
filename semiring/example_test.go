package semiring_test

import (
	"fmt"

	"github.com/katalvlaran/wfst/semiring"
)

// ExampleLogWeight_Plus shows the stable log-sum-exp of two path weights.
func ExampleLogWeight_Plus() {
	a, b := semiring.LogWeight(0.7), semiring.LogWeight(0.7)
	sum, _ := a.Plus(b)
	fmt.Printf("%.4f\n", sum)

	// Output:
	// 0.0069
}

// ExampleSum folds weights without knowing their algebra.
func ExampleSum() {
	tropical, _ := semiring.Sum[semiring.TropicalWeight](0.3, 0.5, 0.1)
	fmt.Println(tropical)

	zero, _ := semiring.Sum[semiring.TropicalWeight]()
	fmt.Println(zero)

	// Output:
	// 0.1
	// Infinity
}
