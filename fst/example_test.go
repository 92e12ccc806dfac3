package fst_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// ExampleVectorFst_Freeze builds a two-state log acceptor, freezes it and
// reads it back through the Fst interface.
func ExampleVectorFst_Freeze() {
	f := fst.NewVectorFst[semiring.LogWeight]()
	s0, s1 := f.AddState(), f.AddState()
	_ = f.SetStart(s0)
	_ = f.SetFinal(s1, 0.7)
	_ = f.AddArc(s0, fst.NewArc[semiring.LogWeight](12, 12, 0.3, s1))

	frozen, err := f.Freeze()
	if err != nil {
		fmt.Println(err)
		return
	}
	arcs, _ := frozen.Arcs(s0)
	for a := range arcs {
		fmt.Printf("%d:%d/%v -> %d\n", a.ILabel, a.OLabel, a.Weight, a.NextState)
	}
	final, _ := frozen.Final(s0)
	fmt.Println("final(0):", final)
	// Output:
	// 12:12/0.3 -> 1
	// final(0): Infinity
}

// ExampleUnmarshal shows that decoding checks the weight algebra.
func ExampleUnmarshal() {
	data, _ := fst.Marshal[semiring.TropicalWeight](fst.Acceptor[semiring.TropicalWeight]([]fst.Label{1, 2}))

	if _, err := fst.Unmarshal[semiring.LogWeight](data); errors.Is(err, fst.ErrWeightAlgebraMismatch) {
		fmt.Println("log: weight algebra mismatch")
	}
	f, _ := fst.Unmarshal[semiring.TropicalWeight](data)
	fmt.Println("tropical:", f.NumStates(), "states,", f.NumArcsTotal(), "arcs")
	// Output:
	// log: weight algebra mismatch
	// tropical: 3 states, 2 arcs
}
