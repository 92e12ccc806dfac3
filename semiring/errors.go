// SPDX-License-Identifier: MIT
// Package: wfst/semiring
//
// errors.go — sentinel errors for weight algebras.
//
// Error policy:
//   • Only package-level sentinels are exposed; match with errors.Is.
//   • Plus/Times attach operand context with %w and never panic.

package semiring

import (
	"errors"
	"fmt"
)

// ErrNumericInstability indicates that Plus or Times evaluated to an undefined
// value, e.g. a NaN operand, +Inf + -Inf under Times, or Log Plus of two -Inf.
var ErrNumericInstability = errors.New("semiring: numeric instability")

// instability wraps ErrNumericInstability with the operation and its operands.
func instability(t Type, op string, a, b float32) error {
	return fmt.Errorf("%s.%s(%g, %g): %w", t, op, a, b, ErrNumericInstability)
}
