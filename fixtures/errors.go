// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// errors.go — sentinel errors for the reference-oracle harness.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w at the failing function.
//   • Option constructors (WithX) panic on meaningless values; everything
//     else, including Config.Options, reports errors.

package fixtures

import "errors"

// ErrUnknownCase indicates a case name absent from the manifest.
var ErrUnknownCase = errors.New("fixtures: unknown case")

// ErrNoOperand indicates a case without an operand for the requested operation.
var ErrNoOperand = errors.New("fixtures: no operand for operation")

// ErrBadManifest indicates a manifest that cannot be parsed or names invalid
// weight types, operations or paths.
var ErrBadManifest = errors.New("fixtures: bad manifest")

// ErrOptionViolation indicates a configuration value that is meaningless,
// such as a negative epsilon or an unknown distribution. Option constructors
// panic instead; this sentinel is returned when values come from a Config.
var ErrOptionViolation = errors.New("fixtures: invalid option value")

// ErrLawViolation indicates that a weight algebra broke a semiring law on
// sampled weights.
var ErrLawViolation = errors.New("fixtures: semiring law violated")

// ErrMismatch indicates an automaton that differs from its expected form
// after a round trip, a freeze or a mapping.
var ErrMismatch = errors.New("fixtures: automaton mismatch")
