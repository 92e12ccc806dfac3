// SPDX-License-Identifier: MIT
// Package: wfst/fst
//
// errors.go — sentinel errors for the automaton container and codec.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w at the failing method, never in the sentinel.
//   • Mutators fail before touching state, so a failed call leaves the
//     automaton exactly as it was.

package fst

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates a state id outside the range of added states.
	ErrInvalidState = errors.New("fst: invalid state")

	// ErrCorruptGraph indicates a structural violation detected at Freeze or
	// while decoding: a dangling arc destination, a missing start state on a
	// non-empty automaton, or malformed binary data.
	ErrCorruptGraph = errors.New("fst: corrupt graph")

	// ErrBadMagic indicates binary data that does not start with the fst magic.
	// Always reported together with ErrCorruptGraph.
	ErrBadMagic = errors.New("fst: bad magic number")

	// ErrBadVersion indicates an unsupported binary format version.
	// Always reported together with ErrCorruptGraph.
	ErrBadVersion = errors.New("fst: unsupported format version")

	// ErrWeightAlgebraMismatch indicates that the binary header declares a
	// weight algebra other than the one requested by the caller.
	ErrWeightAlgebraMismatch = errors.New("fst: weight algebra mismatch")

	// ErrIO indicates a failure of the underlying reader, writer or file.
	ErrIO = errors.New("fst: i/o error")
)

// errorf prefixes a formatted message with the method name and wraps err.
// It returns an error of the form "<method>: <message>: <err>".
func errorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// corruptf reports malformed binary data, keeping both ErrCorruptGraph and the
// more specific cause (e.g. ErrBadMagic, io.ErrUnexpectedEOF) matchable.
func corruptf(cause error, format string, args ...any) error {
	if cause == nil {
		return fmt.Errorf("decode: %s: %w", fmt.Sprintf(format, args...), ErrCorruptGraph)
	}
	return fmt.Errorf("decode: %s: %w: %w", fmt.Sprintf(format, args...), ErrCorruptGraph, cause)
}
