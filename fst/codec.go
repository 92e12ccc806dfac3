// SPDX-License-Identifier: MIT
// Package: wfst/fst
//
// codec.go — binary interchange format.
//
// Layout (all integers little-endian):
//
//	offset  size  field
//	0       4     magic        uint32 = Magic
//	4       4     version      uint32 = FormatVersion
//	8       4+n   weight type  uint32 length + ASCII semiring.Type
//	.       4+m   label type   uint32 length + ASCII LabelType
//	.       8     num states   uint64
//	.       8     start        int64, -1 when the automaton is empty
//	.       8     num arcs     uint64, total over all states
//	then for every state in id order:
//	        4     final weight float32 bits; Zero is written as W.Zero()
//	        8     num arcs     uint64
//	        16×k  arcs         uint32 ilabel, uint32 olabel, float32 weight, uint32 next
//
// Determinism:
//   - States in id order, arcs in insertion order, one bit pattern for Zero.
//   - Marshal(Unmarshal(b)) reproduces b byte for byte for any b from Marshal.
// Atomicity:
//   - Decoding builds the whole ConstFst before returning it; on any error the
//     caller gets nil and no partially built automaton is reachable.

package fst

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/wfst/semiring"
)

const (
	// Magic opens every binary automaton.
	Magic uint32 = 0x7EB2FDD6
	// FormatVersion is the only layout version this package reads and writes.
	FormatVersion uint32 = 1
	// LabelType is the arc label tag: labels are unsigned 32-bit integers.
	LabelType = "uint32"

	// maxTagLen bounds the header strings so a corrupt length cannot trigger
	// a large allocation.
	maxTagLen = 64
	// maxPrealloc caps slice preallocation from untrusted counts; slices grow
	// past it as data actually arrives.
	maxPrealloc = 1 << 16

	stateHeaderSize = 4 + 8
	arcSize         = 4 + 4 + 4 + 4
)

// Header is the decoded preamble of a binary automaton.
type Header struct {
	Version    uint32
	WeightType semiring.Type
	LabelType  string
	NumStates  int
	Start      StateID
	NumArcs    int
}

// Marshal encodes f in the binary interchange format.
//
// Errors:
//   - ErrCorruptGraph if f is not freezable (dangling arc, missing or
//     out-of-range start) or NumArcs disagrees with the arcs Arcs yields.
//   - semiring.ErrNumericInstability if a weight is NaN.
//
// Complexity: O(V + E).
func Marshal[W semiring.Semiring[W]](f Fst[W]) ([]byte, error) {
	return AppendBinary(nil, f)
}

// AppendBinary appends the encoding of f to dst and returns the extended
// slice. On error dst is returned unchanged.
func AppendBinary[W semiring.Semiring[W]](dst []byte, f Fst[W]) ([]byte, error) {
	n := f.NumStates()
	start, hasStart := f.Start()
	if n > 0 && !hasStart {
		return dst, errorf("Marshal", ErrCorruptGraph, "%d states but no start state", n)
	}
	if !hasStart {
		start = NoStateID
	} else if start < 0 || int(start) >= n {
		return dst, errorf("Marshal", ErrCorruptGraph, "start state %d not in [0, %d)", start, n)
	}
	if uint64(n) > math.MaxUint32 {
		return dst, errorf("Marshal", ErrCorruptGraph, "%d states exceed the uint32 id space", n)
	}
	total := NumArcsTotal(f)
	wt := string(semiring.TypeOf[W]())

	size := 4 + 4 + 4 + len(wt) + 4 + len(LabelType) + 8 + 8 + 8 + n*stateHeaderSize + total*arcSize
	out := make([]byte, 0, len(dst)+size)
	out = append(out, dst...)

	out = binary.LittleEndian.AppendUint32(out, Magic)
	out = binary.LittleEndian.AppendUint32(out, FormatVersion)
	out = appendTag(out, wt)
	out = appendTag(out, LabelType)
	out = binary.LittleEndian.AppendUint64(out, uint64(n))
	out = binary.LittleEndian.AppendUint64(out, uint64(int64(start)))
	out = binary.LittleEndian.AppendUint64(out, uint64(total))

	var err error
	for s := range States(f) {
		final, ferr := f.Final(s)
		if ferr != nil {
			return dst, ferr
		}
		if out, err = appendWeight(out, final, "final weight of state %d", s); err != nil {
			return dst, err
		}
		k, kerr := f.NumArcs(s)
		if kerr != nil {
			return dst, kerr
		}
		out = binary.LittleEndian.AppendUint64(out, uint64(k))
		arcs, aerr := f.Arcs(s)
		if aerr != nil {
			return dst, aerr
		}
		i := 0
		for a := range arcs {
			if a.NextState < 0 || int(a.NextState) >= n {
				return dst, errorf("Marshal", ErrCorruptGraph,
					"arc %d of state %d points to state %d, have %d states", i, s, a.NextState, n)
			}
			out = binary.LittleEndian.AppendUint32(out, uint32(a.ILabel))
			out = binary.LittleEndian.AppendUint32(out, uint32(a.OLabel))
			if out, err = appendWeight(out, a.Weight, "weight of arc %d of state %d", i, s); err != nil {
				return dst, err
			}
			out = binary.LittleEndian.AppendUint32(out, uint32(a.NextState))
			i++
		}
		if i != k {
			return dst, errorf("Marshal", ErrCorruptGraph,
				"state %d reports %d arcs but yields %d", s, k, i)
		}
	}
	return out, nil
}

// Write encodes f and writes it to w in a single call.
// Errors: as Marshal, plus ErrIO when w fails.
func Write[W semiring.Semiring[W]](w io.Writer, f Fst[W]) error {
	b, err := Marshal(f)
	if err != nil {
		return err
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("Write: %w: %w", ErrIO, err)
	}
	return nil
}

// Unmarshal decodes a complete binary automaton. data must hold exactly one
// automaton; trailing bytes are rejected.
//
// Errors:
//   - ErrWeightAlgebraMismatch if the header declares a weight type other than W's.
//   - ErrCorruptGraph (with ErrBadMagic / ErrBadVersion / io.ErrUnexpectedEOF
//     where applicable) for any malformed or inconsistent content.
func Unmarshal[W semiring.Semiring[W]](data []byte) (*ConstFst[W], error) {
	r := bytes.NewReader(data)
	f, err := decode[W](&decoder{r: r})
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, corruptf(nil, "%d trailing bytes after automaton", r.Len())
	}
	return f, nil
}

// Read decodes one binary automaton from r. It consumes exactly the bytes of
// that automaton when r is an io.ByteReader; otherwise r is buffered and may be
// read past the end of the automaton.
//
// Errors: as Unmarshal, plus ErrIO when r fails.
func Read[W semiring.Semiring[W]](r io.Reader) (*ConstFst[W], error) {
	return decode[W](&decoder{r: asByteReader(r)})
}

// ReadHeader decodes only the header of a binary automaton, whatever its
// weight type. Tools use it to pick the weight type before calling Read.
func ReadHeader(r io.Reader) (Header, error) {
	return (&decoder{r: asByteReader(r)}).header()
}

func asByteReader(r io.Reader) io.Reader {
	if _, ok := r.(io.ByteReader); ok {
		return r
	}
	return bufio.NewReader(r)
}

func appendTag(out []byte, tag string) []byte {
	out = binary.LittleEndian.AppendUint32(out, uint32(len(tag)))
	return append(out, tag...)
}

// appendWeight writes the canonical bits of w: every Zero encodes as the
// algebra's reserved Zero value.
func appendWeight[W semiring.Semiring[W]](out []byte, w W, format string, args ...any) ([]byte, error) {
	if w.IsZero() {
		w = semiring.Zero[W]()
	}
	v := w.Value()
	if v != v {
		return out, errorf("Marshal", semiring.ErrNumericInstability, "NaN "+format, args...)
	}
	return binary.LittleEndian.AppendUint32(out, math.Float32bits(v)), nil
}

// decoder reads fixed-width little-endian fields and tracks the byte offset
// for error messages.
type decoder struct {
	r   io.Reader
	buf [arcSize]byte
	off int64
}

func (d *decoder) read(n int, what string) ([]byte, error) {
	b := d.buf[:n]
	if _, err := io.ReadFull(d.r, b); err != nil {
		return nil, d.fail(err, what)
	}
	d.off += int64(n)
	return b, nil
}

// fail classifies a read error: running out of data is corruption, anything
// else comes from the underlying reader.
func (d *decoder) fail(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return corruptf(io.ErrUnexpectedEOF, "truncated %s at offset %d", what, d.off)
	}
	return fmt.Errorf("decode: reading %s at offset %d: %w: %w", what, d.off, ErrIO, err)
}

func (d *decoder) u32(what string) (uint32, error) {
	b, err := d.read(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *decoder) u64(what string) (uint64, error) {
	b, err := d.read(8, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *decoder) tag(what string) (string, error) {
	n, err := d.u32(what + " length")
	if err != nil {
		return "", err
	}
	if n > maxTagLen {
		return "", corruptf(nil, "%s length %d exceeds %d", what, n, maxTagLen)
	}
	b := make([]byte, n)
	if _, err = io.ReadFull(d.r, b); err != nil {
		return "", d.fail(err, what)
	}
	d.off += int64(n)
	return string(b), nil
}

// header reads and validates the preamble, except for the weight type, which
// only the generic decode can compare.
func (d *decoder) header() (Header, error) {
	var h Header
	magic, err := d.u32("magic")
	if err != nil {
		return h, err
	}
	if magic != Magic {
		return h, corruptf(ErrBadMagic, "magic %#08x, want %#08x", magic, Magic)
	}
	if h.Version, err = d.u32("version"); err != nil {
		return h, err
	}
	if h.Version != FormatVersion {
		return h, corruptf(ErrBadVersion, "version %d, want %d", h.Version, FormatVersion)
	}
	wt, err := d.tag("weight type")
	if err != nil {
		return h, err
	}
	h.WeightType = semiring.Type(wt)
	if h.LabelType, err = d.tag("label type"); err != nil {
		return h, err
	}
	if h.LabelType != LabelType {
		return h, corruptf(nil, "label type %q, want %q", h.LabelType, LabelType)
	}

	numStates, err := d.u64("state count")
	if err != nil {
		return h, err
	}
	if numStates > math.MaxUint32 {
		return h, corruptf(nil, "state count %d exceeds the uint32 id space", numStates)
	}
	h.NumStates = int(numStates)

	start, err := d.u64("start state")
	if err != nil {
		return h, err
	}
	h.Start = StateID(int64(start))
	switch {
	case h.Start == NoStateID && h.NumStates > 0:
		return h, corruptf(nil, "%d states but no start state", h.NumStates)
	case h.Start != NoStateID && (h.Start < 0 || int(h.Start) >= h.NumStates):
		return h, corruptf(nil, "start state %d not in [0, %d)", int64(start), h.NumStates)
	}

	numArcs, err := d.u64("arc count")
	if err != nil {
		return h, err
	}
	if numArcs > math.MaxInt {
		return h, corruptf(nil, "arc count %d is implausible", numArcs)
	}
	h.NumArcs = int(numArcs)
	return h, nil
}

func (d *decoder) weight(what string) (float32, error) {
	bits, err := d.u32(what)
	if err != nil {
		return 0, err
	}
	v := math.Float32frombits(bits)
	if v != v {
		return 0, corruptf(nil, "NaN %s at offset %d", what, d.off-4)
	}
	return v, nil
}

// decode reads a full automaton of weight type W.
func decode[W semiring.Semiring[W]](d *decoder) (*ConstFst[W], error) {
	h, err := d.header()
	if err != nil {
		return nil, err
	}
	if want := semiring.TypeOf[W](); h.WeightType != want {
		return nil, fmt.Errorf("decode: header declares %q, requested %q: %w",
			h.WeightType, want, ErrWeightAlgebraMismatch)
	}

	f := &ConstFst[W]{
		states: make([]constState[W], 0, min(h.NumStates, maxPrealloc)),
		arcs:   make([]Arc[W], 0, min(h.NumArcs, maxPrealloc)),
		start:  h.Start,
	}
	for s := 0; s < h.NumStates; s++ {
		final, err := d.weight("final weight")
		if err != nil {
			return nil, err
		}
		k, err := d.u64("arc count of state")
		if err != nil {
			return nil, err
		}
		if k > uint64(h.NumArcs-len(f.arcs)) {
			return nil, corruptf(nil, "state %d declares %d arcs, header leaves %d", s, k, h.NumArcs-len(f.arcs))
		}
		f.states = append(f.states, constState[W]{
			final: semiring.New[W](final),
			pos:   len(f.arcs),
			narcs: int(k),
		})
		for i := 0; i < int(k); i++ {
			b, err := d.read(arcSize, "arc")
			if err != nil {
				return nil, err
			}
			w := math.Float32frombits(binary.LittleEndian.Uint32(b[8:12]))
			if w != w {
				return nil, corruptf(nil, "NaN weight on arc %d of state %d", i, s)
			}
			next := binary.LittleEndian.Uint32(b[12:16])
			if uint64(next) >= uint64(h.NumStates) {
				return nil, corruptf(nil, "arc %d of state %d points to state %d, have %d states", i, s, next, h.NumStates)
			}
			f.arcs = append(f.arcs, Arc[W]{
				ILabel:    Label(binary.LittleEndian.Uint32(b[0:4])),
				OLabel:    Label(binary.LittleEndian.Uint32(b[4:8])),
				Weight:    semiring.New[W](w),
				NextState: StateID(next),
			})
		}
	}
	if len(f.arcs) != h.NumArcs {
		return nil, corruptf(nil, "header declares %d arcs, states hold %d", h.NumArcs, len(f.arcs))
	}
	return f, nil
}
