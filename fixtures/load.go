// SPDX-License-Identifier: MIT
// Package: wfst/fixtures

package fixtures

import (
	"fmt"
	"path"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// LoadCase materializes the manifest entry name from s as a Case over W.
// Option-driven fields (Random, Epsilon, QuantizeDelta) come from opts. A
// non-zero epsilon in the manifest applies unless opts include WithEpsilon.
//
// Errors:
//   - ErrUnknownCase if m has no entry name.
//   - fst.ErrWeightAlgebraMismatch if the entry is of another weight type.
//   - any error of Open for the referenced files.
func LoadCase[W semiring.Semiring[W]](s *Store, m *Manifest, name string, opts ...Option) (Case[W], error) {
	entry, err := m.Lookup(name)
	if err != nil {
		return Case[W]{}, fmt.Errorf("LoadCase: %w", err)
	}
	if want := semiring.TypeOf[W](); entry.WeightType != want {
		return Case[W]{}, fmt.Errorf("LoadCase %q: manifest declares %q, requested %q: %w",
			name, entry.WeightType, want, fst.ErrWeightAlgebraMismatch)
	}
	raw, err := Open[W](s, entry.Raw)
	if err != nil {
		return Case[W]{}, fmt.Errorf("LoadCase %q: %w", name, err)
	}
	cfg := newConfig(opts...)
	c := newCase(entry.Name, raw, opts...)
	c.PlusWeight = semiring.New[W](entry.PlusWeight)
	c.TimesWeight = semiring.New[W](entry.TimesWeight)
	if entry.Epsilon > 0 && !cfg.epsilonSet {
		c.Epsilon = entry.Epsilon
	}
	for op, rel := range entry.Operands {
		if c.Operands[op], err = Open[W](s, rel); err != nil {
			return Case[W]{}, fmt.Errorf("LoadCase %q: %s: %w", name, op, err)
		}
	}
	return c, nil
}

// ExportCase writes c under <name>/ in s, records it in m and saves m.
// Files are named raw.fst and <operation>.fst. The manifest records c.Epsilon
// only when it differs from semiring.DefaultDelta.
func ExportCase[W semiring.Semiring[W]](s *Store, m *Manifest, c Case[W]) error {
	entry := ManifestCase{
		Name:        c.Name,
		WeightType:  semiring.TypeOf[W](),
		Raw:         path.Join(c.Name, "raw.fst"),
		PlusWeight:  c.PlusWeight.Value(),
		TimesWeight: c.TimesWeight.Value(),
	}
	if c.Epsilon != semiring.DefaultDelta {
		entry.Epsilon = c.Epsilon
	}
	if err := checkRel(entry.Raw); err != nil {
		return fmt.Errorf("ExportCase %q: %w", c.Name, err)
	}
	if err := Put[W](s, entry.Raw, c.Raw); err != nil {
		return fmt.Errorf("ExportCase %q: %w", c.Name, err)
	}
	for _, op := range c.Operations() {
		if entry.Operands == nil {
			entry.Operands = make(map[Operation]string, len(c.Operands))
		}
		rel := path.Join(c.Name, string(op)+".fst")
		if err := Put[W](s, rel, c.Operands[op]); err != nil {
			return fmt.Errorf("ExportCase %q: %s: %w", c.Name, op, err)
		}
		entry.Operands[op] = rel
	}
	m.Put(entry)
	return s.SaveManifest(m)
}

// Builtin exports every built-in case into s and returns the saved manifest.
func Builtin(s *Store, opts ...Option) (*Manifest, error) {
	m, err := s.Manifest()
	if err != nil {
		return nil, err
	}
	c010, err := Fst010(opts...)
	if err != nil {
		return nil, err
	}
	if err = ExportCase(s, m, c010); err != nil {
		return nil, err
	}
	c007, err := Fst007(opts...)
	if err != nil {
		return nil, err
	}
	if err = ExportCase(s, m, c007); err != nil {
		return nil, err
	}
	return m, nil
}
