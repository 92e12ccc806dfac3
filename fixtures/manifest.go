// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// manifest.go — YAML index of file-backed cases.

package fixtures

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfst/semiring"
)

// ManifestFile is the manifest name inside a Store root.
const ManifestFile = "manifest.yaml"

// Manifest lists the cases stored under a Store root.
//
//	cases:
//	  - name: fst_010
//	    weight_type: log
//	    raw: fst_010/raw.fst
//	    operands:
//	      compose: fst_010/compose.fst
//	    plus_weight: 1.5
//	    times_weight: 1.5
type Manifest struct {
	Cases []ManifestCase `yaml:"cases"`
}

// ManifestCase is one case entry. Paths are slash-separated and relative to
// the Store root.
type ManifestCase struct {
	Name        string               `yaml:"name"`
	WeightType  semiring.Type        `yaml:"weight_type"`
	Raw         string               `yaml:"raw"`
	Operands    map[Operation]string `yaml:"operands,omitempty"`
	PlusWeight  float32              `yaml:"plus_weight"`
	TimesWeight float32              `yaml:"times_weight"`
	Epsilon     float64              `yaml:"epsilon,omitempty"`
}

// ParseManifest decodes and validates a YAML manifest.
// Errors: ErrBadManifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ParseManifest: %w: %w", ErrBadManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Marshal encodes m as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

// Validate checks names are unique and non-empty, weight types are known,
// operations are known and paths stay inside the root.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Cases))
	for i, c := range m.Cases {
		if c.Name == "" {
			return fmt.Errorf("manifest case %d: empty name: %w", i, ErrBadManifest)
		}
		if seen[c.Name] {
			return fmt.Errorf("manifest case %q: duplicate name: %w", c.Name, ErrBadManifest)
		}
		seen[c.Name] = true
		switch c.WeightType {
		case semiring.TypeTropical, semiring.TypeLog, semiring.TypeProbability:
		default:
			return fmt.Errorf("manifest case %q: weight type %q: %w", c.Name, c.WeightType, ErrBadManifest)
		}
		if err := checkRel(c.Raw); err != nil {
			return fmt.Errorf("manifest case %q: raw: %w", c.Name, err)
		}
		for op, rel := range c.Operands {
			if !op.valid() {
				return fmt.Errorf("manifest case %q: operation %q: %w", c.Name, op, ErrBadManifest)
			}
			if err := checkRel(rel); err != nil {
				return fmt.Errorf("manifest case %q: %s: %w", c.Name, op, err)
			}
		}
	}
	return nil
}

// Lookup returns the entry named name.
// Errors: ErrUnknownCase.
func (m *Manifest) Lookup(name string) (ManifestCase, error) {
	i := slices.IndexFunc(m.Cases, func(c ManifestCase) bool { return c.Name == name })
	if i < 0 {
		return ManifestCase{}, fmt.Errorf("%q: %w", name, ErrUnknownCase)
	}
	return m.Cases[i], nil
}

// Put adds c or replaces the entry with the same name. Entries are kept
// sorted by name.
func (m *Manifest) Put(c ManifestCase) {
	if i := slices.IndexFunc(m.Cases, func(e ManifestCase) bool { return e.Name == c.Name }); i >= 0 {
		m.Cases[i] = c
		return
	}
	m.Cases = append(m.Cases, c)
	slices.SortStableFunc(m.Cases, func(a, b ManifestCase) int { return strings.Compare(a.Name, b.Name) })
}

// Names lists the case names in manifest order.
func (m *Manifest) Names() []string {
	out := make([]string, len(m.Cases))
	for i, c := range m.Cases {
		out[i] = c.Name
	}
	return out
}

// checkRel rejects empty, absolute and escaping paths.
func checkRel(rel string) error {
	if rel == "" {
		return fmt.Errorf("empty path: %w", ErrBadManifest)
	}
	clean := path.Clean(rel)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path %q leaves the root: %w", rel, ErrBadManifest)
	}
	return nil
}
