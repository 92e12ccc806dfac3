// SPDX-License-Identifier: MIT
// Package: wfst/fixtures
//
// store.go — file-backed fixture storage with a cache of decoded automata.
//
// Concurrency:
//   - A Store is safe for concurrent use. Cached automata are frozen and are
//     shared read-only between callers.

package fixtures

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Store reads and writes binary automata and the manifest under a root
// directory.
type Store struct {
	root  string
	cache *lru.Cache
	log   *zap.Logger
}

// cacheKey keys decoded automata by path and weight type, since the same
// file decodes only under the algebra it was written for.
type cacheKey struct {
	rel string
	wt  semiring.Type
}

// NewStore opens root, which must be an existing directory. WithLogger and
// WithCacheSize apply; other options are ignored.
func NewStore(root string, opts ...Option) (*Store, error) {
	cfg := newConfig(opts...)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("NewStore: %w: %w", fst.ErrIO, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("NewStore: %s is not a directory: %w", root, fst.ErrIO)
	}
	cache, err := lru.New(cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("NewStore: %w", err)
	}
	return &Store{root: root, cache: cache, log: cfg.logger.With(zap.String("root", root))}, nil
}

// Root returns the store directory.
func (s *Store) Root() string { return s.root }

// Path resolves a manifest-relative path.
func (s *Store) Path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Open returns the automaton stored at rel decoded as W, from cache when
// possible.
// Errors: those of fst.Load, wrapped with rel.
func Open[W semiring.Semiring[W]](s *Store, rel string) (*fst.ConstFst[W], error) {
	key := cacheKey{rel: rel, wt: semiring.TypeOf[W]()}
	if v, ok := s.cache.Get(key); ok {
		s.log.Debug("fixture cache hit", zap.String("path", rel), zap.String("weight_type", string(key.wt)))
		return v.(*fst.ConstFst[W]), nil
	}
	f, err := fst.Load[W](s.Path(rel))
	if err != nil {
		s.log.Warn("fixture load failed", zap.String("path", rel), zap.Error(err))
		return nil, err
	}
	s.cache.Add(key, f)
	s.log.Debug("fixture loaded",
		zap.String("path", rel),
		zap.String("weight_type", string(key.wt)),
		zap.Int("states", f.NumStates()),
		zap.Int("arcs", f.NumArcsTotal()))
	return f, nil
}

// Put saves f at rel, creating parent directories, and drops any cached
// copy of rel.
func Put[W semiring.Semiring[W]](s *Store, rel string, f fst.Fst[W]) error {
	p := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("Put: %w: %w", fst.ErrIO, err)
	}
	if err := fst.Save(p, f); err != nil {
		return err
	}
	for _, wt := range []semiring.Type{semiring.TypeTropical, semiring.TypeLog, semiring.TypeProbability} {
		s.cache.Remove(cacheKey{rel: rel, wt: wt})
	}
	s.log.Debug("fixture saved", zap.String("path", rel), zap.Int("states", f.NumStates()))
	return nil
}

// Manifest reads the manifest of the store. A missing manifest is an empty
// one.
func (s *Store) Manifest() (*Manifest, error) {
	data, err := os.ReadFile(s.Path(ManifestFile))
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Manifest: %w: %w", fst.ErrIO, err)
	}
	return ParseManifest(data)
}

// SaveManifest validates and writes m.
func (s *Store) SaveManifest(m *Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}
	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("SaveManifest: %w", err)
	}
	if err = os.WriteFile(s.Path(ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("SaveManifest: %w: %w", fst.ErrIO, err)
	}
	s.log.Info("manifest saved", zap.Int("cases", len(m.Cases)))
	return nil
}
