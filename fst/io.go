// File: io.go
// Role: Save/Load of binary automata on disk.
// Concurrency:
//   - Save writes to a temporary file in the target directory and renames it
//     into place, so readers never observe a half-written automaton.

package fst

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/wfst/semiring"
)

// Save encodes f and stores it at path, replacing any existing file.
// Errors: as Marshal, plus ErrIO for file system failures.
func Save[W semiring.Semiring[W]](path string, f Fst[W]) (err error) {
	b, err := Marshal(f)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("Save: %w: %w", ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("Save: writing %s: %w: %w", path, ErrIO, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("Save: closing %s: %w: %w", path, ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("Save: %w: %w", ErrIO, err)
	}
	return nil
}

// Load reads the automaton stored at path. The whole file must be one
// automaton; trailing bytes are reported as ErrCorruptGraph.
// Errors: as Unmarshal, plus ErrIO for file system failures.
func Load[W semiring.Semiring[W]](path string) (*ConstFst[W], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w: %w", ErrIO, err)
	}
	f, err := Unmarshal[W](data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return f, nil
}

// LoadHeader decodes only the header of the automaton stored at path.
func LoadHeader(path string) (Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("LoadHeader: %w: %w", ErrIO, err)
	}
	defer file.Close()
	h, err := ReadHeader(bufio.NewReader(file))
	if err != nil {
		return Header{}, fmt.Errorf("LoadHeader %s: %w", path, err)
	}
	return h, nil
}
