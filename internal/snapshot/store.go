// Package snapshot saves and restores grid states as flat ';'-delimited
// files in a directory.
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"lifeedit/internal/core"
)

// Extension is the file suffix of stored snapshots.
const Extension = ".gol"

// DefaultNameLayout formats the timestamp part of generated names.
const DefaultNameLayout = "20060102_150405"

const maxNameAttempts = 1000

var (
	ErrNotFound      = errors.New("snapshot: not found")
	ErrMalformedData = errors.New("snapshot: malformed data")
	ErrWriteFailure  = errors.New("snapshot: write failed")
	ErrInvalidName   = errors.New("snapshot: invalid name")
	ErrExists        = errors.New("snapshot: name already taken")
)

// CellSource is anything whose cells can be saved.
type CellSource interface {
	Cells() []uint8
}

// CellSink is anything a snapshot can be loaded into.
type CellSink interface {
	CellCount() int
	SetCells(cells []uint8) error
}

// Store keeps snapshots as files under a single directory.
type Store struct {
	dir string
	now core.Clock
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return NewStore(dir, nil), nil
}

// NewStore returns a Store rooted at dir without touching the filesystem.
// now is used for generated names; nil means time.Now.
func NewStore(dir string, now core.Clock) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{dir: dir, now: now}
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string { return s.dir }

// List yields the names of stored snapshots, without the extension, in
// sorted order. Only the top level of the directory is scanned. Each range
// over the sequence rescans it. A scan failure is yielded once as an error.
func (s *Store) List() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		entries, err := os.ReadDir(s.dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				err = fmt.Errorf("%w: directory %s", ErrNotFound, s.dir)
			}
			yield("", err)
			return
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
				continue
			}
			names = append(names, strings.TrimSuffix(e.Name(), Extension))
		}
		slices.Sort(names)
		for _, name := range names {
			if !yield(name, nil) {
				return
			}
		}
	}
}

// Names collects List into a slice.
func (s *Store) Names() ([]string, error) {
	var out []string
	for name, err := range s.List() {
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

// DefaultName returns the timestamped name used when Save gets no name.
func (s *Store) DefaultName() string {
	return "level_" + s.now().Format(DefaultNameLayout)
}

// Save writes src's cells under name and returns the name used. Stored
// snapshots are never overwritten: an explicit name that is already taken
// fails with ErrExists, while an empty name becomes DefaultName with a
// _1, _2, ... suffix until it is free.
func (s *Store) Save(src CellSource, name string) (string, error) {
	generated := name == ""
	if generated {
		name = s.DefaultName()
	}
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	tmp, err := s.writeTemp(Encode(src.Cells()))
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d", name, i)
		}
		// Link fails instead of replacing an existing file.
		err := os.Link(tmp, s.path(candidate))
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s: %v", ErrWriteFailure, s.path(candidate), err)
		}
		if !generated {
			return "", fmt.Errorf("%w: %w: %s", ErrWriteFailure, ErrExists, name)
		}
	}
	return "", fmt.Errorf("%w: %w: no free name after %s", ErrWriteFailure, ErrExists, name)
}

// writeTemp writes data to a hidden file in the store directory and syncs
// it, so a snapshot only appears under its name once fully on disk.
func (s *Store) writeTemp(data []byte) (string, error) {
	f, err := os.CreateTemp(s.dir, ".save-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %s: %v", ErrWriteFailure, f.Name(), err)
	}
	return f.Name(), nil
}

// Load reads the snapshot called name into dst. dst is only modified when
// the whole snapshot parsed and matches its cell count.
func (s *Store) Load(name string, dst CellSink) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	cells, err := Decode(data, dst.CellCount())
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := dst.SetCells(cells); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedData, name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

func cleanName(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), Extension)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}
