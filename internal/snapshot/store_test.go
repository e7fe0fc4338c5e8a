package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"lifeedit/internal/life"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), fixedClock)
}

func TestEncodeFormat(t *testing.T) {
	got := string(Encode([]uint8{0, 1, 0, 0, 1, 0, 0, 1, 0}))
	want := "0;1;0;0;1;0;0;1;0"
	if got != want {
		t.Fatalf("Encode = %q, expected %q", got, want)
	}
	if Encode(nil) != nil {
		t.Fatal("empty grid should encode to nothing")
	}
}

func TestDecodeTolerantTokens(t *testing.T) {
	cells, err := Decode([]byte("1;0;x;1 \n"), 4)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cells, []uint8{1, 0, 0, 1}) {
		t.Fatalf("unexpected cells %v", cells)
	}
}

func TestDecodeCountMismatch(t *testing.T) {
	for _, in := range []string{"", "1;0", "1;0;1;0;1"} {
		if _, err := Decode([]byte(in), 4); !errors.Is(err, ErrMalformedData) {
			t.Fatalf("Decode(%q): expected ErrMalformedData, got %v", in, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	src := life.New(9, 6, life.Random(0.4, 5))

	name, err := store.Save(src, "glider")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "glider" {
		t.Fatalf("unexpected name %q", name)
	}

	dst := life.New(9, 6, life.AllDead())
	if err := store.Load(name, dst); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(src.Cells(), dst.Cells()) {
		t.Fatal("loaded grid differs from saved grid")
	}
}

func TestSaveWritesFlatFile(t *testing.T) {
	store := newTestStore(t)
	g := life.New(3, 1, life.AllDead())
	_ = g.Toggle(2, 0)
	if _, err := store.Save(g, "row"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(store.Dir(), "row"+Extension))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0;0;1" {
		t.Fatalf("file contents %q", data)
	}
}

func TestSaveDefaultName(t *testing.T) {
	store := newTestStore(t)
	name, err := store.Save(life.New(2, 2, life.AllDead()), "")
	if err != nil {
		t.Fatal(err)
	}
	if name != "level_20240305_140709" {
		t.Fatalf("unexpected default name %q", name)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), name+Extension)); err != nil {
		t.Fatalf("default-named file missing: %v", err)
	}
}

func TestSaveDefaultNameTwiceKeepsBoth(t *testing.T) {
	store := newTestStore(t)
	first := life.New(3, 3, life.AllDead())
	_ = first.Toggle(0, 0)
	second := life.New(3, 3, life.AllDead())
	_ = second.Toggle(2, 2)
	_ = second.Toggle(1, 1)

	a, err := store.Save(first, "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := store.Save(second, "")
	if err != nil {
		t.Fatal(err)
	}
	if a != "level_20240305_140709" || b != "level_20240305_140709_1" {
		t.Fatalf("unexpected names %q, %q", a, b)
	}

	names, err := store.Names()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(names, []string{a, b}) {
		t.Fatalf("got %v", names)
	}
	for _, tc := range []struct {
		name string
		want *life.Grid
	}{{a, first}, {b, second}} {
		dst := life.New(3, 3, life.AllDead())
		if err := store.Load(tc.name, dst); err != nil {
			t.Fatalf("Load(%q): %v", tc.name, err)
		}
		if !slices.Equal(dst.Cells(), tc.want.Cells()) {
			t.Fatalf("Load(%q) returned the wrong pattern", tc.name)
		}
	}
}

func TestSaveExistingNameRefused(t *testing.T) {
	store := newTestStore(t)
	g := life.New(2, 2, life.AllDead())
	_ = g.Toggle(0, 1)
	if _, err := store.Save(g, "keep"); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(filepath.Join(store.Dir(), "keep"+Extension))
	if err != nil {
		t.Fatal(err)
	}

	other := life.New(2, 2, life.Random(1, 1))
	_, err = store.Save(other, "keep.gol")
	if !errors.Is(err, ErrExists) || !errors.Is(err, ErrWriteFailure) {
		t.Fatalf("expected ErrExists and ErrWriteFailure, got %v", err)
	}
	after, err := os.ReadFile(filepath.Join(store.Dir(), "keep"+Extension))
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Fatalf("snapshot overwritten: %q -> %q", before, after)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	g := life.New(2, 2, life.AllDead())
	if _, err := store.Save(g, "one"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save(g, "one"); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatal(err)
	}
	var files []string
	for _, e := range entries {
		files = append(files, e.Name())
	}
	if !slices.Equal(files, []string{"one" + Extension}) {
		t.Fatalf("unexpected directory contents %v", files)
	}
}

func TestSaveStripsExtensionAndRejectsPaths(t *testing.T) {
	store := newTestStore(t)
	g := life.New(2, 2, life.AllDead())
	name, err := store.Save(g, "pulsar.gol")
	if err != nil {
		t.Fatal(err)
	}
	if name != "pulsar" {
		t.Fatalf("expected extension stripped, got %q", name)
	}
	for _, bad := range []string{"../escape", "a/b", "..", " .gol"} {
		if _, err := store.Save(g, bad); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Save(%q): expected ErrInvalidName, got %v", bad, err)
		}
	}
}

func TestSaveWriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(blocker, fixedClock)
	if _, err := store.Save(life.New(2, 2, life.AllDead()), "any"); !errors.Is(err, ErrWriteFailure) {
		t.Fatalf("expected ErrWriteFailure, got %v", err)
	}
}

func TestLoadNotFound(t *testing.T) {
	store := newTestStore(t)
	if err := store.Load("missing", life.New(2, 2, life.AllDead())); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadShortSnapshotLeavesGridUntouched(t *testing.T) {
	store := newTestStore(t)
	small := life.New(2, 2, life.AllDead())
	_ = small.Toggle(0, 0)
	if _, err := store.Save(small, "small"); err != nil {
		t.Fatal(err)
	}

	dst := life.New(3, 3, life.AllDead())
	_ = dst.Toggle(2, 2)
	before := slices.Clone(dst.Cells())

	if err := store.Load("small", dst); !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
	if !slices.Equal(dst.Cells(), before) {
		t.Fatal("failed load mutated the grid")
	}
}

func TestLoadAcceptsListedAndSuffixedNames(t *testing.T) {
	store := newTestStore(t)
	g := life.New(2, 2, life.AllDead())
	_ = g.Toggle(1, 1)
	if _, err := store.Save(g, "dot"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"dot", "dot.gol"} {
		dst := life.New(2, 2, life.AllDead())
		if err := store.Load(name, dst); err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if dst.AliveCount() != 1 {
			t.Fatalf("Load(%q) produced %d alive cells", name, dst.AliveCount())
		}
	}
}

func TestListSortedAndRestartable(t *testing.T) {
	store := newTestStore(t)
	g := life.New(2, 2, life.AllDead())
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := store.Save(g, name); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("ignore"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(store.Dir(), "archive")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "old.gol"), Encode(g.Cells()), 0o644); err != nil {
		t.Fatal(err)
	}

	want := []string{"alpha", "mid", "zeta"}
	for pass := 0; pass < 2; pass++ {
		names, err := store.Names()
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(names, want) {
			t.Fatalf("pass %d: got %v, expected %v", pass, names, want)
		}
	}

	if err := store.Load("old", life.New(2, 2, life.AllDead())); !errors.Is(err, ErrNotFound) {
		t.Fatalf("snapshot in subdirectory should not load, got %v", err)
	}

	// Early break must not disturb the next scan.
	for name, err := range store.List() {
		if err != nil {
			t.Fatal(err)
		}
		if name != "alpha" {
			t.Fatalf("first name %q", name)
		}
		break
	}
}

func TestListMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"), fixedClock)
	if _, err := store.Names(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "levels", "nested")
	store, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	names, err := store.Names()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Fatalf("expected empty store, got %v", names)
	}
}
