package imagefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates an empty file for enumeration tests.
func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// TestResolveDirectory tests non-recursive, case-insensitive, sorted
// enumeration.
func TestResolveDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.jpg"))
	writeFile(t, filepath.Join(dir, "a.PNG"))
	writeFile(t, filepath.Join(dir, "c.jpeg"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	if err := os.Mkdir(filepath.Join(dir, "nested.jpg"), 0750); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "nested.jpg", "d.jpg"))

	gotDir, targets, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve(%q) returned error: %v", dir, err)
	}
	if gotDir != dir {
		t.Errorf("source dir = %q, expected %q", gotDir, dir)
	}

	expected := []string{
		filepath.Join(dir, "a.PNG"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.jpeg"),
	}
	if len(targets) != len(expected) {
		t.Fatalf("targets = %v, expected %v", targets, expected)
	}
	for i := range expected {
		if targets[i] != expected[i] {
			t.Errorf("targets[%d] = %q, expected %q", i, targets[i], expected[i])
		}
	}
}

// TestResolveSingleFile tests that a file input scopes the run to that
// file alone.
func TestResolveSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	writeFile(t, path)
	writeFile(t, filepath.Join(dir, "other.jpg"))

	gotDir, targets, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(%q) returned error: %v", path, err)
	}
	if gotDir != dir {
		t.Errorf("source dir = %q, expected %q", gotDir, dir)
	}
	if len(targets) != 1 || targets[0] != path {
		t.Errorf("targets = %v, expected only %q", targets, path)
	}
}

// TestResolveErrors tests the sentinel error classification.
func TestResolveErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"))

	testCases := []struct {
		name     string
		path     string
		expected error
	}{
		{"missing path", filepath.Join(dir, "nope"), ErrInvalidPath},
		{"unsupported extension", filepath.Join(dir, "notes.txt"), ErrUnsupportedExtension},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := Resolve(tc.path); !errors.Is(err, tc.expected) {
				t.Errorf("Resolve(%q) error = %v, expected %v", tc.path, err, tc.expected)
			}
		})
	}
}

// TestOutputDir tests the sibling naming rule.
func TestOutputDir(t *testing.T) {
	t.Parallel()

	got := OutputDir(filepath.Join("base", "photos"))
	expected := filepath.Join("base", "photos_watermark")
	if got != expected {
		t.Errorf("OutputDir = %q, expected %q", got, expected)
	}
}

// TestEnsureOutputDir tests creation and reuse.
func TestEnsureOutputDir(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "photos")
	if err := os.Mkdir(src, 0750); err != nil {
		t.Fatal(err)
	}

	out, err := EnsureOutputDir(src)
	if err != nil {
		t.Fatalf("EnsureOutputDir returned error: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil || !info.IsDir() {
		t.Fatalf("output directory %q not created: %v", out, err)
	}

	// Second call reuses the existing directory.
	if _, err := EnsureOutputDir(src); err != nil {
		t.Errorf("EnsureOutputDir on existing directory returned error: %v", err)
	}
}
