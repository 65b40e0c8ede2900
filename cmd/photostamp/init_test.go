package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitCmd tests config file generation, the already-exists guard,
// and the force flag.
func TestInitCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".photostamp")

	run := func(args ...string) (string, error) {
		cmd := NewInitCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run("-o", path)
	if err != nil {
		t.Fatalf("init returned error: %v", err)
	}
	if !strings.Contains(out, "Created configuration file") {
		t.Errorf("output %q is missing the creation notice", out)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("generated file is unreadable: %v", err)
	}
	for _, key := range []string{"font_size", "color", "position", "jpeg_quality"} {
		if !strings.Contains(string(content), key) {
			t.Errorf("generated config is missing %q", key)
		}
	}

	if _, err := run("-o", path); err == nil {
		t.Error("expected an error when the file already exists")
	}

	if _, err := run("-o", path, "-f"); err != nil {
		t.Errorf("force overwrite returned error: %v", err)
	}
}

// TestInitCmdCreatesParentDirs tests nested output paths.
func TestInitCmdCreatesParentDirs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	cmd := NewInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-o", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("init returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected the config file at %s: %v", path, err)
	}
}
