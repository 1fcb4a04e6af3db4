// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/halfmoss/jfmt/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
}

func TestLoadDefault(t *testing.T) {
	// A directory tree with no config file anywhere up to a VCS root.
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("Config: (-want, +got)\n%s", diff)
	}
}

func TestLoadUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".jfmt.yml"), "indent: 2\ncolor: never\n")
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	cfg, err := config.Load(sub)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Indent != 2 {
		t.Errorf("Indent: got %d, want 2", cfg.Indent)
	}
	if cfg.Color != "never" {
		t.Errorf("Color: got %q, want %q", cfg.Color, "never")
	}
}

func TestLoadStopsAtVCSRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".jfmt.yml"), "indent: 8\n")

	// A nested repository boundary hides the outer config file.
	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	cfg, err := config.Load(repo)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Indent != 4 {
		t.Errorf("Indent: got %d, want default 4", cfg.Indent)
	}
}

func TestLoadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	writeFile(t, path, "tab: true\ncompact: false\n")

	cfg, err := config.LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if !cfg.Tab {
		t.Error("Tab: got false, want true")
	}
	if cfg.Color != "auto" { // unset fields keep their defaults
		t.Errorf("Color: got %q, want %q", cfg.Color, "auto")
	}
}

// Zero is a valid indent width; it selects the compact layout.
func TestLoadPathZeroIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jfmt.yml")
	writeFile(t, path, "indent: 0\n")

	cfg, err := config.LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if cfg.Indent != 0 {
		t.Errorf("Indent: got %d, want 0", cfg.Indent)
	}
}

func TestLoadPathInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"BadYAML", ":\n\t:::\n"},
		{"IndentRange", "indent: 99\n"},
		{"BadColor", "color: sometimes\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".jfmt.yml")
			writeFile(t, path, test.content)
			if cfg, err := config.LoadPath(path); err == nil {
				t.Errorf("LoadPath did not report an error (got %+v)", cfg)
			}
		})
	}
}
