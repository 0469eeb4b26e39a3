package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadToolConfig(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "addcheck.toml")
	data := `# test manifest
[output]
format = "json"
color = "off"

[check]
max_diagnostics = 25
jobs = 2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cfg, err := loadToolConfig(path)
	if err != nil {
		t.Fatalf("loadToolConfig(%q) error: %v", path, err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("output.format = %q, want %q", cfg.Output.Format, "json")
	}
	if cfg.Output.Color != "off" {
		t.Fatalf("output.color = %q, want %q", cfg.Output.Color, "off")
	}
	if cfg.Check.MaxDiagnostics != 25 {
		t.Fatalf("check.max_diagnostics = %d, want 25", cfg.Check.MaxDiagnostics)
	}
	if cfg.Check.Jobs != 2 {
		t.Fatalf("check.jobs = %d, want 2", cfg.Check.Jobs)
	}
}

func TestLoadToolConfigRejectsBadFormat(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "addcheck.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, err := loadToolConfig(path); err == nil {
		t.Fatal("expected error for output.format = xml")
	}
}

func TestFindAddcheckTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := filepath.Join(root, "addcheck.toml")
	if err := os.WriteFile(want, []byte("[output]\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	got, ok, err := findAddcheckToml(nested)
	if err != nil {
		t.Fatalf("findAddcheckToml error: %v", err)
	}
	if !ok {
		t.Fatal("expected to find manifest above nested dir")
	}
	if got != want {
		t.Fatalf("found %q, want %q", got, want)
	}
}
