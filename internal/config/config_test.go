package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Extractor != "regex" || cfg.RootType != "NSObject" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Output.Header || cfg.Output.Indent != "  " {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Map.IncludeProperties {
		t.Error("properties should be excluded from the map by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
root_type: NSProxy
output:
  header: false
  indent: "\t"
map:
  include_properties: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RootType != "NSProxy" {
		t.Errorf("RootType = %q", cfg.RootType)
	}
	if cfg.Output.Header {
		t.Error("Output.Header should be false")
	}
	if cfg.Output.Indent != "\t" {
		t.Errorf("Output.Indent = %q", cfg.Output.Indent)
	}
	if !cfg.Map.IncludeProperties {
		t.Error("Map.IncludeProperties should be true")
	}
	// Unset fields keep their defaults.
	if cfg.Extractor != "regex" || cfg.Map.Indent != "  " {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadEmptyValuesFallBack(t *testing.T) {
	path := writeConfig(t, "extractor: \"\"\nroot_type: \"\"\noutput:\n  indent: \"\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extractor != "regex" || cfg.RootType != "NSObject" || cfg.Output.Indent != "  " {
		t.Errorf("empty values should fall back to defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "output: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
