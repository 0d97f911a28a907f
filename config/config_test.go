package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load of a missing file = %+v, want Default() = %+v", cfg, Default())
	}
}

func TestLoadOverlaysOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".csprc")
	if err := os.WriteFile(path, []byte("max_states: 500\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxStates != 500 {
		t.Fatalf("MaxStates = %d, want 500", cfg.MaxStates)
	}
	if cfg.DefaultModel != "T" {
		t.Fatalf("DefaultModel = %q, want default %q to survive the overlay", cfg.DefaultModel, "T")
	}
	if cfg.Format != "text" {
		t.Fatalf("Format = %q, want default %q to survive the overlay", cfg.Format, "text")
	}
}

func TestLoadOverridesEveryField(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".csprc")
	contents := "default_model: model.js\nmax_states: 10\nhistory_path: /tmp/h.db\nformat: yaml\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{DefaultModel: "model.js", MaxStates: 10, HistoryPath: "/tmp/h.db", Format: "yaml"}
	if cfg != want {
		t.Fatalf("Load = %+v, want %+v", cfg, want)
	}
}
