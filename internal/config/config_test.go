package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Locale != "en" {
		t.Errorf("default locale = %q, want en", cfg.UI.Locale)
	}
	if !cfg.UI.ScrollHint {
		t.Error("scroll hint should default to enabled")
	}
	if cfg.API.PageSize <= 0 {
		t.Errorf("default page size = %d, want > 0", cfg.API.PageSize)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "souqcouch", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("[ui]\nlocale = \"ar\"\nwidth = 800\n\n[api]\nbase_url = \"https://souq.example\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Locale != "ar" {
		t.Errorf("locale = %q, want ar", cfg.UI.Locale)
	}
	if cfg.UI.Width != 800 {
		t.Errorf("width = %d, want 800", cfg.UI.Width)
	}
	// Unset keys keep their defaults
	if cfg.UI.Height != 720 {
		t.Errorf("height = %d, want default 720", cfg.UI.Height)
	}
	if cfg.API.BaseURL != "https://souq.example" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.UI.Locale = "ar"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UI.Locale != "ar" {
		t.Errorf("round-trip locale = %q, want ar", loaded.UI.Locale)
	}
}
