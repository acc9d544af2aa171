package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() failed: %v", err)
	}
	d, err := cfg.DifficultyConfig()
	if err != nil {
		t.Fatalf("DifficultyConfig() failed: %v", err)
	}
	if d != difficulty.Easy {
		t.Errorf("default difficulty = %v, expected easy", d)
	}
	if !cfg.Sound {
		t.Error("sound should be enabled by default")
	}
	if cfg.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v, expected 30m", cfg.IdleTimeout())
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "difficulty: hard\nsound: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, expected hard", cfg.Difficulty)
	}
	if cfg.Sound {
		t.Error("Sound should be false")
	}
	// Unspecified keys keep their defaults
	if cfg.DBPath != Default().DBPath {
		t.Errorf("DBPath = %q, expected default", cfg.DBPath)
	}
	if cfg.Server.Address != ":23235" {
		t.Errorf("Server.Address = %q, expected :23235", cfg.Server.Address)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "difficulty: [unclosed\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, userDirName, userFileName), "difficulty: medium\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Difficulty != "medium" {
		t.Errorf("Difficulty = %q, expected medium", cfg.Difficulty)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "default" {
		t.Errorf("Source = %q, expected default", cfg.Source)
	}
	if cfg.Difficulty != "easy" {
		t.Errorf("Difficulty = %q, expected easy", cfg.Difficulty)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"upper case tier", func(c *Config) { c.Difficulty = "HARD" }, false},
		{"unknown tier", func(c *Config) { c.Difficulty = "nightmare" }, true},
		{"negative timeout", func(c *Config) { c.Server.IdleTimeoutMinutes = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
