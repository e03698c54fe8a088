package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// isolate points the home and working directories at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  size: 5\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Board.Target != 2048 || cfg.Render.CellWidth != 7 {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [not a map\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom file should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("no files should yield the embedded default, got %+v", cfg)
	}

	writeFile(t, filepath.Join(work, "configs", FileName), "board:\n  size: 6\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 6 {
		t.Errorf("local config should be used, got size %d", cfg.Board.Size)
	}

	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "board:\n  size: 3\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 3 {
		t.Errorf("user config should win over local config, got size %d", cfg.Board.Size)
	}
}

func TestLoadSkipsMalformedUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "board: [oops\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("malformed user config should fall through to defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"size too small", func(c *Config) { c.Board.Size = 1 }, false},
		{"size too large", func(c *Config) { c.Board.Size = 9 }, false},
		{"largest size", func(c *Config) { c.Board.Size = 8 }, true},
		{"target not power of two", func(c *Config) { c.Board.Target = 1000 }, false},
		{"target too small", func(c *Config) { c.Board.Target = 2 }, false},
		{"small target", func(c *Config) { c.Board.Target = 64 }, true},
		{"cell too narrow", func(c *Config) { c.Render.CellWidth = 3 }, false},
		{"cell too wide", func(c *Config) { c.Render.CellWidth = 13 }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	writeFile(t, path, "board:\n  size: 20\n")

	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() = %v, want ErrInvalidConfig", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := isolate(t)

	tests := []struct {
		in, want string
	}{
		{"~/.t2048/records.db", filepath.Join(home, ".t2048", "records.db")},
		{"~", home},
		{"/tmp/x.db", "/tmp/x.db"},
		{"relative/x.db", "relative/x.db"},
		{"~other/x", "~other/x"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
