package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("TEXTFIELD_CONFIG_HOME", "/tmp/textfield-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/textfield-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/textfield-config")
	}

	t.Setenv("TEXTFIELD_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/textfield" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/textfield")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("TEXTFIELD_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	def := Default()
	if cfg.Field != def.Field {
		t.Fatalf("field options = %+v, want defaults %+v", cfg.Field, def.Field)
	}
	if cfg.Keymap["ctrl+a"] != "select_all" {
		t.Fatalf("keymap ctrl+a = %q, want %q", cfg.Keymap["ctrl+a"], "select_all")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEXTFIELD_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[field]
wrap-indent = "  "
blink-rate = 0.25
max-lines = 8

[theme]
foreground = "#111111"

[keymap]
"ctrl+w" = "cut"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Field.WrapIndent != "  " {
		t.Fatalf("wrap-indent = %q, want two spaces", cfg.Field.WrapIndent)
	}
	if cfg.Field.BlinkRate != 0.25 {
		t.Fatalf("blink-rate = %v, want 0.25", cfg.Field.BlinkRate)
	}
	if cfg.Field.MaxLines != 8 {
		t.Fatalf("max-lines = %d, want 8", cfg.Field.MaxLines)
	}
	// Untouched settings keep their defaults.
	if cfg.Field.HintDelay != Default().Field.HintDelay {
		t.Fatalf("hint-delay = %v, want default", cfg.Field.HintDelay)
	}
	if cfg.Theme.Foreground != "#111111" {
		t.Fatalf("foreground = %q, want %q", cfg.Theme.Foreground, "#111111")
	}
	if cfg.Theme.Background != Default().Theme.Background {
		t.Fatalf("background = %q, want default", cfg.Theme.Background)
	}
	if cfg.Keymap["ctrl+w"] != "cut" {
		t.Fatalf("keymap ctrl+w = %q, want %q", cfg.Keymap["ctrl+w"], "cut")
	}
	if cfg.Keymap["ctrl+a"] != "select_all" {
		t.Fatalf("keymap ctrl+a lost: %q", cfg.Keymap["ctrl+a"])
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEXTFIELD_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), "not toml [")
	if _, err := Load(); err == nil {
		t.Fatalf("Load of malformed config succeeded, want error")
	}
}
