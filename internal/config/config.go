package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FieldOptions are the engine behavior defaults applied to every field the
// host creates. Per-field settings (width, numeric bounds) stay in code.
type FieldOptions struct {
	WrapIndent    string  `toml:"wrap-indent"`
	NewLineIndent string  `toml:"newline-indent"`
	BlinkRate     float64 `toml:"blink-rate"`
	HintDelay     float64 `toml:"hint-delay"`
	MinLines      int     `toml:"min-lines"`
	MaxLines      int     `toml:"max-lines"`
}

// Theme holds the demo host's colors as hex strings.
type Theme struct {
	Foreground          string `toml:"foreground"`
	Background          string `toml:"background"`
	LabelForeground     string `toml:"label-foreground"`
	SelectionForeground string `toml:"selection-foreground"`
	SelectionBackground string `toml:"selection-background"`
	BorderForeground    string `toml:"border-foreground"`
	FocusForeground     string `toml:"focus-foreground"`
	HintForeground      string `toml:"hint-foreground"`
	HintBackground      string `toml:"hint-background"`
}

type Config struct {
	Field  FieldOptions      `toml:"field"`
	Theme  Theme             `toml:"theme"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Field: FieldOptions{
			WrapIndent:    "",
			NewLineIndent: "",
			BlinkRate:     0.5,
			HintDelay:     0.7,
			MinLines:      1,
			MaxLines:      0,
		},
		Theme: Theme{
			Foreground:          "#B3B1AD",
			Background:          "#0A0E14",
			LabelForeground:     "#59C2FF",
			SelectionForeground: "#B3B1AD",
			SelectionBackground: "#27425A",
			BorderForeground:    "#3E4B59",
			FocusForeground:     "#E6B450",
			HintForeground:      "#0A0E14",
			HintBackground:      "#E6B450",
		},
		Keymap: map[string]string{
			"left":            "move_left",
			"right":           "move_right",
			"up":              "move_up",
			"down":            "move_down",
			"shift+left":      "select_left",
			"shift+right":     "select_right",
			"shift+up":        "select_up",
			"shift+down":      "select_down",
			"home":            "line_start",
			"end":             "line_end",
			"shift+home":      "select_line_start",
			"shift+end":       "select_line_end",
			"backspace":       "backspace",
			"del":             "delete_char",
			"enter":           "newline",
			"tab":             "focus_next",
			"shift+tab":       "focus_prev",
			"ctrl+t":          "insert_tab",
			"ctrl+a":          "select_all",
			"ctrl+c":          "copy",
			"ctrl+x":          "cut",
			"ctrl+v":          "paste",
			"ctrl+q":          "quit",
		},
	}
}

// Load reads config.toml from the config directory over the defaults. A
// missing file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var over Config
	if _, err := toml.Decode(string(data), &over); err != nil {
		return cfg, err
	}
	mergeConfig(&cfg, over)
	return cfg, nil
}

func mergeConfig(dst *Config, src Config) {
	if src.Field.WrapIndent != "" {
		dst.Field.WrapIndent = src.Field.WrapIndent
	}
	if src.Field.NewLineIndent != "" {
		dst.Field.NewLineIndent = src.Field.NewLineIndent
	}
	if src.Field.BlinkRate > 0 {
		dst.Field.BlinkRate = src.Field.BlinkRate
	}
	if src.Field.HintDelay > 0 {
		dst.Field.HintDelay = src.Field.HintDelay
	}
	if src.Field.MinLines > 0 {
		dst.Field.MinLines = src.Field.MinLines
	}
	if src.Field.MaxLines > 0 {
		dst.Field.MaxLines = src.Field.MaxLines
	}
	mergeTheme(&dst.Theme, src.Theme)
	for k, v := range src.Keymap {
		dst.Keymap[k] = v
	}
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.LabelForeground != "" {
		dst.LabelForeground = src.LabelForeground
	}
	if src.SelectionForeground != "" {
		dst.SelectionForeground = src.SelectionForeground
	}
	if src.SelectionBackground != "" {
		dst.SelectionBackground = src.SelectionBackground
	}
	if src.BorderForeground != "" {
		dst.BorderForeground = src.BorderForeground
	}
	if src.FocusForeground != "" {
		dst.FocusForeground = src.FocusForeground
	}
	if src.HintForeground != "" {
		dst.HintForeground = src.HintForeground
	}
	if src.HintBackground != "" {
		dst.HintBackground = src.HintBackground
	}
}

func ConfigDir() (string, error) {
	if v := os.Getenv("TEXTFIELD_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "textfield"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textfield"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
