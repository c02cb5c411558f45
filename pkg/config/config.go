// Package config defines the departure configuration schema and its JSON
// persistence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ThemeConfig selects how theme colors are resolved.
type ThemeConfig struct {
	Source       string        `json:"source"` // "manual", "system", "file", "command"
	ManualColors *ManualColors `json:"manual_colors,omitempty"`
	FilePath     string        `json:"file_path,omitempty"`
	Command      string        `json:"command,omitempty"`
	WatchFile    bool          `json:"watch_file"`
}

// ManualColors is the inline color set used by the "manual" theme source.
type ManualColors struct {
	Background string `json:"background"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Danger     string `json:"danger"`
}

// LayoutConfig controls how action buttons are arranged.
// Sizes and spacing are terminal cells.
type LayoutConfig struct {
	LayoutType    string `json:"layout_type"` // "horizontal", "vertical", "grid"
	ButtonSize    int    `json:"button_size"`
	ButtonSpacing int    `json:"button_spacing"`
	Margin        int    `json:"margin"`
	Columns       int    `json:"columns,omitempty"` // grid only, 0 means default
}

// EffectsConfig carries presentation toggles. Persisted for config fidelity;
// the terminal renderer honors what a terminal can express.
type EffectsConfig struct {
	Blur               bool `json:"blur"`
	Animations         bool `json:"animations"`
	HoverEffects       bool `json:"hover_effects"`
	TransitionDuration int  `json:"transition_duration"` // milliseconds
}

// ActionConfig describes one launcher entry. The action list is immutable
// input for the lifetime of a run; components read it, never mutate it.
type ActionConfig struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Icon    string `json:"icon"`
	Keybind string `json:"keybind,omitempty"`
	Confirm bool   `json:"confirm"`
	Danger  bool   `json:"danger"`
}

// Config is the full persisted configuration.
type Config struct {
	Theme   ThemeConfig    `json:"theme"`
	Layout  LayoutConfig   `json:"layout"`
	Effects EffectsConfig  `json:"effects"`
	Actions []ActionConfig `json:"actions"`
}

// Default returns the stock configuration: manual Catppuccin-style colors and
// the six standard power actions.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Source: "manual",
			ManualColors: &ManualColors{
				Background: "rgba(30, 30, 46, 0.8)",
				Primary:    "#89b4fa",
				Secondary:  "#74c7ec",
				Text:       "#cdd6f4",
				Danger:     "#f38ba8",
			},
		},
		Layout: LayoutConfig{
			LayoutType:    "horizontal",
			ButtonSize:    16,
			ButtonSpacing: 2,
			Margin:        1,
			Columns:       3,
		},
		Effects: EffectsConfig{
			Blur:               true,
			Animations:         true,
			HoverEffects:       true,
			TransitionDuration: 200,
		},
		Actions: []ActionConfig{
			{Name: "Lock", Command: "hyprlock", Icon: "system-lock-screen", Keybind: "l"},
			{Name: "Logout", Command: "hyprctl dispatch exit", Icon: "system-log-out", Keybind: "e", Confirm: true},
			{Name: "Suspend", Command: "systemctl suspend", Icon: "system-suspend", Keybind: "s"},
			{Name: "Hibernate", Command: "systemctl hibernate", Icon: "system-suspend-hibernate", Keybind: "h"},
			{Name: "Reboot", Command: "systemctl reboot", Icon: "system-reboot", Keybind: "r", Confirm: true, Danger: true},
			{Name: "Shutdown", Command: "systemctl poweroff", Icon: "system-shutdown", Keybind: "p", Confirm: true, Danger: true},
		},
	}
}

// normalize fills zero values left by older or hand-edited config files so the
// rest of the program never sees an unusable layout or theme source.
func (c *Config) normalize() {
	if c == nil {
		return
	}
	def := Default()
	if c.Theme.Source == "" {
		c.Theme.Source = def.Theme.Source
	}
	if c.Layout.LayoutType == "" {
		c.Layout.LayoutType = def.Layout.LayoutType
	}
	if c.Layout.ButtonSize <= 0 {
		c.Layout.ButtonSize = def.Layout.ButtonSize
	}
	if c.Layout.ButtonSpacing < 0 {
		c.Layout.ButtonSpacing = def.Layout.ButtonSpacing
	}
	if c.Layout.Margin < 0 {
		c.Layout.Margin = def.Layout.Margin
	}
	if c.Actions == nil {
		c.Actions = []ActionConfig{}
	}
}

// DefaultPath returns the standard config file location,
// $XDG_CONFIG_HOME/departure/config.json.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "departure", "config.json"), nil
}

// GetDepartureDir returns the path to the ~/.departure directory used for
// logs and other run artifacts.
func GetDepartureDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".departure"), nil
}

// EnsureDepartureDir creates the ~/.departure directory if it doesn't exist.
func EnsureDepartureDir() error {
	dir, err := GetDepartureDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// Load reads the configuration from path. A missing file is not an error; the
// defaults are returned so a fresh install works without any setup. Malformed
// content is an error so a typo never silently reverts the user to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
