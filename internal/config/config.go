// Package config provides configuration types, defaults, and persistence for
// the textinput demo host.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/textinput/internal/log"
	"github.com/iw2rmb/textinput/model"
)

// Config describes the simulated input session the demo host opens.
type Config struct {
	Client      int    `mapstructure:"client" yaml:"client"`
	InputAction string `mapstructure:"input_action" yaml:"input_action"`
	InputType   string `mapstructure:"input_type" yaml:"input_type"`
	Text        string `mapstructure:"text" yaml:"text"`
	Decode      string `mapstructure:"decode" yaml:"decode"` // "strict" (default) or "replace"

	UI  UIConfig  `mapstructure:"ui" yaml:"ui"`
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

type UIConfig struct {
	ShowLineNums bool `mapstructure:"show_line_nums" yaml:"show_line_nums"`
	TabWidth     int  `mapstructure:"tab_width" yaml:"tab_width"`
	ReadOnly     bool `mapstructure:"read_only" yaml:"read_only"`
}

type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`   // empty disables logging
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

func Defaults() Config {
	return Config{
		Client:      1,
		InputAction: "TextInputAction.newline",
		InputType:   "TextInputType.multiline",
		Text:        "Hello from textinput.\nShift+arrows select, ctrl+a selects all.",
		Decode:      model.DecodeStrict.String(),
		UI: UIConfig{
			ShowLineNums: true,
			TabWidth:     4,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks values that cannot be expressed in the YAML schema.
func (c Config) Validate() error {
	if c.Client < 0 {
		return fmt.Errorf("client must be non-negative, got %d", c.Client)
	}
	if _, ok := model.ParseDecodePolicy(c.Decode); !ok {
		return fmt.Errorf("decode must be %q or %q, got %q", model.DecodeStrict, model.DecodeReplace, c.Decode)
	}
	if _, ok := log.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.UI.TabWidth < 0 {
		return fmt.Errorf("ui.tab_width must be non-negative, got %d", c.UI.TabWidth)
	}
	return nil
}

// DecodePolicy returns the parsed decode policy. Call Validate first.
func (c Config) DecodePolicy() model.DecodePolicy {
	p, _ := model.ParseDecodePolicy(c.Decode)
	return p
}

// ModelConfig returns the session configuration the host sends in setClient.
func (c Config) ModelConfig() model.Config {
	return model.Config{
		InputAction: c.InputAction,
		InputType:   model.InputType{Name: c.InputType},
		Decode:      c.DecodePolicy(),
	}
}

// WriteDefault writes Defaults to path as YAML, creating parent directories.
// An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# textinput demo configuration\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Defaults()); err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // G306: config file is not secret
		return fmt.Errorf("writing config: %w", err)
	}
	log.Info(log.CatConfig, "wrote default config", "path", path)
	return nil
}

// Load reads a YAML config file over Defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-selected config path
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
