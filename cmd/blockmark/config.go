package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/blockmark"
)

const defaultConfigPath = ".blockmark.toml"

// config is the decoded form of .blockmark.toml. Zero values mean "not set"
// except in the theme section, which starts from blockmark.DefaultTheme.
type config struct {
	Theme   themeConfig   `toml:"theme"`
	Build   buildConfig   `toml:"build"`
	Preview previewConfig `toml:"preview"`

	path string // file the config was read from; empty when none
}

type themeConfig struct {
	Heading int `toml:"heading"`
	Rule    int `toml:"rule"`
	Text    int `toml:"text"`
	Muted   int `toml:"muted"`
	Accent  int `toml:"accent"`
	Error   int `toml:"error"`
}

type buildConfig struct {
	Out  string `toml:"out"`
	Jobs int    `toml:"jobs"`
}

type previewConfig struct {
	Width int `toml:"width"`
}

func defaultConfig() config {
	t := blockmark.DefaultTheme()
	return config{
		Theme: themeConfig{
			Heading: t.Heading,
			Rule:    t.Rule,
			Text:    t.Text,
			Muted:   t.Muted,
			Accent:  t.Accent,
			Error:   t.Error,
		},
	}
}

// loadConfig reads the config at path. An empty path means the default
// location, which may be absent. An explicit path must exist.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	meta, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && !explicit:
		return defaultConfig(), nil
	default:
		return config{}, fmt.Errorf("%s: load config: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("%s: unknown config key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("build", "jobs") && cfg.Build.Jobs < 0 {
		return config{}, fmt.Errorf("%s: [build].jobs must be non-negative, got %d", path, cfg.Build.Jobs)
	}
	if meta.IsDefined("preview", "width") && cfg.Preview.Width < 0 {
		return config{}, fmt.Errorf("%s: [preview].width must be non-negative, got %d", path, cfg.Preview.Width)
	}
	if err := cfg.Theme.validate(); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

func (t themeConfig) validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"heading", t.Heading},
		{"rule", t.Rule},
		{"text", t.Text},
		{"muted", t.Muted},
		{"accent", t.Accent},
		{"error", t.Error},
	}
	for _, f := range fields {
		if f.value < -1 || f.value > 15 {
			return fmt.Errorf("[theme].%s must be in [-1, 15], got %d: %w", f.name, f.value, blockmark.ErrValidation)
		}
	}
	return nil
}

func (t themeConfig) theme() blockmark.Theme {
	return blockmark.Theme{
		Heading: t.Heading,
		Rule:    t.Rule,
		Text:    t.Text,
		Muted:   t.Muted,
		Accent:  t.Accent,
		Error:   t.Error,
	}
}
