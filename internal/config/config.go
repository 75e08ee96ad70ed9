// Package config loads the optional chatstat configuration file.
// Missing file means defaults; command-line flags override whatever is
// loaded here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Display  DisplayConfig
	Analysis AnalysisConfig
}

type DisplayConfig struct {
	BarWidth   int    `toml:"bar_width"`
	SampleSize int    `toml:"sample_size"`
	Fill       string `toml:"fill"`
	Color      bool   `toml:"color"`
}

type AnalysisConfig struct {
	StopwordLanguage string   `toml:"stopword_language"`
	Modes            []string `toml:"modes"`
}

type LoadResult struct {
	Config   Config
	Warnings []string
}

func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			BarWidth:   50,
			SampleSize: 50,
			Fill:       "█",
			Color:      true,
		},
		Analysis: AnalysisConfig{
			StopwordLanguage: "english",
		},
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chatstat", "config.toml")
}

func Load() (*LoadResult, error) {
	return LoadFrom(defaultConfigPath())
}

func LoadFrom(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoadResult{Config: DefaultConfig()}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromString(string(data))
}

// LoadFromString parses configuration from TOML text, merging it over
// the defaults.
func LoadFromString(data string) (*LoadResult, error) {
	result := &LoadResult{Config: DefaultConfig()}
	if data == "" {
		return result, nil
	}

	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	knownTopLevel := map[string]bool{
		"display":  true,
		"analysis": true,
	}
	for key := range raw {
		if !knownTopLevel[key] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key))
		}
	}

	var tf tomlFile
	if _, err := toml.Decode(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	mergeFromRaw(&result.Config, &tf, raw)

	if err := validate(&result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

type tomlFile struct {
	Display  *DisplayConfig  `toml:"display"`
	Analysis *AnalysisConfig `toml:"analysis"`
}

// mergeFromRaw applies only the keys actually present in the file, so
// a partial config keeps the defaults for everything it omits.
func mergeFromRaw(cfg *Config, tf *tomlFile, raw map[string]any) {
	if tf.Display != nil {
		if section, ok := rawSection(raw, "display"); ok {
			if _, exists := section["bar_width"]; exists {
				cfg.Display.BarWidth = tf.Display.BarWidth
			}
			if _, exists := section["sample_size"]; exists {
				cfg.Display.SampleSize = tf.Display.SampleSize
			}
			if _, exists := section["fill"]; exists {
				cfg.Display.Fill = tf.Display.Fill
			}
			if _, exists := section["color"]; exists {
				cfg.Display.Color = tf.Display.Color
			}
		}
	}
	if tf.Analysis != nil {
		if section, ok := rawSection(raw, "analysis"); ok {
			if _, exists := section["stopword_language"]; exists {
				cfg.Analysis.StopwordLanguage = tf.Analysis.StopwordLanguage
			}
			if _, exists := section["modes"]; exists {
				cfg.Analysis.Modes = tf.Analysis.Modes
			}
		}
	}
}

func rawSection(raw map[string]any, key string) (map[string]any, bool) {
	v, ok := raw[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.Display.BarWidth < 1 {
		errs = append(errs, fmt.Sprintf("bar_width must be positive, got %d", cfg.Display.BarWidth))
	}
	if cfg.Display.SampleSize < 1 {
		errs = append(errs, fmt.Sprintf("sample_size must be positive, got %d", cfg.Display.SampleSize))
	}
	if cfg.Display.Fill == "" {
		errs = append(errs, "fill must not be empty")
	}
	if cfg.Analysis.StopwordLanguage == "" {
		errs = append(errs, "stopword_language must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation error: %s", strings.Join(errs, "; "))
	}
	return nil
}
