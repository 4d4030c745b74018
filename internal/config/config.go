// Package config provides the YAML configuration model and its
// load/save behavior, including first-run config creation.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"weekgrid/internal/model"
)

// Config is the top-level application configuration.
type Config struct {
	// Days is the ordered list of distinct day-column labels.
	Days []string `yaml:"days"`

	// StartHour / EndHour bound the rendered grid and the valid event
	// time range. Hours, 0..24, StartHour < EndHour.
	StartHour int `yaml:"start_hour"`
	EndHour   int `yaml:"end_hour"`

	// Palette is the set of colors the add-event form picks from at
	// random. RGB hex strings.
	Palette []string `yaml:"palette"`

	// ToastDurationMs is how long notifications stay visible before
	// auto-dismissing.
	ToastDurationMs int `yaml:"toast_duration_ms"`

	// SchedulePath is the default path used by save and load.
	SchedulePath string `yaml:"schedule_path"`
}

var defaultPalette = []string{
	"#aec6cf", "#ffb347", "#b39eb5", "#77dd77", "#f49ac2", "#fdfd96", "#cfcfc4",
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Days:            []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		StartHour:       5,
		EndHour:         23,
		Palette:         append([]string(nil), defaultPalette...),
		ToastDurationMs: 4000,
		SchedulePath:    "schedule.json",
	}
}

// Normalize fills in missing/zero values and repairs out-of-range ones
// so that partially-filled configs still behave.
func (c *Config) Normalize() {
	if len(c.Days) == 0 {
		c.Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	}
	// Drop duplicate labels, keeping first occurrence.
	seen := make(map[string]bool, len(c.Days))
	days := c.Days[:0]
	for _, d := range c.Days {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	c.Days = days

	if c.StartHour < 0 || c.StartHour > 24 {
		c.StartHour = 5
	}
	if c.EndHour < 0 || c.EndHour > 24 {
		c.EndHour = 23
	}
	if c.StartHour >= c.EndHour {
		c.StartHour = 5
		c.EndHour = 23
	}

	if len(c.Palette) == 0 {
		c.Palette = append([]string(nil), defaultPalette...)
	}
	if c.ToastDurationMs <= 0 {
		c.ToastDurationMs = 4000
	}
	if c.SchedulePath == "" {
		c.SchedulePath = "schedule.json"
	}
}

// Bounds returns the configured hour range as a model.Bounds.
func (c *Config) Bounds() model.Bounds {
	return model.Bounds{StartHour: c.StartHour, EndHour: c.EndHour}
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (0600,
// parent directory created) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically via a temp file + rename, with
// 0600 permissions on the result.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".weekgrid-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
