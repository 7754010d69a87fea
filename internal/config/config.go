// Package config holds the persistent application configuration,
// stored as JSON under ~/.vanity/.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/abelbrown/vanity/internal/gen"
)

// Named filter patterns offered by the config menu. Pattern is a free-form
// regular expression; these are just the presets.
const (
	PatternAny         = gen.PatternAny
	PatternOnlyDigits  = "^[0-9]+$"
	PatternOnlyLetters = "^[a-z]+$"
)

// Known endpoint path segments on the profile service.
const (
	EndpointID     = "id"
	EndpointGroups = "groups"
)

// Length bounds the menu enforces for range generation. Anything shorter
// than 2 is long gone and anything past 4 is an impractical space to walk.
const (
	MinGenLen = 2
	MaxGenLen = 4
)

// Config is the persistent application configuration
type Config struct {
	// File names, relative to the data directory
	OutputFile string `json:"output_file"`
	InputFile  string `json:"input_file"`

	// Generation settings
	Endpoint string `json:"endpoint"`
	Pattern  string `json:"pattern"`
	MinLen   int    `json:"min_len"`
	MaxLen   int    `json:"max_len"`

	// UI preferences
	MenuHistory    bool `json:"menu_history"`    // keep previous menu output on screen
	EchoCandidates bool `json:"echo_candidates"` // surface each candidate as it is processed

	// Checker tuning
	Checker CheckerConfig `json:"checker"`

	// Dir overrides the data directory. Not persisted; empty means DataDir().
	Dir string `json:"-"`
}

// CheckerConfig holds the verification transport settings
type CheckerConfig struct {
	BaseURL        string  `json:"base_url"`
	Workers        int     `json:"workers"`
	TimeoutSec     int     `json:"timeout_sec"`
	RequestsPerSec float64 `json:"requests_per_sec"` // 0 = unlimited
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutputFile:     "Available.txt",
		InputFile:      "Checkable.txt",
		Endpoint:       EndpointID,
		Pattern:        PatternAny,
		MinLen:         3,
		MaxLen:         3,
		MenuHistory:    false,
		EchoCandidates: true,
		Checker: CheckerConfig{
			BaseURL:        "https://steamcommunity.com",
			Workers:        16,
			TimeoutSec:     30,
			RequestsPerSec: 0,
		},
	}
}

// DataDir returns the application data directory
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vanity")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

func (c *Config) dataDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return DataDir()
}

// OutputPath returns the absolute path of the result file
func (c *Config) OutputPath() string {
	return filepath.Join(c.dataDir(), c.OutputFile)
}

// InputPath returns the absolute path of the candidate list file
func (c *Config) InputPath() string {
	return filepath.Join(c.dataDir(), c.InputFile)
}

// configPath returns the config file location, honoring the Dir override.
func (c *Config) configPath() string {
	return filepath.Join(c.dataDir(), "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// Reload re-reads the config file next to this one, keeping the Dir override.
func (c *Config) Reload() (*Config, error) {
	loaded, err := LoadFrom(c.configPath())
	if err != nil {
		return nil, err
	}
	loaded.Dir = c.Dir
	return loaded, nil
}

// LoadFrom reads config from the given path, or returns defaults if the
// file does not exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	return c.SaveTo(c.configPath())
}

// SaveTo writes the config to the given path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Reset restores every field to its default value
func (c *Config) Reset() {
	*c = *DefaultConfig()
}

// Normalize clamps the length bounds into the supported window and repairs
// anything a hand-edited config file could have broken.
func (c *Config) Normalize() {
	c.MinLen = clamp(c.MinLen, MinGenLen, MaxGenLen)
	c.MaxLen = clamp(c.MaxLen, c.MinLen, MaxGenLen)
	if c.Endpoint == "" {
		c.Endpoint = EndpointID
	}
	if c.Pattern == "" {
		c.Pattern = PatternAny
	}
	if c.Checker.BaseURL == "" {
		c.Checker.BaseURL = DefaultConfig().Checker.BaseURL
	}
	if c.Checker.Workers <= 0 {
		c.Checker.Workers = DefaultConfig().Checker.Workers
	}
	if c.Checker.TimeoutSec <= 0 {
		c.Checker.TimeoutSec = DefaultConfig().Checker.TimeoutSec
	}
	if c.Checker.RequestsPerSec < 0 {
		c.Checker.RequestsPerSec = 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
