// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/searchbench/internal/benchmark"
	"github.com/jeranaias/searchbench/internal/logging"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// MaxSize bounds a single collection size. Larger collections do not fit
// comfortably in memory alongside their sorted copies.
const MaxSize = 100_000_000

// Output styles.
const (
	StylePlain  = "plain"
	StyleStyled = "styled"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the complete searchbench configuration.
type Config struct {
	// Sizes are the collection sizes measured, ascending.
	Sizes []int `toml:"sizes" json:"sizes"`
	// Seed drives data generation; 0 picks a fresh seed per run.
	Seed uint64 `toml:"seed" json:"seed"`

	Sort   SortConfig   `toml:"sort" json:"sort"`
	Output OutputConfig `toml:"output" json:"output"`
	Log    LogConfig    `toml:"log" json:"log"`
}

// SortConfig controls how the sort prerequisite of binary search is timed.
type SortConfig struct {
	// Shared times the sort once per size and reports it for every
	// binary variant. When false each variant times its own sort.
	Shared bool `toml:"shared" json:"shared"`
}

// OutputConfig controls what is printed and how.
type OutputConfig struct {
	// Style is "plain" (fixed-column pipe tables) or "styled" (boxed).
	Style string `toml:"style" json:"style"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color" json:"color"`
	// Progress prints a line for every step while the run is in flight.
	Progress bool `toml:"progress" json:"progress"`
	// ShowEnvironment prints the host description above the tables.
	ShowEnvironment bool `toml:"show_environment" json:"show_environment"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is a zap level name.
	Level string `toml:"level" json:"level"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sizes: benchmark.DefaultSizes(),
		Seed:  0,
		Sort: SortConfig{
			Shared: true,
		},
		Output: OutputConfig{
			Style:           StylePlain,
			Color:           ColorAuto,
			Progress:        true,
			ShowEnvironment: true,
		},
		Log: LogConfig{
			Level: logging.DefaultLevel,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the searchbench configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".searchbench"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file locations.
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Files ending in .json are decoded as JSON, anything else as
// TOML. Keys missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// finalize applies defaults, normalization and validation.
func (c *Config) finalize() error {
	c.SetDefaults()
	c.Normalize()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// =============================================================================
// DEFAULTS AND NORMALIZATION
// =============================================================================

// SetDefaults fills empty fields with default values.
func (c *Config) SetDefaults() {
	defaults := Default()

	if len(c.Sizes) == 0 {
		c.Sizes = defaults.Sizes
	}
	if c.Output.Style == "" {
		c.Output.Style = defaults.Output.Style
	}
	if c.Output.Color == "" {
		c.Output.Color = defaults.Output.Color
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Normalize sorts sizes ascending, drops duplicates and lower-cases enum
// fields.
func (c *Config) Normalize() {
	c.Sizes = slices.Clone(c.Sizes)
	slices.Sort(c.Sizes)
	c.Sizes = slices.Compact(c.Sizes)

	c.Output.Style = strings.ToLower(strings.TrimSpace(c.Output.Style))
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if len(c.Sizes) == 0 {
		errs = append(errs, ValidationError{
			Field:   "sizes",
			Message: "at least one size is required",
		})
	}
	for _, size := range c.Sizes {
		if size < 1 || size > MaxSize {
			errs = append(errs, ValidationError{
				Field:   "sizes",
				Message: fmt.Sprintf("size %d out of range [1, %d]", size, MaxSize),
			})
		}
	}

	validStyles := map[string]bool{StylePlain: true, StyleStyled: true}
	if !validStyles[c.Output.Style] {
		errs = append(errs, ValidationError{
			Field:   "output.style",
			Message: fmt.Sprintf("invalid style '%s', must be one of: plain, styled", c.Output.Style),
		})
	}

	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	if !validColors[c.Output.Color] {
		errs = append(errs, ValidationError{
			Field:   "output.color",
			Message: fmt.Sprintf("invalid color mode '%s', must be one of: auto, always, never", c.Output.Color),
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: err.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies SEARCHBENCH_* environment variables. Values
// that fail to parse are ignored.
func (c *Config) ApplyEnvOverrides() {
	// SEARCHBENCH_SIZES (comma separated)
	if raw := os.Getenv("SEARCHBENCH_SIZES"); raw != "" {
		if sizes, err := ParseSizes(raw); err == nil {
			c.Sizes = sizes
		}
	}

	// SEARCHBENCH_SEED
	if raw := os.Getenv("SEARCHBENCH_SEED"); raw != "" {
		if seed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			c.Seed = seed
		}
	}

	// SEARCHBENCH_SHARED_SORT
	if raw := os.Getenv("SEARCHBENCH_SHARED_SORT"); raw != "" {
		c.Sort.Shared = raw == "1" || strings.ToLower(raw) == "true"
	}

	// SEARCHBENCH_STYLE
	if style := os.Getenv("SEARCHBENCH_STYLE"); style != "" {
		c.Output.Style = style
	}

	// SEARCHBENCH_LOG_LEVEL
	if level := os.Getenv("SEARCHBENCH_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// ParseSizes parses a comma-separated list of sizes. Underscores are
// accepted as digit separators ("1_000_000").
func ParseSizes(raw string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.ReplaceAll(strings.TrimSpace(field), "_", "")
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", raw)
	}
	return sizes, nil
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// String returns the configuration encoded as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("# failed to encode config: %v\n", err)
	}
	return buf.String()
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Sizes = slices.Clone(c.Sizes)
	return &clone
}
