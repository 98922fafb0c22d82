// Package config loads and saves the nido TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/marciooo/nido/internal/costs"
)

// Config holds all nido configuration.
type Config struct {
	General     GeneralConfig     `toml:"general"`
	Ages        AgesConfig        `toml:"ages"`
	Multipliers MultipliersConfig `toml:"multipliers"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Tuition     TuitionOverrides  `toml:"tuition"`
}

// GeneralConfig holds the default estimate inputs.
type GeneralConfig struct {
	Region   string `toml:"region"`
	CareType string `toml:"care_type"`
	Bracket  string `toml:"bracket"`
}

// AgesConfig holds the supported age range and interval defaults, in months.
type AgesConfig struct {
	MinMonth     int `toml:"min_month"`
	MaxMonth     int `toml:"max_month"`
	Step         int `toml:"step"`
	DefaultStart int `toml:"default_start"`
	DefaultEnd   int `toml:"default_end"`
}

// MultipliersConfig holds the cost-expectation bracket factors.
type MultipliersConfig struct {
	Low     float64 `toml:"low"`
	Average float64 `toml:"average"`
	High    float64 `toml:"high"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// TuitionOverrides allows user-defined annual costs for specific regions,
// replacing the reference table entry for both care types.
type TuitionOverrides struct {
	Overrides map[string]BandOverride `toml:"overrides,omitempty"`
}

// BandOverride holds per-band annual cost overrides for one region.
type BandOverride struct {
	Infant    *int64 `toml:"infant,omitempty"`
	Toddler   *int64 `toml:"toddler,omitempty"`
	Preschool *int64 `toml:"preschool,omitempty"`
}

// Bracket display names, in declaration order.
const (
	BracketLow     = "Low"
	BracketAverage = "Average"
	BracketHigh    = "High"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Region:   "National",
			CareType: "center-based",
			Bracket:  BracketAverage,
		},
		Ages: AgesConfig{
			MinMonth:     0,
			MaxMonth:     60,
			Step:         1,
			DefaultStart: 6,
			DefaultEnd:   48,
		},
		Multipliers: MultipliersConfig{
			Low:     0.75,
			Average: 1.0,
			High:    1.35,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nido")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nido")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Span converts the age range into an engine span, validating it.
func (c Config) Span() (costs.Span, error) {
	span := costs.Span{Min: c.Ages.MinMonth, Max: c.Ages.MaxMonth}
	if err := span.Validate(); err != nil {
		return costs.Span{}, err
	}
	return span, nil
}

// MultiplierSet converts the configured bracket factors into an engine
// multiplier set with the given bracket selected.
func (c Config) MultiplierSet(selected string) (costs.MultiplierSet, error) {
	m := costs.MultiplierSet{
		Brackets: []costs.BracketFactor{
			{Name: BracketLow, Factor: c.Multipliers.Low},
			{Name: BracketAverage, Factor: c.Multipliers.Average},
			{Name: BracketHigh, Factor: c.Multipliers.High},
		},
		Selected: selected,
	}
	if err := m.Validate(); err != nil {
		return costs.MultiplierSet{}, err
	}
	return m, nil
}

// DefaultInterval returns the configured default care interval.
func (c Config) DefaultInterval() costs.Interval {
	return costs.Interval{Start: c.Ages.DefaultStart, End: c.Ages.DefaultEnd}
}

// Lookup finds a region's tuition override, matching case-insensitively.
func (o TuitionOverrides) Lookup(region string) (BandOverride, bool) {
	if ov, ok := o.Overrides[region]; ok {
		return ov, true
	}
	want := strings.ToLower(region)
	for name, ov := range o.Overrides {
		if strings.ToLower(name) == want {
			return ov, true
		}
	}
	return BandOverride{}, false
}
