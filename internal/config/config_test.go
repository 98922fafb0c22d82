package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/marciooo/nido/internal/costs"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Ages.MinMonth != 0 || cfg.Ages.MaxMonth != 60 {
		t.Errorf("default age range = [%d, %d], want [0, 60]", cfg.Ages.MinMonth, cfg.Ages.MaxMonth)
	}
	if cfg.General.Bracket != BracketAverage {
		t.Errorf("default bracket = %q, want %q", cfg.General.Bracket, BracketAverage)
	}
	if cfg.Multipliers.Average != 1.0 {
		t.Errorf("average multiplier = %g, want 1.0", cfg.Multipliers.Average)
	}

	if _, err := cfg.Span(); err != nil {
		t.Errorf("default span invalid: %v", err)
	}
	if _, err := cfg.MultiplierSet(BracketHigh); err != nil {
		t.Errorf("default multiplier set invalid: %v", err)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Region = "Washington"
	cfg.Multipliers.High = 1.5
	infant := int64(9000)
	cfg.Tuition.Overrides = map[string]BandOverride{
		"Washington": {Infant: &infant},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file not reported as existing")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.Region != "Washington" {
		t.Errorf("region = %q, want Washington", loaded.General.Region)
	}
	if loaded.Multipliers.High != 1.5 {
		t.Errorf("high multiplier = %g, want 1.5", loaded.Multipliers.High)
	}
	ov, ok := loaded.Tuition.Lookup("washington")
	if !ok {
		t.Fatal("override not loaded")
	}
	if ov.Infant == nil || *ov.Infant != 9000 {
		t.Errorf("infant override = %v, want 9000", ov.Infant)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Region != "National" {
		t.Errorf("region = %q, want National", cfg.General.Region)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "nido", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[ages\nmin_month = "), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}

func TestMultiplierSet_RejectsNonPositive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Multipliers.Low = 0

	_, err := cfg.MultiplierSet(BracketAverage)
	if !errors.Is(err, costs.ErrConfig) {
		t.Errorf("zero multiplier error = %v, want ErrConfig", err)
	}
}

func TestSpan_RejectsInverted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ages.MinMonth = 70

	_, err := cfg.Span()
	if !errors.Is(err, costs.ErrConfig) {
		t.Errorf("inverted span error = %v, want ErrConfig", err)
	}
}
