package config

import (
	"errors"
	"testing"

	"github.com/lixenwraith/perfect-pitch/audio"
	"github.com/lixenwraith/perfect-pitch/engine"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultsAreValid(t *testing.T) {
	c := Defaults()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if c.Round() != engine.DefaultRoundConfig() {
		t.Errorf("Expected default round config, got %v", c.Round())
	}
	if !c.Audio().Enabled {
		t.Error("Expected audio enabled by default")
	}
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{
		"PERFECT_PITCH_NOTES":      "8",
		"PERFECT_PITCH_ATTEMPTS":   " 7 ",
		"PERFECT_PITCH_VOLUME":     "0.5",
		"PERFECT_PITCH_MUTE":       "true",
		"PERFECT_PITCH_SEED":       "42",
		"PERFECT_PITCH_EXPORT_DIR": "/tmp/rounds",
		"PERFECT_PITCH_LOG_LEVEL":  "DEBUG",
		"NOTES":                    "5",
	}))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if c.Notes != 8 || c.Attempts != 7 {
		t.Errorf("Expected 8 notes / 7 attempts, got %d / %d", c.Notes, c.Attempts)
	}
	if c.Volume != 0.5 || !c.Mute || c.Seed != 42 {
		t.Errorf("Unexpected audio/seed values: %+v", c)
	}
	if c.ExportDir != "/tmp/rounds" {
		t.Errorf("Expected export dir, got %q", c.ExportDir)
	}
	if lvl, err := c.Level(); err != nil || lvl != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v (%v)", lvl, err)
	}
	if c.Audio().Enabled {
		t.Error("Expected mute to disable audio")
	}
}

func TestFromEnvBadValues(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{
		"PERFECT_PITCH_NOTES": "five",
		"PERFECT_PITCH_MUTE":  "maybe",
	}))
	if !errors.Is(err, ErrInvalidEnv) {
		t.Fatalf("Expected ErrInvalidEnv, got %v", err)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{
		"PERFECT_PITCH_NOTES":  "8",
		"PERFECT_PITCH_VOLUME": "0.3",
	}))
	if err != nil {
		t.Fatal(err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse([]string{"--notes", "5", "--mute"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if c.Notes != 5 {
		t.Errorf("Expected flag to win, got %d notes", c.Notes)
	}
	if c.Volume != 0.3 {
		t.Errorf("Expected env value kept when flag unset, got %v", c.Volume)
	}
	if !c.Mute {
		t.Error("Expected --mute to apply")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"bad length", func(c *Config) { c.Notes = 6 }, engine.ErrInvalidSequenceLength},
		{"zero attempts", func(c *Config) { c.Attempts = 0 }, engine.ErrInvalidMaxAttempts},
		{"loud", func(c *Config) { c.Volume = 1.5 }, audio.ErrInvalidVolume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	c := Defaults()
	c.LogLevel = "loud"
	if err := c.Validate(); err == nil {
		t.Error("Expected unknown log level to fail")
	}
}

func TestPresetsUseConfiguredAttempts(t *testing.T) {
	c := Defaults()
	c.Attempts = 9
	presets := c.Presets()
	if len(presets) != 2 {
		t.Fatalf("Expected 2 presets, got %d", len(presets))
	}
	for _, p := range presets {
		if p.MaxAttempts != 9 {
			t.Errorf("Expected 9 attempts, got %d", p.MaxAttempts)
		}
	}
	if presets[0].SequenceLength != 5 || presets[1].SequenceLength != 8 {
		t.Errorf("Unexpected preset lengths: %v", presets)
	}
}
