package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/perfect-pitch/audio"
	"github.com/lixenwraith/perfect-pitch/constants"
	"github.com/lixenwraith/perfect-pitch/engine"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "PERFECT_PITCH_"

var ErrInvalidEnv = errors.New("invalid environment value")

// Config is the process-wide startup configuration.
// Precedence, lowest first: defaults, .env file, environment, command line flags.
type Config struct {
	Notes     int
	Attempts  int
	Volume    float64
	Mute      bool
	Seed      int64 // 0 seeds from the clock
	ExportDir string
	LogLevel  string
	Debug     bool
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Notes:    constants.DefaultSequenceLength,
		Attempts: constants.DefaultMaxAttempts,
		Volume:   constants.DefaultMasterVolume,
		LogLevel: "info",
	}
}

// Load reads an optional .env file and layers the environment over defaults
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv layers PERFECT_PITCH_* values from lookup over defaults
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Defaults()
	var errs []error

	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	fail := func(name, v string, err error) {
		errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidEnv, EnvPrefix, name, v, err))
	}

	if v, ok := get("NOTES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail("NOTES", v, err)
		}
		c.Notes = n
	}
	if v, ok := get("ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail("ATTEMPTS", v, err)
		}
		c.Attempts = n
	}
	if v, ok := get("VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fail("VOLUME", v, err)
		}
		c.Volume = f
	}
	if v, ok := get("MUTE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fail("MUTE", v, err)
		}
		c.Mute = b
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			fail("SEED", v, err)
		}
		c.Seed = n
	}
	if v, ok := get("EXPORT_DIR"); ok {
		c.ExportDir = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}

	return c, errors.Join(errs...)
}

// BindFlags registers command line flags defaulting to the current values
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Notes, "notes", "n", c.Notes, "notes per sequence (5 or 8)")
	fs.IntVarP(&c.Attempts, "attempts", "a", c.Attempts, "attempts per round")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "master volume 0.0-1.0")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable audio")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for clock")
	fs.StringVar(&c.ExportDir, "export-dir", c.ExportDir, "write each finished round as a MIDI file here")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "trace, debug, info, warn or error")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to logs/perfect-pitch.log")
}

// Round returns the board shape of the first round
func (c Config) Round() engine.RoundConfig {
	return engine.RoundConfig{SequenceLength: c.Notes, MaxAttempts: c.Attempts}
}

// Presets returns the selectable modes with the configured attempt count
func (c Config) Presets() []engine.RoundConfig {
	presets := engine.DefaultPresets()
	for i := range presets {
		presets[i].MaxAttempts = c.Attempts
	}
	return presets
}

// Audio returns the tone player configuration
func (c Config) Audio() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = !c.Mute
	a.MasterVolume = c.Volume
	return a
}

// Level parses LogLevel
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

// Validate reports every invalid field
func (c Config) Validate() error {
	var errs []error
	if err := c.Round().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Audio().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}
