package audio

import (
	"fmt"

	"github.com/lixenwraith/perfect-pitch/constants"
)

// Config controls tone playback
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0, scales the envelope peak
	SampleRate   int
}

// DefaultConfig returns audio enabled at full master volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
	}
}

// Validate checks ranges that would otherwise produce silent or clipped output
func (c Config) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: got %.2f", ErrInvalidVolume, c.MasterVolume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	return nil
}
