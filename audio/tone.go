package audio

import (
	"github.com/gopxl/beep"
	"github.com/lixenwraith/perfect-pitch/constants"
)

// NewTone builds the streamer for one note: triangle wave, 50ms linear attack
// to 0.4 of full scale, exponential decay to near-silence at 600ms, then end
func NewTone(freq float64, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(freq, constants.ToneDuration, rate)
	shaped := NewToneEnvelope(osc, constants.ToneDuration, constants.ToneAttack,
		constants.TonePeakGain, constants.ToneFloorGain, rate)

	if cfg.MasterVolume >= 1 {
		return shaped
	}
	return newVolume(shaped, cfg.MasterVolume)
}
