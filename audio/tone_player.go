package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/perfect-pitch/constants"
	"github.com/rs/zerolog"
)

// device is the output sink, speaker in production and a fake in tests
type device interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerDevice forwards to the process-wide beep speaker
type speakerDevice struct{}

func (speakerDevice) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerDevice) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerDevice) Lock()                   { speaker.Lock() }
func (speakerDevice) Unlock()                 { speaker.Unlock() }
func (speakerDevice) Close()                  { speaker.Close() }

// TonePlayer plays note tones through a shared mixer.
// The device is opened lazily on the first tone.
type TonePlayer struct {
	mu          sync.Mutex
	cfg         Config
	dev         device
	mixer       *beep.Mixer
	initialized bool
	unavailable bool
	played      int
	logger      zerolog.Logger
}

// NewTonePlayer creates a player bound to the system speaker
func NewTonePlayer(cfg Config, logger zerolog.Logger) *TonePlayer {
	return newTonePlayer(cfg, speakerDevice{}, logger)
}

func newTonePlayer(cfg Config, dev device, logger zerolog.Logger) *TonePlayer {
	return &TonePlayer{
		cfg:    cfg,
		dev:    dev,
		mixer:  &beep.Mixer{},
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// ensureDevice opens the device once, caller holds p.mu
func (p *TonePlayer) ensureDevice() error {
	if p.initialized {
		return nil
	}
	if p.unavailable {
		return ErrAudioUnavailable
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := p.dev.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		// Single warning, game continues silent
		p.unavailable = true
		p.logger.Warn().Err(err).Msg("audio init failed, continuing without sound")
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	p.dev.Play(p.mixer)
	p.initialized = true
	p.logger.Debug().Int("sample_rate", p.cfg.SampleRate).Msg("audio device opened")
	return nil
}

// PlayTone schedules a tone of the given frequency to start now
func (p *TonePlayer) PlayTone(freq float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || freq <= 0 {
		return
	}
	if err := p.ensureDevice(); err != nil {
		return
	}

	tone := NewTone(freq, p.cfg)
	p.dev.Lock()
	p.mixer.Add(tone)
	p.dev.Unlock()
	p.played++
}

// Played returns how many tones reached the mixer
func (p *TonePlayer) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Available reports whether the device has been opened successfully
func (p *TonePlayer) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close silences pending tones and releases the device
func (p *TonePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.dev.Lock()
	p.mixer.Clear()
	p.dev.Unlock()

	// Give the speaker one buffer to flush the cleared mixer before closing
	time.Sleep(constants.AudioBufferDuration)
	p.dev.Close()
	p.initialized = false
}
