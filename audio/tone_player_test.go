package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

// fakeDevice records device calls without touching real audio hardware
type fakeDevice struct {
	initErr   error
	initCalls int
	played    []beep.Streamer
	locks     int
	closed    bool
}

func (d *fakeDevice) Init(rate beep.SampleRate, bufferSize int) error {
	d.initCalls++
	return d.initErr
}
func (d *fakeDevice) Play(s ...beep.Streamer) { d.played = append(d.played, s...) }
func (d *fakeDevice) Lock()                   { d.locks++ }
func (d *fakeDevice) Unlock()                 {}
func (d *fakeDevice) Close()                  { d.closed = true }

// TestTonePlayerLazyInit verifies the device opens on the first tone only
func TestTonePlayerLazyInit(t *testing.T) {
	dev := &fakeDevice{}
	p := newTonePlayer(DefaultConfig(), dev, zerolog.Nop())

	if dev.initCalls != 0 {
		t.Fatal("Expected no device init before the first tone")
	}
	if p.Available() {
		t.Error("Expected player to be unavailable before the first tone")
	}

	p.PlayTone(261.6)
	p.PlayTone(293.7)
	p.PlayTone(329.6)

	if dev.initCalls != 1 {
		t.Errorf("Expected exactly one device init, got %d", dev.initCalls)
	}
	if len(dev.played) != 1 {
		t.Errorf("Expected the mixer to be handed to the device once, got %d", len(dev.played))
	}
	if p.Played() != 3 {
		t.Errorf("Expected 3 tones played, got %d", p.Played())
	}
	if dev.locks != 3 {
		t.Errorf("Expected mixer updates under device lock, got %d locks", dev.locks)
	}
	if p.mixer.Len() != 3 {
		t.Errorf("Expected 3 active streamers in mixer, got %d", p.mixer.Len())
	}

	p.Close()
	if !dev.closed {
		t.Error("Expected Close to release the device")
	}
	if p.mixer.Len() != 0 {
		t.Errorf("Expected Close to clear the mixer, got %d", p.mixer.Len())
	}
}

// TestTonePlayerInitFailure verifies graceful degradation when no audio device exists
func TestTonePlayerInitFailure(t *testing.T) {
	dev := &fakeDevice{initErr: errors.New("no device")}
	p := newTonePlayer(DefaultConfig(), dev, zerolog.Nop())

	p.PlayTone(440)
	p.PlayTone(440)

	if dev.initCalls != 1 {
		t.Errorf("Expected init to be attempted once, got %d", dev.initCalls)
	}
	if p.Played() != 0 {
		t.Errorf("Expected no tones played, got %d", p.Played())
	}

	p.mu.Lock()
	err := p.ensureDevice()
	p.mu.Unlock()
	if !errors.Is(err, ErrAudioUnavailable) {
		t.Errorf("Expected ErrAudioUnavailable, got %v", err)
	}

	// Close on a never-opened device is a no-op
	p.Close()
	if dev.closed {
		t.Error("Expected Close to skip a device that never opened")
	}
}

// TestTonePlayerDisabled verifies muted config never touches the device
func TestTonePlayerDisabled(t *testing.T) {
	dev := &fakeDevice{}
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := newTonePlayer(cfg, dev, zerolog.Nop())

	p.PlayTone(440)

	if dev.initCalls != 0 {
		t.Errorf("Expected muted player to skip device init, got %d calls", dev.initCalls)
	}
}

// TestTonePlayerIgnoresInvalidFrequency verifies zero frequency produces nothing
func TestTonePlayerIgnoresInvalidFrequency(t *testing.T) {
	dev := &fakeDevice{}
	p := newTonePlayer(DefaultConfig(), dev, zerolog.Nop())

	p.PlayTone(0)
	p.PlayTone(-10)

	if dev.initCalls != 0 || p.Played() != 0 {
		t.Errorf("Expected invalid frequencies to be ignored, init=%d played=%d", dev.initCalls, p.Played())
	}
}

// TestConfigValidate verifies volume and sample rate bounds
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"silent", func(c *Config) { c.MasterVolume = 0 }, false},
		{"negative volume", func(c *Config) { c.MasterVolume = -0.1 }, true},
		{"loud volume", func(c *Config) { c.MasterVolume = 1.5 }, true},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: expected error=%v, got %v", tt.name, tt.wantErr, err)
		}
	}

	cfg := DefaultConfig()
	cfg.MasterVolume = 2
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("Expected ErrInvalidVolume, got %v", err)
	}
}
