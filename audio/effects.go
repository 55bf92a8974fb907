package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator generates a fixed-length triangle wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewOscillator creates a triangle oscillator that ends after duration
func NewOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := 4*math.Abs(o.phase-0.5) - 1

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// toneEnvelope shapes a stream with a linear attack to peak followed by an
// exponential decay that lands on floor at the end of the tone
type toneEnvelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	totalSamples  int
	peak          float64
	floor         float64
}

// NewToneEnvelope wraps s with the attack/decay contour, total is the full tone length
func NewToneEnvelope(s beep.Streamer, total, attack time.Duration, peak, floor float64, rate beep.SampleRate) beep.Streamer {
	return &toneEnvelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		totalSamples:  rate.N(total),
		peak:          peak,
		floor:         floor,
	}
}

func (e *toneEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		gain := e.gainAt(e.position)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok
}

// gainAt returns the envelope level at sample position pos
func (e *toneEnvelope) gainAt(pos int) float64 {
	if pos < e.attackSamples {
		return e.peak * float64(pos) / float64(e.attackSamples)
	}

	decaySamples := e.totalSamples - e.attackSamples
	if decaySamples <= 0 || e.peak <= 0 {
		return e.peak
	}

	// Exponential ramp: peak * (floor/peak)^progress
	progress := float64(pos-e.attackSamples) / float64(decaySamples)
	return e.peak * math.Pow(e.floor/e.peak, progress)
}

func (e *toneEnvelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
