package constants

import "time"

// Audio Device
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, trades latency for underrun safety
	AudioBufferDuration = 50 * time.Millisecond

	// DefaultMasterVolume is applied on top of the tone envelope peak
	DefaultMasterVolume = 1.0
)

// Tone Envelope
const (
	// ToneDuration is the total lifetime of one note tone
	ToneDuration = 600 * time.Millisecond

	// ToneAttack is the linear rise from silence to TonePeakGain
	ToneAttack = 50 * time.Millisecond

	// TonePeakGain is the envelope peak as a fraction of full scale
	TonePeakGain = 0.4

	// ToneFloorGain is the level the exponential decay reaches at ToneDuration
	ToneFloorGain = 0.0001
)
