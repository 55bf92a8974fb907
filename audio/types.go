package audio

import (
	"errors"
)

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio device unavailable")
	ErrInvalidVolume    = errors.New("volume must be within [0, 1]")
)
