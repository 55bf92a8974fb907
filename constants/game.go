package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	// Deferred game tasks are flushed once per frame, so this is also the scheduler resolution
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffer between the terminal poller and the main loop
	EventQueueSize = 100
)

// Reveal Timing Constants
const (
	// RevealStagger is the delay between consecutive cell reveals of one guess
	RevealStagger = 150 * time.Millisecond

	// WinAnnounceDelay is the pause between the last reveal of a winning guess and its announcement
	WinAnnounceDelay = 500 * time.Millisecond

	// SequenceNoteSpacing is the gap between note onsets during sequence playback
	SequenceNoteSpacing = 500 * time.Millisecond
)

// Round Defaults
const (
	DefaultSequenceLength = 5
	DefaultMaxAttempts    = 5

	// ShortSequenceLength and LongSequenceLength are the only accepted sequence lengths
	ShortSequenceLength = 5
	LongSequenceLength  = 8
)
