package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/perfect-pitch/constants"
)

// Sentinel errors
var (
	ErrInvalidSequenceLength = errors.New("sequence length must be 5 or 8")
	ErrInvalidMaxAttempts    = errors.New("max attempts must be at least 1")
)

// Phase is the round outcome state, exactly one holds at a time
type Phase uint8

const (
	PhaseInProgress Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "in_progress"
	}
}

// Terminal reports whether the round accepts no further guesses
func (p Phase) Terminal() bool {
	return p != PhaseInProgress
}

// RoundConfig is the player-selected board shape
type RoundConfig struct {
	SequenceLength int
	MaxAttempts    int
}

// DefaultRoundConfig is the 5 notes / 5 attempts mode
func DefaultRoundConfig() RoundConfig {
	return RoundConfig{
		SequenceLength: constants.DefaultSequenceLength,
		MaxAttempts:    constants.DefaultMaxAttempts,
	}
}

// DefaultPresets returns the selectable modes in menu order
func DefaultPresets() []RoundConfig {
	return []RoundConfig{
		{SequenceLength: constants.ShortSequenceLength, MaxAttempts: constants.DefaultMaxAttempts},
		{SequenceLength: constants.LongSequenceLength, MaxAttempts: constants.DefaultMaxAttempts},
	}
}

// Validate checks the config against the accepted board shapes
func (c RoundConfig) Validate() error {
	if c.SequenceLength != constants.ShortSequenceLength && c.SequenceLength != constants.LongSequenceLength {
		return fmt.Errorf("%w: got %d", ErrInvalidSequenceLength, c.SequenceLength)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxAttempts, c.MaxAttempts)
	}
	return nil
}

func (c RoundConfig) String() string {
	return fmt.Sprintf("%d notes / %d attempts", c.SequenceLength, c.MaxAttempts)
}

// GameState is the mutable round bookkeeping, owned by Session
type GameState struct {
	Config   RoundConfig
	Phase    Phase
	Attempts int

	// Generation increments with every round; deferred tasks carry the value
	// they were created under and do nothing once it is stale
	Generation uint64
	RoundID    uuid.UUID

	SubmitEnabled bool
	Revealing     bool // a guess is being revealed, input is locked

	StartedAt time.Time
	EndedAt   time.Time
}

// reset prepares the state for a fresh round under cfg
func (s *GameState) reset(cfg RoundConfig, now time.Time) {
	s.Config = cfg
	s.Phase = PhaseInProgress
	s.Attempts = 0
	s.Generation++
	s.RoundID = uuid.New()
	s.SubmitEnabled = false
	s.Revealing = false
	s.StartedAt = now
	s.EndedAt = time.Time{}
}

// AcceptsInput reports whether guess edits are allowed
func (s *GameState) AcceptsInput() bool {
	return s.Phase == PhaseInProgress && !s.Revealing && s.Attempts < s.Config.MaxAttempts
}

// Elapsed returns round duration, frozen once the round ends
func (s *GameState) Elapsed(now time.Time) time.Duration {
	if !s.EndedAt.IsZero() {
		return s.EndedAt.Sub(s.StartedAt)
	}
	return now.Sub(s.StartedAt)
}
