package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/lixenwraith/perfect-pitch/constants"
	"github.com/lixenwraith/perfect-pitch/core"
	"github.com/rs/zerolog"
)

// AnnouncementKind distinguishes terminal round messages
type AnnouncementKind uint8

const (
	AnnouncementWin AnnouncementKind = iota
	AnnouncementLoss
)

// Announcement is a modal message shown to the player until dismissed
type Announcement struct {
	Kind    AnnouncementKind
	Message string
	Detail  string
}

// RoundSummary describes a finished round
type RoundSummary struct {
	RoundID  uuid.UUID
	Config   RoundConfig
	Target   core.Sequence
	Won      bool
	Guesses  int // evaluated guesses including the winning one
	Duration time.Duration
}

// RoundListener is notified once per finished round
type RoundListener interface {
	RoundEnded(summary RoundSummary)
}

// SessionDeps are the collaborators a Session drives
type SessionDeps struct {
	Board      BoardRenderer
	Tones      TonePlayer
	Clock      Clock
	Rand       *rand.Rand
	Celebrator Celebrator // optional
	Logger     zerolog.Logger
}

// Session owns one game instance: state, sequences, board and deferred tasks.
// All methods must be called from the goroutine that calls Update.
type Session struct {
	state     GameState
	store     *SequenceStore
	scheduler *Scheduler

	board      BoardRenderer
	tones      TonePlayer
	clock      Clock
	rng        *rand.Rand
	celebrator Celebrator
	listeners  []RoundListener

	announcement *Announcement

	baseLogger zerolog.Logger
	logger     zerolog.Logger
}

// NewSession creates a session and starts its first round with cfg
func NewSession(cfg RoundConfig, deps SessionDeps) (*Session, error) {
	if deps.Clock == nil {
		deps.Clock = NewTimeProvider()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		store:      NewSequenceStore(),
		scheduler:  NewScheduler(deps.Clock),
		board:      deps.Board,
		tones:      deps.Tones,
		clock:      deps.Clock,
		rng:        deps.Rand,
		celebrator: deps.Celebrator,
		baseLogger: deps.Logger,
		logger:     deps.Logger,
	}

	if err := s.StartRound(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// AddListener registers a round listener
func (s *Session) AddListener(l RoundListener) {
	s.listeners = append(s.listeners, l)
}

// StartRound abandons the current round and begins a new one under cfg.
// Pending reveal and playback tasks of the abandoned round are dropped.
func (s *Session) StartRound(cfg RoundConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("start round: %w", err)
	}

	abandoned := s.state.Generation > 0 && !s.state.Phase.Terminal()

	s.state.reset(cfg, s.clock.Now())
	dropped := s.scheduler.CancelBefore(s.state.Generation)

	s.store.Reset(core.RandomSequence(s.rng, cfg.SequenceLength))
	s.board.Rebuild(cfg.MaxAttempts, cfg.SequenceLength)
	s.announcement = nil
	if s.celebrator != nil {
		s.celebrator.Clear()
	}

	s.logger = s.baseLogger.With().Str("round", s.state.RoundID.String()).Logger()
	s.logger.Info().
		Int("sequence_length", cfg.SequenceLength).
		Int("max_attempts", cfg.MaxAttempts).
		Uint64("generation", s.state.Generation).
		Bool("abandoned_previous", abandoned).
		Int("dropped_tasks", dropped).
		Msg("round started")
	return nil
}

// Restart begins a new round with the current config
func (s *Session) Restart() {
	// Current config was validated when the round started
	_ = s.StartRound(s.state.Config)
}

// Update runs deferred tasks that have come due, call once per frame
func (s *Session) Update() int {
	return s.scheduler.RunDue()
}

// later queues fn for the current round only
func (s *Session) later(d time.Duration, fn func()) {
	generation := s.state.Generation
	s.scheduler.After(d, generation, func() {
		if generation != s.state.Generation {
			s.logger.Debug().Uint64("task_generation", generation).Msg("stale task ignored")
			return
		}
		fn()
	})
}

// ===== READ ACCESSORS =====

// State returns a copy of the round bookkeeping
func (s *Session) State() GameState {
	return s.state
}

// Config returns the active round config
func (s *Session) Config() RoundConfig {
	return s.state.Config
}

// Guess returns a copy of the in-progress guess
func (s *Session) Guess() core.Sequence {
	return s.store.Guess()
}

// Target returns a copy of the secret sequence
func (s *Session) Target() core.Sequence {
	return s.store.Target()
}

// CanSubmit reports whether SubmitGuess would be accepted
func (s *Session) CanSubmit() bool {
	return s.state.SubmitEnabled
}

// PendingTasks returns the number of queued deferred tasks
func (s *Session) PendingTasks() int {
	return s.scheduler.Pending()
}

// Elapsed returns how long the current round has run
func (s *Session) Elapsed() time.Duration {
	return s.state.Elapsed(s.clock.Now())
}

// Announcement returns the modal message awaiting dismissal
func (s *Session) Announcement() (Announcement, bool) {
	if s.announcement == nil {
		return Announcement{}, false
	}
	return *s.announcement, true
}

// DismissAnnouncement closes the modal message
func (s *Session) DismissAnnouncement() {
	s.announcement = nil
}

// ===== ROUND END =====

// announce raises a modal message
func (s *Session) announce(a Announcement) {
	s.announcement = &a
	s.logger.Info().Str("message", a.Message).Str("detail", a.Detail).Msg("announcement")
}

// endRound freezes timing and notifies listeners
func (s *Session) endRound(won bool, guesses int) {
	s.state.EndedAt = s.clock.Now()

	summary := RoundSummary{
		RoundID:  s.state.RoundID,
		Config:   s.state.Config,
		Target:   s.store.Target(),
		Won:      won,
		Guesses:  guesses,
		Duration: s.state.Elapsed(s.state.EndedAt),
	}

	s.logger.Info().
		Str("phase", s.state.Phase.String()).
		Int("guesses", guesses).
		Dur("duration", summary.Duration).
		Msg("round ended")

	for _, l := range s.listeners {
		l.RoundEnded(summary)
	}
}

// winDetail describes how the round was solved, e.g. "Solved on your 2nd attempt in 12 seconds"
func winDetail(guesses int, d time.Duration) string {
	return fmt.Sprintf("Solved on your %s attempt in %s",
		humanize.Ordinal(guesses), durafmt.Parse(d.Round(time.Second)).LimitFirstN(2).String())
}

// lossMessage reveals the target, hyphen-joined
func lossMessage(target core.Sequence) string {
	return constants.LossAnnouncement + target.String()
}
