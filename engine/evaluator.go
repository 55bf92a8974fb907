package engine

import (
	"time"

	"github.com/lixenwraith/perfect-pitch/constants"
	"github.com/lixenwraith/perfect-pitch/core"
)

// revealTally accumulates per-position results of one submitted guess
type revealTally struct {
	row     int
	correct int
}

// SubmitGuess evaluates the full guess against the target.
// Cells are revealed one by one, RevealStagger apart; the outcome is decided
// when the final position has been marked.
func (s *Session) SubmitGuess() {
	if !s.state.SubmitEnabled || !s.state.AcceptsInput() || !s.store.Full() {
		s.logger.Debug().Int("guess_len", s.store.GuessLen()).Msg("submit ignored")
		return
	}

	snapshot := s.store.Guess()
	s.state.SubmitEnabled = false
	s.state.Revealing = true

	tally := &revealTally{row: s.state.Attempts}
	last := len(snapshot) - 1

	s.logger.Debug().Str("guess", snapshot.String()).Int("attempt", s.state.Attempts).Msg("guess submitted")

	for i, n := range snapshot {
		s.later(time.Duration(i)*constants.RevealStagger, func() {
			s.revealCell(tally, i, n)
			if i == last {
				s.finishGuess(tally, snapshot)
			}
		})
	}
}

// revealCell marks one position of the guess row
func (s *Session) revealCell(tally *revealTally, col int, n core.Note) {
	target, _ := s.store.TargetAt(col)
	if n == target {
		s.board.SetCellFeedback(tally.row, col, FeedbackCorrect)
		s.board.Bounce(tally.row, col)
		tally.correct++
		return
	}
	s.board.SetCellFeedback(tally.row, col, FeedbackIncorrect)
}

// finishGuess applies the win, continue or loss transition
func (s *Session) finishGuess(tally *revealTally, guess core.Sequence) {
	s.state.Revealing = false
	s.logger.Debug().Int("correct", tally.correct).Int("length", len(guess)).Msg("guess revealed")

	if guess.Equal(s.store.Target()) {
		s.state.Phase = PhaseWon
		guesses := s.state.Attempts + 1
		s.endRound(true, guesses)

		if s.celebrator != nil {
			s.celebrator.Celebrate()
		}
		detail := winDetail(guesses, s.state.Elapsed(s.state.EndedAt))
		s.later(constants.WinAnnounceDelay, func() {
			s.announce(Announcement{Kind: AnnouncementWin, Message: constants.WinAnnouncement, Detail: detail})
		})
		s.refreshSubmit()
		return
	}

	s.state.Attempts++
	s.store.ClearGuess()

	if s.state.Attempts == s.state.Config.MaxAttempts {
		s.state.Phase = PhaseLost
		s.endRound(false, s.state.Attempts)
		s.announce(Announcement{Kind: AnnouncementLoss, Message: lossMessage(s.store.Target())})
	}
	s.refreshSubmit()
}
