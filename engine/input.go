package engine

import (
	"time"

	"github.com/lixenwraith/perfect-pitch/constants"
	"github.com/lixenwraith/perfect-pitch/core"
)

// AddNote appends a note to the guess and plays it.
// Ignored when the guess is full, the round is over or a reveal is running.
func (s *Session) AddNote(n core.Note) {
	if !n.Valid() {
		return
	}
	if !s.state.AcceptsInput() || s.store.Full() {
		s.logger.Debug().Str("note", n.String()).Int("guess_len", s.store.GuessLen()).Msg("add note ignored")
		return
	}

	s.tones.PlayTone(n.Frequency())
	s.store.Append(n)
	s.RenderRow(s.state.Attempts)
	s.refreshSubmit()
}

// DeleteNote removes the last note of the guess, no-op when empty
func (s *Session) DeleteNote() {
	if !s.state.AcceptsInput() {
		return
	}
	if !s.store.RemoveLast() {
		return
	}
	s.RenderRow(s.state.Attempts)
	s.refreshSubmit()
}

// RenderRow writes the guess buffer into the given board row.
// Rows outside the board are ignored.
func (s *Session) RenderRow(row int) {
	if row < 0 || row >= s.state.Config.MaxAttempts {
		return
	}
	guess := s.store.Guess()
	for col := 0; col < s.state.Config.SequenceLength; col++ {
		text := ""
		if col < len(guess) {
			text = guess[col].String()
		}
		s.board.SetCellText(row, col, text)
	}
}

// refreshSubmit recomputes whether the guess can be submitted
func (s *Session) refreshSubmit() {
	s.state.SubmitEnabled = s.state.AcceptsInput() && s.store.Full()
}

// PlaySequence plays notes one after another, SequenceNoteSpacing apart.
// Returns immediately; playback stops if a new round starts.
func (s *Session) PlaySequence(notes core.Sequence) {
	for i, freq := range notes.Frequencies() {
		if i == 0 {
			s.tones.PlayTone(freq)
			continue
		}
		s.later(time.Duration(i)*constants.SequenceNoteSpacing, func() {
			s.tones.PlayTone(freq)
		})
	}
}

// ReplayGuess plays back the notes entered so far
func (s *Session) ReplayGuess() {
	s.PlaySequence(s.store.Guess())
}
