package engine

import "github.com/lixenwraith/perfect-pitch/core"

// SequenceStore holds the secret target and the in-progress guess
type SequenceStore struct {
	target   core.Sequence
	guess    core.Sequence
	capacity int
}

// NewSequenceStore creates an empty store
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{}
}

// Reset installs a new target and empties the guess, capacity follows the target length
func (s *SequenceStore) Reset(target core.Sequence) {
	s.target = target.Clone()
	s.capacity = len(target)
	s.guess = make(core.Sequence, 0, s.capacity)
}

// Target returns a copy of the secret sequence
func (s *SequenceStore) Target() core.Sequence {
	return s.target.Clone()
}

// TargetAt returns the target note at position i
func (s *SequenceStore) TargetAt(i int) (core.Note, bool) {
	if i < 0 || i >= len(s.target) {
		return 0, false
	}
	return s.target[i], true
}

// Guess returns a copy of the guess buffer
func (s *SequenceStore) Guess() core.Sequence {
	return s.guess.Clone()
}

// GuessLen returns the number of buffered notes
func (s *SequenceStore) GuessLen() int {
	return len(s.guess)
}

// Full reports whether the guess has reached target length
func (s *SequenceStore) Full() bool {
	return len(s.guess) == s.capacity
}

// Append adds a note unless the guess is full
func (s *SequenceStore) Append(n core.Note) bool {
	if len(s.guess) >= s.capacity {
		return false
	}
	s.guess = append(s.guess, n)
	return true
}

// RemoveLast drops the most recent note, false when empty
func (s *SequenceStore) RemoveLast() bool {
	if len(s.guess) == 0 {
		return false
	}
	s.guess = s.guess[:len(s.guess)-1]
	return true
}

// ClearGuess empties the guess buffer
func (s *SequenceStore) ClearGuess() {
	s.guess = s.guess[:0]
}
