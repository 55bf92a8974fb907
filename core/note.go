package core

import (
	"math/rand"
	"strings"
	"unicode"
)

// Note is one of the seven natural notes of the fourth octave
type Note uint8

const (
	NoteC Note = iota
	NoteD
	NoteE
	NoteF
	NoteG
	NoteA
	NoteB
	NoteCount
)

// noteNames and noteFrequencies are indexed by Note
var (
	noteNames       = [NoteCount]string{"C", "D", "E", "F", "G", "A", "B"}
	noteFrequencies = [NoteCount]float64{261.6, 293.7, 329.6, 349.2, 392.0, 440.0, 493.9}
	noteMIDIKeys    = [NoteCount]uint8{60, 62, 64, 65, 67, 69, 71}
)

// AllNotes returns every note in keyboard order
func AllNotes() []Note {
	notes := make([]Note, NoteCount)
	for i := range notes {
		notes[i] = Note(i)
	}
	return notes
}

// Valid reports whether n belongs to the note set
func (n Note) Valid() bool {
	return n < NoteCount
}

func (n Note) String() string {
	if !n.Valid() {
		return "?"
	}
	return noteNames[n]
}

// Frequency returns the tone frequency in Hz, 0 for invalid notes
func (n Note) Frequency() float64 {
	if !n.Valid() {
		return 0
	}
	return noteFrequencies[n]
}

// MIDIKey returns the MIDI key number (C4 = 60)
func (n Note) MIDIKey() uint8 {
	if !n.Valid() {
		return 0
	}
	return noteMIDIKeys[n]
}

// ParseNote maps a letter to its note, case-insensitive
func ParseNote(r rune) (Note, bool) {
	r = unicode.ToUpper(r)
	for i, name := range noteNames {
		if rune(name[0]) == r {
			return Note(i), true
		}
	}
	return 0, false
}

// Sequence is an ordered run of notes
type Sequence []Note

// RandomSequence draws length notes independently and uniformly, repeats allowed
func RandomSequence(rng *rand.Rand, length int) Sequence {
	if length <= 0 {
		return Sequence{}
	}
	seq := make(Sequence, length)
	for i := range seq {
		seq[i] = Note(rng.Intn(int(NoteCount)))
	}
	return seq
}

// Clone returns an independent copy
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Equal reports position-wise equality
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins note names with hyphens, e.g. "C-D-E"
func (s Sequence) String() string {
	names := make([]string, len(s))
	for i, n := range s {
		names[i] = n.String()
	}
	return strings.Join(names, "-")
}

// Frequencies maps the sequence to tone frequencies
func (s Sequence) Frequencies() []float64 {
	freqs := make([]float64, len(s))
	for i, n := range s {
		freqs[i] = n.Frequency()
	}
	return freqs
}
