package engine

// Feedback is the evaluation mark of one board cell
type Feedback uint8

const (
	FeedbackUnmarked Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "unmarked"
	}
}

// BoardRenderer is the presentation capability the game drives.
// Implementations must ignore coordinates outside the current grid.
type BoardRenderer interface {
	// Rebuild discards the grid and creates rows x cols empty, unmarked cells
	Rebuild(rows, cols int)
	// SetCellText replaces the displayed symbol, empty string clears it
	SetCellText(row, col int, text string)
	// SetCellFeedback marks a cell, only the first mark per cell sticks
	SetCellFeedback(row, col int, fb Feedback)
	// Bounce starts the short highlight animation on a cell
	Bounce(row, col int)
}

// Celebrator plays the win effect
type Celebrator interface {
	Celebrate()
	// Clear stops any running celebration, called when a round starts
	Clear()
}

// TonePlayer starts a tone immediately without blocking
type TonePlayer interface {
	PlayTone(freq float64)
}
