package constants

import "time"

// Board Layout
const (
	// CellWidth is the on-screen width of one board cell including its brackets
	CellWidth = 5

	// CellGap is the horizontal gap between cells
	CellGap = 1

	// BoardTopMargin is the row where the board starts, below title and mode bar
	BoardTopMargin = 4

	// MinScreenWidth and MinScreenHeight below which a resize hint is drawn instead of the game
	MinScreenWidth  = 50
	MinScreenHeight = 20
)

// Animation Timing
const (
	// BounceDuration is how long a freshly revealed correct cell keeps bouncing
	BounceDuration = 400 * time.Millisecond

	// ConfettiDuration is how long celebratory particles stay on screen
	ConfettiDuration = 5 * time.Second

	// ConfettiCount is the number of particles spawned per celebration
	ConfettiCount = 40

	// ConfettiMaxDelay is the upper bound of a particle's random start delay
	ConfettiMaxDelay = 2 * time.Second
)

// Announcement Text
const (
	WinAnnouncement  = "Perfect Pitch!"
	LossAnnouncement = "Game Over! The sequence was: "
	DismissHint      = "[Enter] continue"
)
