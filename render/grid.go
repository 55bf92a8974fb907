package render

import (
	"time"

	"github.com/lixenwraith/perfect-pitch/engine"
)

// Cell is one board position as the player sees it
type Cell struct {
	Text      string
	Feedback  engine.Feedback
	BouncedAt time.Time // zero when the cell never bounced
}

// Grid is the in-memory board the terminal renderer draws from.
// It implements engine.BoardRenderer; writes outside the grid are dropped.
type Grid struct {
	clock engine.Clock
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an empty grid, bounce timestamps come from clock
func NewGrid(clock engine.Clock) *Grid {
	return &Grid{clock: clock}
}

// Rebuild discards every cell and allocates rows x cols empty ones
func (g *Grid) Rebuild(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g.rows, g.cols = rows, cols
	g.cells = make([]Cell, rows*cols)
}

func (g *Grid) index(row, col int) (int, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, false
	}
	return row*g.cols + col, true
}

// SetCellText replaces the displayed symbol
func (g *Grid) SetCellText(row, col int, text string) {
	if i, ok := g.index(row, col); ok {
		g.cells[i].Text = text
	}
}

// SetCellFeedback marks a cell once, later marks are ignored
func (g *Grid) SetCellFeedback(row, col int, fb engine.Feedback) {
	i, ok := g.index(row, col)
	if !ok || g.cells[i].Feedback != engine.FeedbackUnmarked {
		return
	}
	g.cells[i].Feedback = fb
}

// Bounce stamps the cell so the renderer animates it
func (g *Grid) Bounce(row, col int) {
	if i, ok := g.index(row, col); ok {
		g.cells[i].BouncedAt = g.clock.Now()
	}
}

// Rows returns the number of attempt rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of sequence positions
func (g *Grid) Cols() int { return g.cols }

// Cell returns a copy of the cell at row, col
func (g *Grid) Cell(row, col int) (Cell, bool) {
	i, ok := g.index(row, col)
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// Bouncing reports whether the cell is inside its bounce window at now
func (c Cell) Bouncing(now time.Time, window time.Duration) bool {
	if c.BouncedAt.IsZero() {
		return false
	}
	age := now.Sub(c.BouncedAt)
	return age >= 0 && age < window
}
