package render

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/perfect-pitch/constants"
	"github.com/lixenwraith/perfect-pitch/core"
	"github.com/lixenwraith/perfect-pitch/engine"
)

// Frame is the per-frame snapshot of session state the renderer reads
type Frame struct {
	State           engine.GameState
	Guess           core.Sequence
	CanSubmit       bool
	Elapsed         time.Duration
	Announcement    engine.Announcement
	HasAnnouncement bool
}

// FrameFromSession captures the session for one frame
func FrameFromSession(s *engine.Session) Frame {
	a, ok := s.Announcement()
	return Frame{
		State:           s.State(),
		Guess:           s.Guess(),
		CanSubmit:       s.CanSubmit(),
		Elapsed:         s.Elapsed(),
		Announcement:    a,
		HasAnnouncement: ok,
	}
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen   tcell.Screen
	grid     *Grid
	confetti *Confetti
	clock    engine.Clock
	presets  []engine.RoundConfig
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, grid *Grid, confetti *Confetti, clock engine.Clock, presets []engine.RoundConfig) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		grid:     grid,
		confetti: confetti,
		clock:    clock,
		presets:  presets,
	}
}

// BoardOrigin returns the top-left screen position of cell (0, 0)
func (r *TerminalRenderer) BoardOrigin(screenWidth int) (int, int) {
	cols := r.grid.Cols()
	boardWidth := cols*constants.CellWidth + (cols-1)*constants.CellGap
	x := (screenWidth - boardWidth) / 2
	if x < 0 {
		x = 0
	}
	return x, constants.BoardTopMargin
}

// CellPosition returns the screen position of the cell's left bracket
func (r *TerminalRenderer) CellPosition(screenWidth, row, col int) (int, int) {
	x, y := r.BoardOrigin(screenWidth)
	return x + col*(constants.CellWidth+constants.CellGap), y + row*2
}

// requiredHeight is the smallest screen that fits title, board, keypad and status
func (r *TerminalRenderer) requiredHeight() int {
	h := constants.BoardTopMargin + r.grid.Rows()*2 + 4
	if h < constants.MinScreenHeight {
		return constants.MinScreenHeight
	}
	return h
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(base)
	r.screen.Clear()

	width, height := r.screen.Size()
	if width < constants.MinScreenWidth || height < r.requiredHeight() {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", constants.MinScreenWidth, r.requiredHeight())
		drawText(r.screen, (width-utf8.RuneCountInString(msg))/2, height/2, msg, base.Foreground(RgbLossText))
		r.screen.Show()
		return
	}

	r.drawTitle(width, base)
	r.drawModeBar(width, f, base)
	r.drawBoard(width, f, base)
	r.drawKeypad(width, f, base)
	r.drawStatusBar(width, height, f, base)
	r.confetti.Draw(r.screen, base)

	if f.HasAnnouncement {
		r.drawOverlay(width, height, f.Announcement, base)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawTitle(width int, base tcell.Style) {
	title := "♪ PERFECT PITCH ♪"
	drawText(r.screen, (width-utf8.RuneCountInString(title))/2, 0, title, base.Foreground(RgbTitle).Bold(true))
}

// drawModeBar lists the selectable presets, highlighting the active one
func (r *TerminalRenderer) drawModeBar(width int, f Frame, base tcell.Style) {
	labels := make([]string, len(r.presets))
	total := 0
	for i, p := range r.presets {
		labels[i] = fmt.Sprintf(" [%d] %s ", i+1, p)
		total += utf8.RuneCountInString(labels[i]) + 1
	}

	x := (width - total) / 2
	if x < 0 {
		x = 0
	}
	for i, label := range labels {
		bg := RgbModeInactiveBg
		fg := RgbDimText
		if r.presets[i] == f.State.Config {
			bg = RgbModeActiveBg
			fg = RgbStatusText
		}
		x = drawText(r.screen, x, 2, label, base.Background(bg).Foreground(fg)) + 1
	}
}

func (r *TerminalRenderer) drawBoard(width int, f Frame, base tcell.Style) {
	now := r.clock.Now()
	activeRow := -1
	if f.State.Phase == engine.PhaseInProgress && !f.State.Revealing {
		activeRow = f.State.Attempts
	}

	for row := 0; row < r.grid.Rows(); row++ {
		if row == activeRow {
			x, y := r.CellPosition(width, row, 0)
			if x >= 2 {
				r.screen.SetContent(x-2, y, '▶', nil, base.Foreground(RgbCellActive))
			}
		}
		for col := 0; col < r.grid.Cols(); col++ {
			cell, _ := r.grid.Cell(row, col)
			x, y := r.CellPosition(width, row, col)
			r.drawCell(x, y, cell, row == activeRow, now, base)
		}
	}
}

// drawCell paints one "[ X ]" cell; bouncing cells hop one line up for the first half of the bounce
func (r *TerminalRenderer) drawCell(x, y int, cell Cell, active bool, now time.Time, base tcell.Style) {
	bracket := base.Foreground(RgbCellBorder)
	letter := base.Foreground(RgbCellText).Bold(true)

	if active {
		bracket = base.Foreground(RgbCellActive)
	}

	switch cell.Feedback {
	case engine.FeedbackCorrect:
		bg := RgbCorrectBg
		if cell.Bouncing(now, constants.BounceDuration) {
			bg = RgbBounceBg
			if now.Sub(cell.BouncedAt) < constants.BounceDuration/2 {
				y--
			}
		}
		bracket = base.Background(bg).Foreground(RgbStatusText)
		letter = base.Background(bg).Foreground(RgbStatusText).Bold(true)
	case engine.FeedbackIncorrect:
		bracket = base.Background(RgbIncorrectBg).Foreground(RgbDimText)
		letter = base.Background(RgbIncorrectBg).Foreground(RgbCellText)
	}

	ch := ' '
	if cell.Text != "" {
		ch, _ = utf8.DecodeRuneInString(cell.Text)
	}

	r.screen.SetContent(x, y, '[', nil, bracket)
	r.screen.SetContent(x+1, y, ' ', nil, bracket)
	r.screen.SetContent(x+2, y, ch, nil, letter)
	r.screen.SetContent(x+3, y, ' ', nil, bracket)
	r.screen.SetContent(x+4, y, ']', nil, bracket)
}

// drawKeypad shows the note keys and controls under the board
func (r *TerminalRenderer) drawKeypad(width int, f Frame, base tcell.Style) {
	_, boardY := r.BoardOrigin(width)
	y := boardY + r.grid.Rows()*2

	notes := core.AllNotes()
	keysWidth := len(notes)*4 - 1
	x := (width - keysWidth) / 2
	keyStyle := base.Background(RgbModeInactiveBg).Foreground(RgbCellText).Bold(true)
	for _, n := range notes {
		x = drawText(r.screen, x, y, " "+n.String()+" ", keyStyle) + 1
	}

	submitBg := RgbSubmitIdleBg
	submitFg := RgbDimText
	if f.CanSubmit {
		submitBg = RgbSubmitReadyBg
		submitFg = RgbStatusText
	}
	submit := " ⏎ SUBMIT "
	help := "  ⌫ delete  p replay  n new  q quit"
	lineWidth := utf8.RuneCountInString(submit) + utf8.RuneCountInString(help)
	x = (width - lineWidth) / 2
	x = drawText(r.screen, x, y+2, submit, base.Background(submitBg).Foreground(submitFg).Bold(true))
	drawText(r.screen, x, y+2, help, base.Foreground(RgbDimText))
}

// drawStatusBar writes round progress on the last line
func (r *TerminalRenderer) drawStatusBar(width, height int, f Frame, base tcell.Style) {
	y := height - 1
	statusStyle := base.Background(RgbModeInactiveBg).Foreground(RgbText)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, statusStyle)
	}

	cfg := f.State.Config
	var left string
	switch f.State.Phase {
	case engine.PhaseWon:
		left = " Solved! "
	case engine.PhaseLost:
		left = " Out of attempts "
	default:
		left = fmt.Sprintf(" %s attempt of %d ", humanize.Ordinal(f.State.Attempts+1), cfg.MaxAttempts)
	}
	x := drawText(r.screen, 0, y, left, statusStyle.Bold(true))
	drawText(r.screen, x+1, y, fmt.Sprintf("guess %d/%d", len(f.Guess), cfg.SequenceLength), statusStyle)

	elapsed := f.Elapsed.Round(time.Second)
	clock := fmt.Sprintf(" %02d:%02d ", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	drawText(r.screen, width-utf8.RuneCountInString(clock), y, clock, statusStyle)
}

// drawOverlay draws the modal announcement box centered on screen
func (r *TerminalRenderer) drawOverlay(width, height int, a engine.Announcement, base tcell.Style) {
	lines := []string{a.Message}
	if a.Detail != "" {
		lines = append(lines, a.Detail)
	}
	lines = append(lines, "", constants.DismissHint)

	inner := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > inner {
			inner = n
		}
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	if boxW > width {
		boxW = width
	}
	x0 := (width - boxW) / 2
	y0 := (height - boxH) / 2

	box := base.Background(RgbOverlayBg).Foreground(RgbOverlayBorder)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			ch := ' '
			switch {
			case y == y0 && x == x0:
				ch = '┌'
			case y == y0 && x == x0+boxW-1:
				ch = '┐'
			case y == y0+boxH-1 && x == x0:
				ch = '└'
			case y == y0+boxH-1 && x == x0+boxW-1:
				ch = '┘'
			case y == y0 || y == y0+boxH-1:
				ch = '─'
			case x == x0 || x == x0+boxW-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, box)
		}
	}

	msgColor := RgbWinText
	if a.Kind == engine.AnnouncementLoss {
		msgColor = RgbLossText
	}
	for i, l := range lines {
		style := base.Background(RgbOverlayBg).Foreground(RgbText)
		if i == 0 {
			style = style.Foreground(msgColor).Bold(true)
		}
		lx := x0 + (boxW-utf8.RuneCountInString(l))/2
		drawText(r.screen, lx, y0+1+i, l, style)
	}
}

// drawText writes text left to right and returns the column after it
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
