package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/perfect-pitch/core"
	"github.com/lixenwraith/perfect-pitch/engine"
	"github.com/rs/zerolog"
)

// InputHandler processes user input events
type InputHandler struct {
	session *engine.Session
	presets []engine.RoundConfig
	screen  tcell.Screen // synced on resize, may be nil
	logger  zerolog.Logger
}

// NewInputHandler creates a new input handler
func NewInputHandler(session *engine.Session, presets []engine.RoundConfig, screen tcell.Screen, logger zerolog.Logger) *InputHandler {
	return &InputHandler{
		session: session,
		presets: presets,
		screen:  screen,
		logger:  logger,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.screen != nil {
			h.screen.Sync()
		}
		return true
	}
	return true
}

// SelectMode starts a fresh round with preset i (zero based)
func (h *InputHandler) SelectMode(i int) bool {
	if i < 0 || i >= len(h.presets) {
		return false
	}
	if err := h.session.StartRound(h.presets[i]); err != nil {
		h.logger.Warn().Err(err).Int("preset", i).Msg("mode rejected")
		return false
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	// Announcement is modal
	if _, shown := h.session.Announcement(); shown {
		switch {
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyEscape,
			ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			h.session.DismissAnnouncement()
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		h.session.SubmitGuess()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		h.session.DeleteNote()
		return true
	case tcell.KeyRune:
		return h.handleRune(ev.Rune())
	}
	return true
}

// handleRune maps printable keys to game actions
func (h *InputHandler) handleRune(r rune) bool {
	if n, ok := core.ParseNote(r); ok {
		h.session.AddNote(n)
		return true
	}

	switch r {
	case 'q', 'Q':
		return false
	case 'p', 'P':
		h.session.ReplayGuess()
	case 'n', 'N':
		h.session.Restart()
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		h.SelectMode(int(r - '1'))
	default:
		h.logger.Debug().Str("key", string(r)).Msg("unmapped key")
	}
	return true
}
