package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lixenwraith/perfect-pitch/core"
	"github.com/lixenwraith/perfect-pitch/engine"
	"github.com/rs/zerolog"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// TicksPerQuarter is the file resolution, one sequence element per quarter
	TicksPerQuarter = 480
	// TempoBPM puts quarters 500ms apart, matching in-game playback spacing
	TempoBPM = 120

	midiChannel  = 0
	noteVelocity = 100
	// noteLength leaves a short gap before the next note on
	noteLength = TicksPerQuarter * 7 / 8
)

var (
	ErrEmptySequence = errors.New("nothing to export")
	ErrInvalidNote   = errors.New("invalid note")
)

// BuildSMF converts a sequence into a single track standard MIDI file
func BuildSMF(name string, seq core.Sequence) (*smf.SMF, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(TempoBPM))
	tr.Add(0, smf.MetaMeter(4, 4))

	var rest uint32
	for _, n := range seq {
		if !n.Valid() {
			return nil, fmt.Errorf("note %d: %w", n, ErrInvalidNote)
		}
		tr.Add(rest, midi.NoteOn(midiChannel, n.MIDIKey(), noteVelocity))
		tr.Add(noteLength, midi.NoteOff(midiChannel, n.MIDIKey()))
		rest = TicksPerQuarter - noteLength
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("add track: %w", err)
	}
	return s, nil
}

// Exporter writes every finished round's target to <dir>/<round id>.mid.
// It implements engine.RoundListener; writes run off the game loop and
// failures are logged, never returned to the game.
type Exporter struct {
	dir    string
	logger zerolog.Logger
	wg     sync.WaitGroup
}

// NewExporter creates an exporter rooted at dir
func NewExporter(dir string, logger zerolog.Logger) *Exporter {
	return &Exporter{dir: dir, logger: logger}
}

// Path returns the file a round is written to
func (e *Exporter) Path(summary engine.RoundSummary) string {
	return filepath.Join(e.dir, summary.RoundID.String()+".mid")
}

// Export writes the round's target sequence and returns the file path
func (e *Exporter) Export(summary engine.RoundSummary) (string, error) {
	s, err := BuildSMF(summary.Config.String(), summary.Target)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := e.Path(summary)
	if err := s.WriteFile(path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// RoundEnded exports the finished round in the background
func (e *Exporter) RoundEnded(summary engine.RoundSummary) {
	summary.Target = summary.Target.Clone()
	e.wg.Add(1)
	core.Go(func() {
		defer e.wg.Done()
		path, err := e.Export(summary)
		if err != nil {
			e.logger.Error().Err(err).Str("round", summary.RoundID.String()).Msg("midi export failed")
			return
		}
		e.logger.Info().Str("round", summary.RoundID.String()).Str("path", path).Bool("won", summary.Won).Msg("round exported")
	})
}

// Wait blocks until every started export has finished
func (e *Exporter) Wait() {
	e.wg.Wait()
}
