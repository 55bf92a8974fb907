package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/perfect-pitch/core"
	"github.com/lixenwraith/perfect-pitch/engine"
	"github.com/rs/zerolog"
	"gitlab.com/gomidi/midi/v2/smf"
)

// noteOns reads back every note on key with its absolute tick
func noteOns(t *testing.T, s *smf.SMF) ([]uint8, []int64) {
	t.Helper()
	if len(s.Tracks) != 1 {
		t.Fatalf("Expected 1 track, got %d", len(s.Tracks))
	}

	var keys []uint8
	var ticks []int64
	var abs int64
	for _, ev := range s.Tracks[0] {
		abs += int64(ev.Delta)
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) {
			keys = append(keys, key)
			ticks = append(ticks, abs)
		}
	}
	return keys, ticks
}

func TestBuildSMF(t *testing.T) {
	seq := core.Sequence{core.NoteC, core.NoteE, core.NoteG, core.NoteB}

	s, err := BuildSMF("test", seq)
	if err != nil {
		t.Fatalf("BuildSMF failed: %v", err)
	}

	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || uint16(mt) != TicksPerQuarter {
		t.Errorf("Expected %d ticks per quarter, got %v", TicksPerQuarter, s.TimeFormat)
	}

	keys, ticks := noteOns(t, s)
	want := []uint8{60, 64, 67, 71}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d notes, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Note %d: expected key %d, got %d", i, want[i], keys[i])
		}
		if ticks[i] != int64(i*TicksPerQuarter) {
			t.Errorf("Note %d: expected tick %d, got %d", i, i*TicksPerQuarter, ticks[i])
		}
	}
}

func TestBuildSMFRejectsBadInput(t *testing.T) {
	if _, err := BuildSMF("empty", nil); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("Expected ErrEmptySequence, got %v", err)
	}
	if _, err := BuildSMF("bad", core.Sequence{core.NoteC, core.Note(42)}); !errors.Is(err, ErrInvalidNote) {
		t.Errorf("Expected ErrInvalidNote, got %v", err)
	}
}

func TestExporterWritesRoundFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "midi")
	e := NewExporter(dir, zerolog.Nop())

	summary := engine.RoundSummary{
		RoundID:  uuid.New(),
		Config:   engine.DefaultRoundConfig(),
		Target:   core.Sequence{core.NoteA, core.NoteA, core.NoteD, core.NoteF, core.NoteC},
		Won:      true,
		Guesses:  2,
		Duration: 30 * time.Second,
	}

	e.RoundEnded(summary)
	e.Wait()

	path := e.Path(summary)
	if filepath.Base(path) != summary.RoundID.String()+".mid" {
		t.Errorf("Expected file named after round id, got %s", path)
	}

	s, err := smf.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}
	keys, _ := noteOns(t, s)
	want := []uint8{69, 69, 62, 65, 60}
	for i := range want {
		if i >= len(keys) || keys[i] != want[i] {
			t.Fatalf("Expected keys %v, got %v", want, keys)
		}
	}
}

func TestExporterFailureIsLogged(t *testing.T) {
	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewExporter(blocker, zerolog.Nop())
	summary := engine.RoundSummary{
		RoundID: uuid.New(),
		Config:  engine.DefaultRoundConfig(),
		Target:  core.Sequence{core.NoteC},
	}

	if _, err := e.Export(summary); err == nil {
		t.Error("Expected export into a file path to fail")
	}

	// Logged, not fatal
	e.RoundEnded(summary)
	e.Wait()

	if _, err := os.Stat(e.Path(summary)); err == nil {
		t.Error("Expected no file after a failed export")
	}
}

func TestExporterRunsOffCaller(t *testing.T) {
	e := NewExporter(t.TempDir(), zerolog.Nop())
	target := core.Sequence{core.NoteG, core.NoteE, core.NoteC}
	summary := engine.RoundSummary{
		RoundID: uuid.New(),
		Config:  engine.DefaultRoundConfig(),
		Target:  target,
	}

	e.RoundEnded(summary)
	// Caller reuses its slice while the write is in flight
	target[0] = core.NoteB
	e.Wait()

	s, err := smf.ReadFile(e.Path(summary))
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}
	keys, _ := noteOns(t, s)
	if len(keys) != 3 || keys[0] != core.NoteG.MIDIKey() {
		t.Errorf("Expected export of the sequence as it was at round end, got %v", keys)
	}
}
