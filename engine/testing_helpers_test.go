package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/perfect-pitch/core"
	"github.com/rs/zerolog"
)

// recordingBoard is an in-memory BoardRenderer that keeps every write
type recordingBoard struct {
	rows, cols int
	text       [][]string
	feedback   [][]Feedback
	bounces    [][]bool
	rebuilds   int
	ignored    int
}

func (b *recordingBoard) Rebuild(rows, cols int) {
	b.rows, b.cols = rows, cols
	b.text = make([][]string, rows)
	b.feedback = make([][]Feedback, rows)
	b.bounces = make([][]bool, rows)
	for r := 0; r < rows; r++ {
		b.text[r] = make([]string, cols)
		b.feedback[r] = make([]Feedback, cols)
		b.bounces[r] = make([]bool, cols)
	}
	b.rebuilds++
}

func (b *recordingBoard) inBounds(row, col int) bool {
	ok := row >= 0 && row < b.rows && col >= 0 && col < b.cols
	if !ok {
		b.ignored++
	}
	return ok
}

func (b *recordingBoard) SetCellText(row, col int, text string) {
	if b.inBounds(row, col) {
		b.text[row][col] = text
	}
}

func (b *recordingBoard) SetCellFeedback(row, col int, fb Feedback) {
	if b.inBounds(row, col) && b.feedback[row][col] == FeedbackUnmarked {
		b.feedback[row][col] = fb
	}
}

func (b *recordingBoard) Bounce(row, col int) {
	if b.inBounds(row, col) {
		b.bounces[row][col] = true
	}
}

// rowFeedback returns the marks of one row
func (b *recordingBoard) rowFeedback(row int) []Feedback {
	out := make([]Feedback, b.cols)
	copy(out, b.feedback[row])
	return out
}

// recordingTones collects played frequencies with their start time
type recordingTones struct {
	clock Clock
	freqs []float64
	times []time.Time
}

func (r *recordingTones) PlayTone(freq float64) {
	r.freqs = append(r.freqs, freq)
	r.times = append(r.times, r.clock.Now())
}

type countingCelebrator struct{ count, clears int }

func (c *countingCelebrator) Celebrate() { c.count++ }
func (c *countingCelebrator) Clear()     { c.clears++ }

type recordingListener struct{ summaries []RoundSummary }

func (l *recordingListener) RoundEnded(summary RoundSummary) {
	l.summaries = append(l.summaries, summary)
}

// testRig bundles a session with its fakes
type testRig struct {
	session    *Session
	board      *recordingBoard
	tones      *recordingTones
	clock      *MockTimeProvider
	celebrator *countingCelebrator
	listener   *recordingListener
}

func newTestRig(t *testing.T, cfg RoundConfig) *testRig {
	t.Helper()

	clock := NewMockTimeProvider(time.Unix(1700000000, 0))
	rig := &testRig{
		board:      &recordingBoard{},
		tones:      &recordingTones{clock: clock},
		clock:      clock,
		celebrator: &countingCelebrator{},
		listener:   &recordingListener{},
	}

	s, err := NewSession(cfg, SessionDeps{
		Board:      rig.board,
		Tones:      rig.tones,
		Clock:      clock,
		Rand:       rand.New(rand.NewSource(1)),
		Celebrator: rig.celebrator,
		Logger:     zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.AddListener(rig.listener)
	rig.session = s
	return rig
}

// withTarget replaces the random target of the current round
func (r *testRig) withTarget(target core.Sequence) *testRig {
	r.session.store.Reset(target)
	return r
}

// enter adds every note of seq
func (r *testRig) enter(seq core.Sequence) {
	for _, n := range seq {
		r.session.AddNote(n)
	}
}

// advance moves the clock and flushes due tasks
func (r *testRig) advance(d time.Duration) {
	r.clock.Advance(d)
	r.session.Update()
}

// settle lets every pending task of a guess run
func (r *testRig) settle() {
	r.advance(10 * time.Second)
}

// guess enters, submits and fully reveals seq
func (r *testRig) guess(seq core.Sequence) {
	r.enter(seq)
	r.session.SubmitGuess()
	r.settle()
}

func seq(s string) core.Sequence {
	out := make(core.Sequence, 0, len(s))
	for _, ch := range s {
		n, ok := core.ParseNote(ch)
		if !ok {
			panic("bad note " + string(ch))
		}
		out = append(out, n)
	}
	return out
}
