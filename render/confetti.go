package render

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/perfect-pitch/constants"
	"github.com/lixenwraith/perfect-pitch/engine"
)

// particle is one falling confetti glyph
type particle struct {
	xFrac   float64 // horizontal position as a fraction of screen width
	glyph   rune
	color   tcell.Color
	spawned time.Time
	delay   time.Duration
	speed   float64 // rows per second
}

// Confetti is the win celebration, implements engine.Celebrator
type Confetti struct {
	clock     engine.Clock
	rng       *rand.Rand
	particles []particle
}

// NewConfetti creates an idle particle system
func NewConfetti(clock engine.Clock, rng *rand.Rand) *Confetti {
	return &Confetti{clock: clock, rng: rng}
}

// Celebrate spawns a burst of particles with staggered starts
func (c *Confetti) Celebrate() {
	now := c.clock.Now()
	for i := 0; i < constants.ConfettiCount; i++ {
		c.particles = append(c.particles, particle{
			xFrac:   c.rng.Float64(),
			glyph:   ConfettiGlyphs[c.rng.Intn(len(ConfettiGlyphs))],
			color:   ConfettiColors[c.rng.Intn(len(ConfettiColors))],
			spawned: now,
			delay:   time.Duration(c.rng.Int63n(int64(constants.ConfettiMaxDelay))),
			speed:   6 + c.rng.Float64()*8,
		})
	}
}

// Active returns the number of live particles
func (c *Confetti) Active() int {
	return len(c.particles)
}

// Clear removes every particle
func (c *Confetti) Clear() {
	c.particles = c.particles[:0]
}

// Draw prunes expired particles and paints the rest over the frame
func (c *Confetti) Draw(screen tcell.Screen, base tcell.Style) {
	now := c.clock.Now()
	width, height := screen.Size()

	live := c.particles[:0]
	for _, p := range c.particles {
		if now.Sub(p.spawned) >= constants.ConfettiDuration {
			continue
		}
		live = append(live, p)

		falling := now.Sub(p.spawned) - p.delay
		if falling < 0 {
			continue
		}
		y := int(falling.Seconds() * p.speed)
		x := int(p.xFrac * float64(width))
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		screen.SetContent(x, y, p.glyph, nil, base.Foreground(p.color))
	}
	c.particles = live
}
