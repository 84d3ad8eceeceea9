package game

import (
	"math"
	"math/rand"

	"github.com/aliserajalam/flappy-bird/internal/assets"
)

// Pipe is one gap obstacle: a top segment hanging from above and a bottom
// segment rising from below, separated by PipeGap. Both segments share
// the same x and scroll left together.
type Pipe struct {
	X float64

	// GapY is the y of the top of the gap, sampled once at creation.
	GapY int

	// Top and Bottom are the draw origins of the two segments, derived
	// from GapY and never changed afterwards.
	Top    int
	Bottom int

	// Passed is set once the bird's x exceeds the pipe's, and drives
	// scoring and the next spawn.
	Passed bool

	top    assets.Sprite
	bottom assets.Sprite
}

// NewPipe creates a pipe at x with a uniformly sampled gap position.
func NewPipe(rng *rand.Rand, x float64, top, bottom assets.Sprite) *Pipe {
	p := &Pipe{X: x, top: top, bottom: bottom}
	p.setGap(GapMin + rng.Intn(GapMax-GapMin))
	return p
}

// setGap fixes the gap position and derives the segment origins: the top
// segment ends where the gap starts, the bottom segment starts PipeGap
// below it.
func (p *Pipe) setGap(gapY int) {
	p.GapY = gapY
	p.Top = gapY - p.top.H()
	p.Bottom = gapY + PipeGap
}

// Move scrolls the pipe left by one tick.
func (p *Pipe) Move() {
	p.X -= PipeVel
}

// OffScreen reports whether the pipe's trailing edge has left the
// viewport on the left.
func (p *Pipe) OffScreen() bool {
	return p.X+float64(p.top.W()) < 0
}

// Collides tests exact silhouette overlap between the bird and either
// segment. The offsets are the segment origins relative to the bird's
// origin; rectangles overlapping without any shared opaque pixel do not
// collide.
func (p *Pipe) Collides(b *Bird) bool {
	birdMask := b.Silhouette()
	dx := int(p.X) - int(b.X)
	topDy := p.Top - int(math.Round(b.Y))
	bottomDy := p.Bottom - int(math.Round(b.Y))

	return birdMask.Overlap(p.top.Mask, dx, topDy) ||
		birdMask.Overlap(p.bottom.Mask, dx, bottomDy)
}

// Width returns the pipe segment width in pixels.
func (p *Pipe) Width() int { return p.top.W() }
