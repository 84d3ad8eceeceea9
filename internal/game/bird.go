// Package game holds the simulation: bird, pipes, base and the per-tick
// world step. It depends only on the asset bundle's CPU-side images and
// masks, so everything here runs headless under go test.
package game

import (
	"math"

	"github.com/aliserajalam/flappy-bird/internal/assets"
	"github.com/aliserajalam/flappy-bird/internal/mask"
)

// Bird is the player avatar. Horizontal position is fixed; vertical
// motion follows a closed-form kinematic curve evaluated from the number
// of ticks since the last jump impulse rather than iterative integration,
// which reproduces the characteristic accelerating fall.
type Bird struct {
	X float64
	Y float64

	// Tilt is the sprite rotation in degrees, positive nose-up. It is
	// recomputed every Move from the displacement sign, never set
	// directly.
	Tilt float64

	vel        float64
	tickCount  int
	jumpHeight float64 // y at the moment of the last jump

	frames     [assets.BirdFrameCount]assets.Sprite
	frameIndex int
	frameCount int
}

// NewBird places the bird at (x, y) with the given animation frames.
func NewBird(x, y float64, frames [assets.BirdFrameCount]assets.Sprite) *Bird {
	return &Bird{X: x, Y: y, jumpHeight: y, frames: frames}
}

// Jump applies the upward impulse and re-anchors the kinematic curve at
// the current height.
func (b *Bird) Jump() {
	b.vel = JumpVelocity
	b.tickCount = 0
	b.jumpHeight = b.Y
}

// Move advances the bird by one tick.
func (b *Bird) Move() {
	b.tickCount++

	d := b.vel*float64(b.tickCount) + 1.5*float64(b.tickCount)*float64(b.tickCount)
	if d >= MaxDrop {
		d = MaxDrop
	}
	if d < 0 {
		d -= RiseBias
	}
	b.Y += d

	if d < 0 || b.Y < b.jumpHeight+50 {
		// Rising, or still near the top of the jump arc: snap nose up.
		if b.Tilt < MaxRotation {
			b.Tilt = MaxRotation
		}
	} else if b.Tilt > MinRotation {
		b.Tilt = math.Max(b.Tilt-RotationVel, MinRotation)
	}
}

// Displacement returns the per-tick vertical delta the kinematic model
// produces n ticks after an impulse of velocity vel, including the
// terminal clamp and the upward bias.
func Displacement(vel float64, n int) float64 {
	d := vel*float64(n) + 1.5*float64(n)*float64(n)
	if d >= MaxDrop {
		return MaxDrop
	}
	if d < 0 {
		return d - RiseBias
	}
	return d
}

// AdvanceAnimation steps the wing-flap cycle by one tick. The cycle is
// frames 0,1,2,1 at AnimationTime ticks each; while the bird is in a
// steep dive the wings hold level on the middle frame and the counter is
// parked so the cycle resumes coherently on pull-up.
func (b *Bird) AdvanceAnimation() {
	b.frameCount++

	if b.Tilt <= DiveTilt {
		b.frameIndex = 1
		b.frameCount = AnimationTime * 2
		return
	}

	switch phase := b.frameCount % (AnimationTime * 4); {
	case phase < AnimationTime:
		b.frameIndex = 0
	case phase < AnimationTime*2:
		b.frameIndex = 1
	case phase < AnimationTime*3:
		b.frameIndex = 2
	default:
		b.frameIndex = 1
	}
}

// FrameIndex returns the current animation frame index.
func (b *Bird) FrameIndex() int { return b.frameIndex }

// Frame returns the current animation frame sprite.
func (b *Bird) Frame() assets.Sprite { return b.frames[b.frameIndex] }

// Silhouette returns the collision mask of the current (unrotated)
// animation frame.
func (b *Bird) Silhouette() *mask.Mask { return b.frames[b.frameIndex].Mask }

// Width returns the sprite width of the current frame.
func (b *Bird) Width() int { return b.frames[b.frameIndex].W() }

// Height returns the sprite height of the current frame.
func (b *Bird) Height() int { return b.frames[b.frameIndex].H() }
