// Package assets builds the sprite bundle the game runs on: three bird
// animation frames, the pipe segment, the scrolling base tile and the
// background. Sprites are drawn procedurally at the classic source
// dimensions and passed through a 2x scaler, so the on-screen sizes match
// the original artwork. The bundle is constructed once at startup and
// handed by reference to whoever needs images or silhouettes; there is no
// package-level mutable state.
package assets

import (
	"image"

	"github.com/aliserajalam/flappy-bird/internal/mask"
)

// BirdFrameCount is the number of wing-flap animation frames.
const BirdFrameCount = 3

// Source dimensions before 2x scaling.
const (
	birdSrcW = 34
	birdSrcH = 24

	pipeSrcW = 52
	pipeSrcH = 320

	baseSrcW = 336
	baseSrcH = 112

	backgroundSrcW = 288
	backgroundSrcH = 512
)

// Sprite pairs a drawable image with its collision silhouette.
type Sprite struct {
	Image *image.RGBA
	Mask  *mask.Mask
}

// W returns the sprite width in pixels.
func (s Sprite) W() int { return s.Image.Bounds().Dx() }

// H returns the sprite height in pixels.
func (s Sprite) H() int { return s.Image.Bounds().Dy() }

// Bundle holds every sprite the game draws, loaded once at startup.
type Bundle struct {
	// BirdFrames are ordered wings-down, wings-level, wings-up.
	BirdFrames [BirdFrameCount]Sprite

	// PipeTop hangs from the top of the screen (flipped vertically),
	// PipeBottom rises from below the gap.
	PipeTop    Sprite
	PipeBottom Sprite

	Base       Sprite
	Background Sprite
}

// Load draws all sprites and derives their masks. The equivalent of the
// original's load-and-scale2x startup pass.
func Load() *Bundle {
	b := &Bundle{}
	for i := 0; i < BirdFrameCount; i++ {
		b.BirdFrames[i] = newSprite(Scale2x(drawBirdFrame(i)))
	}
	pipe := Scale2x(drawPipe())
	b.PipeBottom = newSprite(pipe)
	b.PipeTop = newSprite(FlipV(pipe))
	b.Base = newSprite(Scale2x(drawBase()))
	b.Background = newSprite(Scale2x(drawBackground()))
	return b
}

func newSprite(img *image.RGBA) Sprite {
	return Sprite{Image: img, Mask: mask.FromImage(img)}
}
