package game

import "github.com/aliserajalam/flappy-bird/internal/assets"

// Base is the scrolling floor: two copies of the same tile slide left at
// BaseVel, and whichever tile fully exits the viewport is repositioned
// flush against the other, so the ground never shows a seam.
type Base struct {
	Y  float64
	X1 float64
	X2 float64

	tile assets.Sprite
}

// NewBase places the floor at height y with the two tiles laid
// end to end.
func NewBase(y float64, tile assets.Sprite) *Base {
	return &Base{Y: y, X1: 0, X2: float64(tile.W()), tile: tile}
}

// Move advances both tiles and wraps the one that has scrolled out.
func (b *Base) Move() {
	b.X1 -= BaseVel
	b.X2 -= BaseVel

	w := float64(b.tile.W())
	if b.X1+w < 0 {
		b.X1 = b.X2 + w
	}
	if b.X2+w < 0 {
		b.X2 = b.X1 + w
	}
}

// Width returns the tile width in pixels.
func (b *Base) Width() int { return b.tile.W() }
