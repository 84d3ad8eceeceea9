// Package mask provides per-pixel opacity bitmaps for exact sprite
// collision testing. A mask records which pixels of a sprite are opaque;
// two sprites collide only when their opaque pixels overlap at the given
// offset, never merely because their bounding boxes do.
package mask

import "image"

// AlphaThreshold is the minimum alpha value for a pixel to count as
// opaque. Matches the classic surface-mask convention of treating
// half-transparent pixels as solid.
const AlphaThreshold = 127

// Mask is a fixed-size opacity bitmap.
type Mask struct {
	w, h int
	bits []bool
}

// New returns an empty (fully transparent) mask of the given size.
func New(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// FromImage builds a mask from the alpha channel of img. Pixels with
// alpha above AlphaThreshold are opaque.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels.
			if a>>8 > AlphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

// Size returns the mask dimensions.
func (m *Mask) Size() (int, int) { return m.w, m.h }

// At reports whether the pixel at (x, y) is opaque. Out-of-bounds
// coordinates are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Set marks the pixel at (x, y) as opaque or transparent.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = opaque
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any opaque pixel of m coincides with an opaque
// pixel of other when other's origin is placed at (dx, dy) relative to
// m's origin.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, other.w+dx)
	y1 := min(m.h, other.h+dy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && other.bits[(y-dy)*other.w+(x-dx)] {
				return true
			}
		}
	}
	return false
}
