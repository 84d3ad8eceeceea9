package assets

import "image"

// Scale2x returns src doubled in both dimensions using nearest-neighbor
// sampling, preserving hard pixel edges and the alpha channel so derived
// masks stay exact.
func Scale2x(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*2, b.Dy()*2))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := src.RGBAAt(b.Min.X+x, b.Min.Y+y)
			dst.SetRGBA(x*2, y*2, c)
			dst.SetRGBA(x*2+1, y*2, c)
			dst.SetRGBA(x*2, y*2+1, c)
			dst.SetRGBA(x*2+1, y*2+1, c)
		}
	}
	return dst
}

// FlipV returns src mirrored vertically. Used to derive the top pipe
// segment from the bottom one.
func FlipV(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(x, b.Dy()-1-y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
