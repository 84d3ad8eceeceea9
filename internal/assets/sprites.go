package assets

import (
	"image"
	"image/color"
)

// Palette for the procedurally drawn sprites.
var (
	birdBody   = color.RGBA{0xf8, 0xd0, 0x30, 0xff}
	birdWing   = color.RGBA{0xf0, 0xa8, 0x20, 0xff}
	birdBeak   = color.RGBA{0xf0, 0x60, 0x30, 0xff}
	birdEye    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	birdPupil  = color.RGBA{0x20, 0x20, 0x20, 0xff}
	pipeGreen  = color.RGBA{0x1e, 0xc8, 0x0f, 0xff}
	pipeDark   = color.RGBA{0x12, 0x8a, 0x0a, 0xff}
	pipeLight  = color.RGBA{0x6e, 0xe8, 0x5a, 0xff}
	baseSand   = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	baseTop    = color.RGBA{0x73, 0xbf, 0x2e, 0xff}
	baseShadow = color.RGBA{0xc9, 0xb8, 0x6a, 0xff}
	skyTop     = color.RGBA{0x4d, 0xc1, 0xcb, 0xff}
	skyBottom  = color.RGBA{0xdb, 0xf4, 0xf5, 0xff}
)

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// fillEllipse fills the ellipse centered at (cx, cy) with radii rx, ry.
func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1.0 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// drawBirdFrame draws one 34x24 bird frame. Frames differ only in wing
// position: 0 wings down, 1 wings level, 2 wings up. The elliptical body
// leaves the sprite corners transparent, which is what makes mask-based
// collision stricter than a bounding-box test.
func drawBirdFrame(frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, birdSrcW, birdSrcH))

	fillEllipse(img, 16, 12, 13, 9, birdBody)

	// Wing, anchored mid-body.
	switch frame {
	case 0:
		fillEllipse(img, 11, 16, 6, 3, birdWing)
	case 1:
		fillEllipse(img, 10, 12, 6, 3, birdWing)
	case 2:
		fillEllipse(img, 11, 8, 6, 3, birdWing)
	}

	// Eye and beak on the leading (right) side.
	fillEllipse(img, 23, 8, 3, 3, birdEye)
	fillEllipse(img, 24, 8, 1, 1, birdPupil)
	fillRect(img, 27, 12, 34, 16, birdBeak)

	return img
}

// drawPipe draws the 52x320 bottom pipe segment: rim at the top, shaft
// below. The top segment is this image flipped vertically.
func drawPipe() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pipeSrcW, pipeSrcH))

	// Shaft with shaded edges.
	fillRect(img, 2, 0, pipeSrcW-2, pipeSrcH, pipeGreen)
	fillRect(img, 2, 0, 8, pipeSrcH, pipeLight)
	fillRect(img, pipeSrcW-8, 0, pipeSrcW-2, pipeSrcH, pipeDark)

	// Rim.
	fillRect(img, 0, 0, pipeSrcW, 24, pipeGreen)
	fillRect(img, 0, 0, pipeSrcW, 4, pipeLight)
	fillRect(img, 0, 20, pipeSrcW, 24, pipeDark)
	fillRect(img, 0, 0, 4, 24, pipeLight)
	fillRect(img, pipeSrcW-4, 0, pipeSrcW, 24, pipeDark)

	return img
}

// drawBase draws the 336x112 ground tile: grass lip over sand with
// diagonal hatching.
func drawBase() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, baseSrcW, baseSrcH))

	fillRect(img, 0, 0, baseSrcW, baseSrcH, baseSand)
	fillRect(img, 0, 0, baseSrcW, 16, baseTop)
	fillRect(img, 0, 16, baseSrcW, 20, baseShadow)
	for x := 0; x < baseSrcW; x += 24 {
		for y := 28; y < baseSrcH; y += 24 {
			fillRect(img, x, y, x+12, y+6, baseShadow)
		}
	}

	return img
}

// drawBackground draws the 288x512 sky gradient. Fully opaque; it is
// never collision-tested.
func drawBackground() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, backgroundSrcW, backgroundSrcH))

	for y := 0; y < backgroundSrcH; y++ {
		t := float64(y) / float64(backgroundSrcH-1)
		c := color.RGBA{
			R: lerp(skyTop.R, skyBottom.R, t),
			G: lerp(skyTop.G, skyBottom.G, t),
			B: lerp(skyTop.B, skyBottom.B, t),
			A: 0xff,
		}
		fillRect(img, 0, y, backgroundSrcW, y+1, c)
	}

	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
