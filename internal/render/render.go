// Package render composes each frame from the world state: background,
// pipes, scrolling base, the tilted bird and the score text, back to
// front. It owns the GPU-side copies of the asset bundle and the score
// font; everything it reads from the world is plain state, so the
// simulation stays headless.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/aliserajalam/flappy-bird/internal/assets"
	"github.com/aliserajalam/flappy-bird/internal/game"
)

const scoreFontSize = 40

// Renderer draws world state onto the screen.
type Renderer struct {
	background *ebiten.Image
	base       *ebiten.Image
	pipeTop    *ebiten.Image
	pipeBottom *ebiten.Image
	birdFrames [assets.BirdFrameCount]*ebiten.Image

	face *text.GoTextFaceSource
}

// New uploads the bundle's sprites and parses the score font.
func New(bundle *assets.Bundle) (*Renderer, error) {
	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to load score font: %w", err)
	}

	r := &Renderer{
		background: ebiten.NewImageFromImage(bundle.Background.Image),
		base:       ebiten.NewImageFromImage(bundle.Base.Image),
		pipeTop:    ebiten.NewImageFromImage(bundle.PipeTop.Image),
		pipeBottom: ebiten.NewImageFromImage(bundle.PipeBottom.Image),
		face:       face,
	}
	for i, f := range bundle.BirdFrames {
		r.birdFrames[i] = ebiten.NewImageFromImage(f.Image)
	}
	return r, nil
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image, w *game.World) {
	screen.DrawImage(r.background, &ebiten.DrawImageOptions{})

	for _, p := range w.Pipes {
		r.drawPipe(screen, p)
	}

	r.drawBase(screen, w.Base)
	r.drawBird(screen, w.Bird)
	r.drawScore(screen, w.Score)
}

func (r *Renderer) drawPipe(screen *ebiten.Image, p *game.Pipe) {
	top := &ebiten.DrawImageOptions{}
	top.GeoM.Translate(p.X, float64(p.Top))
	screen.DrawImage(r.pipeTop, top)

	bottom := &ebiten.DrawImageOptions{}
	bottom.GeoM.Translate(p.X, float64(p.Bottom))
	screen.DrawImage(r.pipeBottom, bottom)
}

func (r *Renderer) drawBase(screen *ebiten.Image, b *game.Base) {
	for _, x := range []float64{b.X1, b.X2} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, b.Y)
		screen.DrawImage(r.base, op)
	}
}

func (r *Renderer) drawBird(screen *ebiten.Image, b *game.Bird) {
	frame := r.birdFrames[b.FrameIndex()]
	fw := float64(frame.Bounds().Dx())
	fh := float64(frame.Bounds().Dy())

	// Rotate around the sprite center; positive tilt is nose up, which
	// is counterclockwise in screen coordinates.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-fw/2, -fh/2)
	op.GeoM.Rotate(-b.Tilt * math.Pi / 180)
	op.GeoM.Translate(b.X+fw/2, b.Y+fh/2)
	screen.DrawImage(frame, op)
}

func (r *Renderer) drawScore(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(game.WindowWidth-10, 10)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignEnd
	text.Draw(screen, fmt.Sprintf("Score: %d", score), &text.GoTextFace{
		Source: r.face,
		Size:   scoreFontSize,
	}, op)
}
