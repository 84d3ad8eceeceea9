package game

import (
	"math/rand"
	"testing"

	"github.com/aliserajalam/flappy-bird/internal/assets"
)

func newTestPipe(x float64) *Pipe {
	bundle := assets.Load()
	return NewPipe(rand.New(rand.NewSource(1)), x, bundle.PipeTop, bundle.PipeBottom)
}

func TestNewPipeGapRange(t *testing.T) {
	bundle := assets.Load()
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		p := NewPipe(rng, PipeSpawnX, bundle.PipeTop, bundle.PipeBottom)
		if p.GapY < GapMin || p.GapY >= GapMax {
			t.Fatalf("pipe %d: GapY %d outside [%d, %d)", i, p.GapY, GapMin, GapMax)
		}
		if p.Passed {
			t.Fatal("new pipe must not be marked passed")
		}
	}
}

func TestPipeOffsetInvariant(t *testing.T) {
	bundle := assets.Load()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		p := NewPipe(rng, PipeSpawnX, bundle.PipeTop, bundle.PipeBottom)
		// Top offset plus segment height meets the gap, which sits
		// exactly PipeGap above the bottom offset.
		if p.Top+bundle.PipeTop.H() != p.Bottom-PipeGap {
			t.Fatalf("offset invariant broken: top=%d h=%d bottom=%d",
				p.Top, bundle.PipeTop.H(), p.Bottom)
		}
	}
}

func TestPipeKnownGapOffsets(t *testing.T) {
	p := newTestPipe(PipeSpawnX)
	p.setGap(250)
	if p.Bottom != 450 {
		t.Errorf("Bottom = %d, want 450", p.Bottom)
	}
	if want := 250 - p.top.H(); p.Top != want {
		t.Errorf("Top = %d, want %d", p.Top, want)
	}
}

func TestPipeMove(t *testing.T) {
	p := newTestPipe(PipeSpawnX)
	p.Move()
	if p.X != PipeSpawnX-PipeVel {
		t.Errorf("X = %v, want %v", p.X, PipeSpawnX-PipeVel)
	}
}

func TestPipeOffScreen(t *testing.T) {
	p := newTestPipe(0)
	w := float64(p.Width())

	p.X = -w // trailing edge exactly at the boundary
	if p.OffScreen() {
		t.Error("pipe with trailing edge at x=0 is still on screen")
	}
	p.X = -w - 1
	if !p.OffScreen() {
		t.Error("pipe fully past the left boundary should be off screen")
	}
}

func TestPipeCollision(t *testing.T) {
	bird := newTestBird() // at (230, 350)

	// Gap well clear of the bird: it flies through untouched.
	p := newTestPipe(bird.X)
	p.setGap(300) // gap spans y 300..500, bird occupies 350..398
	if p.Collides(bird) {
		t.Error("bird inside the gap must not collide")
	}

	// Top segment reaching into the bird's body.
	p.setGap(390)
	if !p.Collides(bird) {
		t.Error("top segment overlapping the bird's body must collide")
	}

	// Bottom segment reaching the bird: gap ends above the bird's lower
	// half.
	p.setGap(150) // bottom segment starts at 350
	if !p.Collides(bird) {
		t.Error("bottom segment overlapping the bird must collide")
	}

	// Far away horizontally: no collision regardless of gap.
	p.setGap(390)
	p.X = bird.X + 1000
	if p.Collides(bird) {
		t.Error("distant pipe must not collide")
	}
}

func TestPipeCollisionIsMaskExact(t *testing.T) {
	bird := newTestBird()

	// The bird sprite's top rows are fully transparent (the body ellipse
	// starts lower). Position the top segment so the rectangles overlap
	// by only those transparent rows: a bounding-box test would report a
	// hit, the mask test must not.
	p := newTestPipe(bird.X)
	p.setGap(353) // segment bottom edge 3 rows into the bird's rect
	if p.Collides(bird) {
		t.Error("overlap limited to transparent pixels must not collide")
	}
}
