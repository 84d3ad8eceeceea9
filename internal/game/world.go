package game

import (
	"math/rand"

	"github.com/aliserajalam/flappy-bird/internal/assets"
)

// Report is what one tick observed. Collision and floor contact are
// detected every tick but deliberately not acted on: the core has no
// game-over transition, and the surrounding harness (or a test) decides
// what, if anything, to do with them.
type Report struct {
	PipeCollision bool
	FloorContact  bool
	Scored        bool
}

// World owns all simulation state: the bird, the active pipe collection,
// the floor and the score. It is single-threaded; Step is the only
// mutator.
type World struct {
	Bird  *Bird
	Pipes []*Pipe
	Base  *Base
	Score int

	bundle *assets.Bundle
	rng    *rand.Rand
}

// NewWorld builds the starting state: bird at its fixed position, one
// pipe at the spawn x, floor at the bottom.
func NewWorld(bundle *assets.Bundle, seed int64) *World {
	w := &World{
		Bird:   NewBird(BirdStartX, BirdStartY, bundle.BirdFrames),
		Base:   NewBase(BaseY, bundle.Base),
		bundle: bundle,
		rng:    rand.New(rand.NewSource(seed)),
	}
	w.Pipes = append(w.Pipes, w.spawnPipe())
	return w
}

func (w *World) spawnPipe() *Pipe {
	return NewPipe(w.rng, PipeSpawnX, w.bundle.PipeTop, w.bundle.PipeBottom)
}

// Step advances the world by one tick. Order: jump input, bird physics
// and animation, per-pipe collision/retire/pass checks and movement,
// scoring and spawning, retirement, floor contact, floor movement.
func (w *World) Step(jump bool) Report {
	var rep Report

	if jump {
		w.Bird.Jump()
	}
	w.Bird.Move()
	w.Bird.AdvanceAnimation()

	addPipe := false
	alive := w.Pipes[:0]
	for _, p := range w.Pipes {
		if p.Collides(w.Bird) {
			rep.PipeCollision = true
		}

		keep := !p.OffScreen()

		if !p.Passed && p.X < w.Bird.X {
			p.Passed = true
			addPipe = true
		}

		p.Move()

		if keep {
			alive = append(alive, p)
		}
	}
	w.Pipes = alive

	if addPipe {
		w.Score++
		rep.Scored = true
		w.Pipes = append(w.Pipes, w.spawnPipe())
	}

	if w.Bird.Y+float64(w.Bird.Height()) >= w.Base.Y {
		rep.FloorContact = true
	}

	w.Base.Move()

	return rep
}
