package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/aliserajalam/flappy-bird/internal/game"
	"github.com/aliserajalam/flappy-bird/internal/render"
)

// App adapts the world and renderer to the ebiten game loop. Update runs
// once per tick at the fixed rate; Draw reads whatever state the last
// tick left behind.
type App struct {
	world    *game.World
	renderer *render.Renderer

	jumpKeys []ebiten.Key
	quitKeys []ebiten.Key
}

// Update advances the simulation by one tick.
func (a *App) Update() error {
	for _, k := range a.quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return ebiten.Termination
		}
	}

	jump := false
	for _, k := range a.jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			jump = true
			break
		}
	}

	// Collision and floor contact come back in the report; this build
	// observes them without a game-over response.
	a.world.Step(jump)
	return nil
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.world)
}

// Layout fixes the logical screen size regardless of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.WindowWidth, game.WindowHeight
}
