package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyByName maps config key names to ebiten keys. Covers the keys anyone
// would plausibly bind for a one-button game.
var keyByName = map[string]ebiten.Key{
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"escape": ebiten.KeyEscape,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"tab":    ebiten.KeyTab,
	"w":      ebiten.KeyW,
	"a":      ebiten.KeyA,
	"s":      ebiten.KeyS,
	"d":      ebiten.KeyD,
	"j":      ebiten.KeyJ,
	"k":      ebiten.KeyK,
	"q":      ebiten.KeyQ,
	"x":      ebiten.KeyX,
	"z":      ebiten.KeyZ,
}

// parseKeys resolves a list of config key names. An empty list is valid
// and yields no bindings.
func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, ok := keyByName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown key name %q", name)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
