package cache

import (
	"git.lost.host/meutraa/beatgrid/internal/game"
)

// Cache remembers generated grids so a beatmap reload does not have to walk
// the timeline again.
type Cache interface {
	Init(path string) error
	Deinit()

	// Save the generated grid under its control point key
	Save(key string, markers []game.Marker)

	// Load a previously generated grid
	Load(key string) ([]game.Marker, bool)
}
