package preview

import "git.lost.host/meutraa/beatgrid/internal/game"

type Previewer interface {
	// Play ticks through the grid in real time, blocking until the last
	// marker or until the listener bails out
	Play(markers []game.Marker) error
}
