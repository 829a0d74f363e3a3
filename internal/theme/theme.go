package theme

import "time"

// Tick is the sound of one grid line during preview.
type Tick struct {
	Frequency float64 // Hz
	Length    time.Duration
}

type Theme interface {
	MajorTick() Tick
	MinorTick() Tick
}
