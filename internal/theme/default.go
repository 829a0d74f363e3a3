package theme

import "time"

type DefaultTheme struct{}

// A downbeat rings an octave above the other beats, the usual metronome
// voicing.
func (t *DefaultTheme) MajorTick() Tick {
	return Tick{Frequency: 1760, Length: 30 * time.Millisecond}
}

func (t *DefaultTheme) MinorTick() Tick {
	return Tick{Frequency: 880, Length: 30 * time.Millisecond}
}
