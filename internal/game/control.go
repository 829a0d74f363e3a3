package game

// TimingSegment is a tempo change. It governs the timeline from StartTime
// until the next segment's StartTime, or the end of the track.
type TimingSegment struct {
	StartTime  float64       `json:"start"`  // milliseconds
	BeatLength float64       `json:"length"` // milliseconds per beat, > 0
	Signature  TimeSignature `json:"signature"`
}

// BarLength is the span of one full measure in milliseconds.
func (s TimingSegment) BarLength() float64 {
	return s.BeatLength * float64(s.Signature.BeatsPerBar)
}

// SuppressionFlag hides the grid line that would be drawn where it points.
// A flag with OmitFirstBar false cancels an earlier one.
type SuppressionFlag struct {
	Time         float64 `json:"time"` // milliseconds
	OmitFirstBar bool    `json:"omit"`
}
