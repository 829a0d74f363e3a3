package game

// TimeSignature is the numerator of a musical time signature.
// Only the beat count matters for the grid; the note value does not
// change where lines fall.
type TimeSignature struct {
	BeatsPerBar int // beats per measure, 4 for common time
}

var (
	CommonTime = TimeSignature{BeatsPerBar: 4}
	WaltzTime  = TimeSignature{BeatsPerBar: 3}
)
