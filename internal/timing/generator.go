package timing

import (
	"math"

	"git.lost.host/meutraa/beatgrid/internal/game"
)

// GenerateBarLines walks the timeline once and returns every grid line up
// to trackEndTime, in time order. Each timing segment owns the half-open
// window from its start to the next segment's start; one line falls on
// every beat and the first beat of each bar is major.
//
// Lines may never land before their exact beat time. Beat times are
// anchored to the segment start and computed from the beat index, never by
// repeated addition, and the residual rounding error of that computation is
// folded back in so the emitted time only ever rounds upward.
func GenerateBarLines(store *Store, trackEndTime float64) []game.Marker {
	markers := []game.Marker{}

	segments := store.Segments()
	for i, seg := range segments {
		endTime := trackEndTime
		if i+1 < len(segments) {
			endTime = segments[i+1].StartTime
		}
		if !DefinitelyBigger(endTime, seg.StartTime) {
			continue
		}

		// Termination is bounded by the beat count, not by float
		// comparisons alone.
		maxBeats := int((endTime-seg.StartTime)/seg.BeatLength) + 1

		for beat := 0; beat <= maxBeats; beat++ {
			t := beatTime(seg.StartTime, seg.BeatLength, beat)

			// Awkward beat lengths leave times a hair off round values;
			// snap when the difference is within tolerance.
			if rounded := math.Round(t); AlmostEquals(t, rounded) {
				t = rounded
			}

			if !DefinitelyBigger(endTime, t) {
				break
			}
			if t < -TimeEpsilon {
				// Nothing is drawn before the track starts, but the beat
				// index still advances so the major phase holds.
				continue
			}
			if store.suppressedAt(t) {
				continue
			}

			markers = append(markers, game.Marker{
				Time:  t,
				Major: beat%seg.Signature.BeatsPerBar == 0,
			})
		}
	}

	return markers
}

// beatTime is startTime + index*beatLength, biased so the result is never
// below the exact real-valued product. The FMA recovers the rounding error
// of the multiplication and a TwoSum recovers the error of the addition;
// when the combined residual is positive the float result rounded down, so
// it is nudged up one ulp.
func beatTime(startTime, beatLength float64, index int) float64 {
	n := float64(index)
	p := n * beatLength
	productErr := math.FMA(n, beatLength, -p)

	t := startTime + p
	v := t - startTime
	sumErr := (startTime - (t - v)) + (p - v)

	if productErr+sumErr > 0 {
		t = math.Nextafter(t, math.Inf(1))
	}
	return t
}

// suppressedAt reports whether an omit flag coincides with a line at time
// t. Flags only ever hide the line they sit on; the tolerance is the same
// one used for every other time comparison, and the query leans forward by
// it so a flag marginally after the line still counts.
func (s *Store) suppressedAt(t float64) bool {
	fl, ok := s.SuppressionAt(t + TimeEpsilon)
	return ok && fl.OmitFirstBar && AlmostEquals(fl.Time, t)
}
