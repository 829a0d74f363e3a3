package timing

import (
	"math"
	"sort"

	"git.lost.host/meutraa/beatgrid/internal/game"
	"github.com/pkg/errors"
)

// DefaultBeatLength is used when a query lands before every timing segment.
// 500ms per beat, 120 BPM.
const DefaultBeatLength = 500.0

// Store holds the two control point streams, sorted by time and read-only
// once built. Lookups are binary searches.
type Store struct {
	segments []game.TimingSegment
	flags    []game.SuppressionFlag
}

// NewStore validates and indexes the control points. Segments with a
// non-positive or non-finite beat length, or fewer than one beat per bar,
// are construction errors; generation never sees them.
func NewStore(segments []game.TimingSegment, flags []game.SuppressionFlag) (*Store, error) {
	for _, seg := range segments {
		if !(seg.BeatLength > 0) || math.IsInf(seg.BeatLength, 1) {
			return nil, errors.Errorf("timing segment at %v: beat length %v is not positive", seg.StartTime, seg.BeatLength)
		}
		if seg.Signature.BeatsPerBar < 1 {
			return nil, errors.Errorf("timing segment at %v: %v beats per bar", seg.StartTime, seg.Signature.BeatsPerBar)
		}
	}

	s := &Store{
		segments: make([]game.TimingSegment, len(segments)),
		flags:    make([]game.SuppressionFlag, len(flags)),
	}
	copy(s.segments, segments)
	copy(s.flags, flags)

	sort.SliceStable(s.segments, func(i, j int) bool {
		return s.segments[i].StartTime < s.segments[j].StartTime
	})
	sort.SliceStable(s.flags, func(i, j int) bool {
		return s.flags[i].Time < s.flags[j].Time
	})

	// Of several control points sharing a timestamp only the last inserted
	// one governs.
	s.segments = dedupeSegments(s.segments)
	s.flags = dedupeFlags(s.flags)

	return s, nil
}

func dedupeSegments(in []game.TimingSegment) []game.TimingSegment {
	out := in[:0]
	for i, seg := range in {
		if i+1 < len(in) && in[i+1].StartTime == seg.StartTime {
			continue
		}
		out = append(out, seg)
	}
	return out
}

func dedupeFlags(in []game.SuppressionFlag) []game.SuppressionFlag {
	out := in[:0]
	for i, fl := range in {
		if i+1 < len(in) && in[i+1].Time == fl.Time {
			continue
		}
		out = append(out, fl)
	}
	return out
}

// Segments returns the ordered timing segments.
func (s *Store) Segments() []game.TimingSegment {
	return s.segments
}

// SegmentAt returns the timing segment governing time t: the one with the
// greatest StartTime <= t, or a synthetic 120 BPM common time segment when
// t precedes all of them.
func (s *Store) SegmentAt(t float64) game.TimingSegment {
	i := sort.Search(len(s.segments), func(i int) bool {
		return s.segments[i].StartTime > t
	})
	if i == 0 {
		return game.TimingSegment{
			StartTime:  0,
			BeatLength: DefaultBeatLength,
			Signature:  game.CommonTime,
		}
	}
	return s.segments[i-1]
}

// SuppressionAt returns the suppression flag active at time t, or ok false
// when no flag precedes t.
func (s *Store) SuppressionAt(t float64) (game.SuppressionFlag, bool) {
	i := sort.Search(len(s.flags), func(i int) bool {
		return s.flags[i].Time > t
	})
	if i == 0 {
		return game.SuppressionFlag{}, false
	}
	return s.flags[i-1], true
}
