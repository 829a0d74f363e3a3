package timing

import (
	"testing"

	"git.lost.host/meutraa/beatgrid/internal/game"
)

func TestNewStoreRejectsBadControlPoints(t *testing.T) {
	bad := [][]game.TimingSegment{
		{{StartTime: 0, BeatLength: 0, Signature: game.CommonTime}},
		{{StartTime: 0, BeatLength: -500, Signature: game.CommonTime}},
		{{StartTime: 0, BeatLength: 500, Signature: game.TimeSignature{BeatsPerBar: 0}}},
		{{StartTime: 0, BeatLength: 500, Signature: game.TimeSignature{BeatsPerBar: -4}}},
	}
	for i, segments := range bad {
		if _, err := NewStore(segments, nil); nil == err {
			t.Log("case", i, "expected a construction error")
			t.Fail()
		}
	}
}

func TestSegmentAt(t *testing.T) {
	store, err := NewStore([]game.TimingSegment{
		{StartTime: 1000, BeatLength: 300, Signature: game.WaltzTime},
		{StartTime: 5000, BeatLength: 250, Signature: game.CommonTime},
	}, nil)
	if nil != err {
		t.Fatal(err)
	}

	tests := map[float64]float64{
		-100: DefaultBeatLength, // before all data, synthetic default
		0:    DefaultBeatLength,
		999:  DefaultBeatLength,
		1000: 300,
		4999: 300,
		5000: 250,
		1e9:  250,
	}
	for at, expected := range tests {
		seg := store.SegmentAt(at)
		if seg.BeatLength != expected {
			t.Log("at      ", at)
			t.Log("got     ", seg.BeatLength)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestSegmentAtTiesResolveToLastInserted(t *testing.T) {
	store, err := NewStore([]game.TimingSegment{
		{StartTime: 1000, BeatLength: 300, Signature: game.CommonTime},
		{StartTime: 1000, BeatLength: 400, Signature: game.CommonTime},
	}, nil)
	if nil != err {
		t.Fatal(err)
	}
	if got := store.SegmentAt(1000).BeatLength; got != 400 {
		t.Fatalf("expected the later segment to govern, got beat length %v", got)
	}
	if n := len(store.Segments()); n != 1 {
		t.Fatalf("expected the earlier duplicate to be dropped, have %d segments", n)
	}
}

func TestSuppressionAt(t *testing.T) {
	store, err := NewStore(nil, []game.SuppressionFlag{
		{Time: 2000, OmitFirstBar: true},
		{Time: 4000, OmitFirstBar: false},
	})
	if nil != err {
		t.Fatal(err)
	}

	if _, ok := store.SuppressionAt(1999); ok {
		t.Error("no flag should be active before the first one")
	}
	if fl, ok := store.SuppressionAt(2000); !ok || !fl.OmitFirstBar {
		t.Error("flag at 2000 should be active at its own time")
	}
	if fl, ok := store.SuppressionAt(3999); !ok || !fl.OmitFirstBar {
		t.Error("flag at 2000 should still be active at 3999")
	}
	// The later flag cancels the omission.
	if fl, ok := store.SuppressionAt(4000); !ok || fl.OmitFirstBar {
		t.Error("flag at 4000 should cancel the earlier omission")
	}
}

func TestStoreCopiesItsInput(t *testing.T) {
	segments := []game.TimingSegment{
		{StartTime: 0, BeatLength: 500, Signature: game.CommonTime},
	}
	store, err := NewStore(segments, nil)
	if nil != err {
		t.Fatal(err)
	}
	segments[0].BeatLength = 1
	if got := store.SegmentAt(0).BeatLength; got != 500 {
		t.Fatalf("store aliases caller data, beat length became %v", got)
	}
}
