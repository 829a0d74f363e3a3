package cache

import (
	"testing"

	"git.lost.host/meutraa/beatgrid/internal/game"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	c := &DefaultCache{}
	if err := c.Init(":memory:"); nil != err {
		t.Fatal(err)
	}
	defer c.Deinit()

	markers := []game.Marker{
		{Time: 0, Major: true},
		{Time: 285.7142857142857},
		{Time: 571.4285714285714},
		{Time: 857.1428571428572},
		{Time: 1142.857142857143, Major: true},
	}
	key := Key([]game.TimingSegment{
		{StartTime: 0, BeatLength: 2000.0 / 7, Signature: game.CommonTime},
	}, nil, 1200)

	if _, ok := c.Load(key); ok {
		t.Fatal("load before save should miss")
	}

	c.Save(key, markers)
	out, ok := c.Load(key)
	if !ok {
		t.Fatal("load after save should hit")
	}
	if len(out) != len(markers) {
		t.Fatalf("expected %d markers, got %d", len(markers), len(out))
	}
	for i := range out {
		if out[i] != markers[i] {
			t.Log("index   ", i)
			t.Log("out     ", out[i])
			t.Log("expected", markers[i])
			t.Fail()
		}
	}

	// Saving again under the same key replaces, not duplicates.
	c.Save(key, markers[:2])
	out, ok = c.Load(key)
	if !ok || len(out) != 2 {
		t.Fatalf("expected the grid to be replaced, got %d markers", len(out))
	}
}
