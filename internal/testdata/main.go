package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/beatgrid/internal/game"
)

type controlPoints struct {
	Segments []game.TimingSegment   `json:"segments"`
	Flags    []game.SuppressionFlag `json:"flags"`
}

// GetControlPoints returns a small control point set with a tempo change
// and a suppressed boundary, enough to exercise a full generation pass.
func GetControlPoints() ([]game.TimingSegment, []game.SuppressionFlag, error) {
	var points controlPoints
	if err := json.Unmarshal([]byte(data), &points); nil != err {
		return nil, nil, err
	}
	return points.Segments, points.Flags, nil
}

const data = `{
	"segments": [
		{"start": 0, "length": 285.7142857142857, "signature": {"BeatsPerBar": 4}},
		{"start": 20000, "length": 500, "signature": {"BeatsPerBar": 3}},
		{"start": 45500, "length": 250, "signature": {"BeatsPerBar": 4}}
	],
	"flags": [
		{"time": 20000, "omit": true},
		{"time": 45500, "omit": false}
	]
}`
