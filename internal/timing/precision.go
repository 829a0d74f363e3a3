package timing

import "math"

// TimeEpsilon is the absolute tolerance, in milliseconds, for every time
// comparison in this package. Control point timestamps come from floating
// point beatmap data, so exact equality is never assumed.
const TimeEpsilon = 1e-3

// AlmostEquals reports whether a and b are within TimeEpsilon of each other.
func AlmostEquals(a, b float64) bool {
	return math.Abs(a-b) <= TimeEpsilon
}

// DefinitelyBigger reports whether a exceeds b by more than TimeEpsilon.
// Merely touching the tolerance does not count.
func DefinitelyBigger(a, b float64) bool {
	return a-TimeEpsilon > b
}
