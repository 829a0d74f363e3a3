package game

// Marker is one generated grid line.
type Marker struct {
	Time  float64 `json:"time"` // milliseconds
	Major bool    `json:"major"`
}
