package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	File    = kingpin.Arg("beatmap", "Beatmap file with a [TimingPoints] section").Required().ExistingFile()
	End     = kingpin.Flag("end", "Track end time in milliseconds").Default("120000").Short('e').Float64()
	Rate    = kingpin.Flag("rate", "Preview playback speed").Default("1.0").Short('r').Float64()
	Preview = kingpin.Flag("preview", "Play the grid as metronome ticks").Short('p').Bool()
	Limit   = kingpin.Flag("limit", "Lines to print, 0 for all").Default("0").Short('n').Uint()
	DB      = kingpin.Flag("db", "Grid cache database").Default("./grids.db").String()
	NoCache = kingpin.Flag("no-cache", "Skip the grid cache").Bool()
)

func init() {
	kingpin.Version("0.2.0")
	kingpin.Parse()
}
