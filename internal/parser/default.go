package parser

import (
	"io/ioutil"
	"strconv"
	"strings"

	"git.lost.host/meutraa/beatgrid/internal/game"
	"github.com/pkg/errors"
)

// effect bit 3 of a timing point hides the bar line sitting on it
const omitFirstBarFlag = 8

type DefaultParser struct{}

// Parse reads the [TimingPoints] section of a beatmap file. Each line is
//
//	time,beatLength,meter,sampleSet,sampleIndex,volume,uninherited,effects
//
// with everything after beatLength optional. Lines with a positive beat
// length are tempo changes; every line carries the suppression effect bit,
// so inherited (negative beat length) points still contribute flags.
func (p *DefaultParser) Parse(file string) ([]game.TimingSegment, []game.SuppressionFlag, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, nil, err
	}

	segments := []game.TimingSegment{}
	flags := []game.SuppressionFlag{}

	str := strings.ReplaceAll(string(data), "\r", "")
	inSection := false
	for n, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inSection = strings.EqualFold(line, "[TimingPoints]")
			continue
		}
		if !inSection {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			return nil, nil, errors.Errorf("line %v: timing point needs at least a time and a beat length", n+1)
		}

		t, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if nil != err {
			return nil, nil, errors.Wrapf(err, "line %v: time", n+1)
		}
		beatLength, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if nil != err {
			return nil, nil, errors.Wrapf(err, "line %v: beat length", n+1)
		}

		meter := 4
		if len(parts) > 2 {
			meter, err = strconv.Atoi(strings.TrimSpace(parts[2]))
			if nil != err {
				return nil, nil, errors.Wrapf(err, "line %v: meter", n+1)
			}
			if meter == 0 {
				meter = 4
			}
		}

		effects := 0
		if len(parts) > 7 {
			effects, err = strconv.Atoi(strings.TrimSpace(parts[7]))
			if nil != err {
				return nil, nil, errors.Wrapf(err, "line %v: effects", n+1)
			}
		}

		if beatLength > 0 {
			segments = append(segments, game.TimingSegment{
				StartTime:  t,
				BeatLength: beatLength,
				Signature:  game.TimeSignature{BeatsPerBar: meter},
			})
		}
		flags = append(flags, game.SuppressionFlag{
			Time:         t,
			OmitFirstBar: effects&omitFirstBarFlag != 0,
		})
	}

	return segments, flags, nil
}
