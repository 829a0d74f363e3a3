package parser

import "git.lost.host/meutraa/beatgrid/internal/game"

type Parser interface {
	Parse(file string) ([]game.TimingSegment, []game.SuppressionFlag, error)
}
