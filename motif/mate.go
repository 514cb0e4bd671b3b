package motif

import (
	"github.com/garlicgarrison/chess-motif-engine/board"
	"github.com/garlicgarrison/chess-motif-engine/tactics"
)

var mateMatchers = []struct {
	pattern MatePattern
	match   func(*board.Position) bool
}{
	{MateBackRank, tactics.IsBackRankMate},
	{MateSmothered, tactics.IsSmotheredMate},
	{MateArabian, tactics.IsArabianMate},
	{MateHook, tactics.IsHookMate},
	{MateAnastasia, tactics.IsAnastasiaMate},
	{MateDovetail, tactics.IsDovetailMate},
}

/*
	MatePatterns returns every named pattern the position matches. Non-mate
	positions short-circuit to nothing; on a checkmate every matcher runs
	unconditionally, since patterns co-occur and all of them must be
	reported, never just the first. The boden/double-bishop discriminator is
	one tri-state check whose non-none outcome is appended alongside the
	rest, never gated behind them.
*/
func (a *Analyzer) MatePatterns(p *board.Position) []MateMotif {
	if !p.InCheckmate() {
		return nil
	}

	mated := p.Turn()

	var mates []MateMotif
	for _, m := range mateMatchers {
		if m.match(p) {
			mates = append(mates, MateMotif{Pattern: m.pattern, Color: mated})
		}
	}

	switch tactics.BodenOrDoubleBishop(p) {
	case tactics.BishopMateBoden:
		mates = append(mates, MateMotif{Pattern: MateBoden, Color: mated})
	case tactics.BishopMateDoubleBishop:
		mates = append(mates, MateMotif{Pattern: MateDoubleBishop, Color: mated})
	}

	return mates
}
