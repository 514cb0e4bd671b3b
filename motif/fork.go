package motif

import (
	chess "github.com/garlicgarrison/go-chess"

	"github.com/garlicgarrison/chess-motif-engine/board"
)

/*
	Forks scans both colors for pieces attacking two or more enemy pieces.
	Raw geometry alone is not a fork: a candidate only counts when the
	defender cannot answer every threat, which holds under any one of three
	conditions -- the fork gives check, the forker is defended, or the forker
	is worth less than its best target. An undefended queen "forking" two
	undefended minors fails all three: the defender just takes the queen.

	This test is a heuristic, not a search of every reply.
*/
func (a *Analyzer) Forks(p *board.Position) []Fork {
	var forks []Fork
	for s := 0; s < 64; s++ {
		sq := chess.Square(s)
		pc := p.Piece(sq)
		if pc == chess.NoPiece {
			continue
		}

		enemy := pc.Color().Other()
		attacked := make(map[chess.Square]bool)
		for _, att := range p.AttacksFrom(sq) {
			attacked[att] = true
		}

		var targets []chess.Square
		var targetPieces []chess.PieceType
		for t := 0; t < 64; t++ {
			tsq := chess.Square(t)
			if !attacked[tsq] {
				continue
			}

			tpc := p.Piece(tsq)
			if tpc == chess.NoPiece || tpc.Color() != enemy {
				continue
			}

			targets = append(targets, tsq)
			targetPieces = append(targetPieces, tpc.Type())
		}
		if len(targets) < 2 {
			continue
		}

		hasKing, hasQueen := false, false
		maxTarget := 0
		for _, tp := range targetPieces {
			switch tp {
			case chess.King:
				// king targets stay on the boolean branch; the sentinel
				// value never enters the comparison
				hasKing = true
				continue
			case chess.Queen:
				hasQueen = true
			}

			if v := a.values.Of(tp); v > maxTarget {
				maxTarget = v
			}
		}

		defended := pc.Type() == chess.King || len(p.AttackersOf(sq, pc.Color())) > 0
		undervalued := a.values.Of(pc.Type()) < maxTarget
		if !hasKing && !defended && !undervalued {
			continue
		}

		forks = append(forks, Fork{
			Square:       sq,
			Piece:        pc.Type(),
			Color:        pc.Color(),
			Targets:      targets,
			TargetPieces: targetPieces,
			IsCheckFork:  hasKing,
			IsRoyalFork:  hasKing && hasQueen,
		})
	}

	return forks
}
