package motif

import (
	chess "github.com/garlicgarrison/go-chess"

	"github.com/garlicgarrison/chess-motif-engine/board"
)

/*
	HangingPieces scans both colors for attacked, materially indefensible
	pieces. CanRetreat is true only when the piece's owner has the move and
	the piece has at least one legal destination -- the legal-move generator
	is the single source of truth there, so a piece pinned along a line still
	retreats along that line if the generator says it can. When the owner
	does not have the move, the piece cannot act before being captured and
	CanRetreat is false unconditionally.
*/
func (a *Analyzer) HangingPieces(p *board.Position) []HangingPiece {
	var hanging []HangingPiece
	for s := 0; s < 64; s++ {
		sq := chess.Square(s)
		pc := p.Piece(sq)
		if pc == chess.NoPiece || pc.Type() == chess.King {
			continue
		}

		attackers := p.AttackersOf(sq, pc.Color().Other())
		if len(attackers) == 0 {
			continue
		}

		if !a.oracle.IsInBadSpot(p, sq) {
			continue
		}

		canRetreat := false
		if p.Turn() == pc.Color() {
			canRetreat = len(p.LegalMovesFrom(sq)) > 0
		}

		hanging = append(hanging, HangingPiece{
			Square:     sq,
			Piece:      pc.Type(),
			Color:      pc.Color(),
			Attackers:  attackers,
			CanRetreat: canRetreat,
		})
	}

	return hanging
}
