package motif

import (
	chess "github.com/garlicgarrison/go-chess"

	"github.com/garlicgarrison/chess-motif-engine/board"
)

/*
	TrappedPieces covers both colors from one position. The oracle's escape
	check rides on legal-move generation, which only answers for the side to
	move, so the side not to move is scanned under a side-to-move toggle that
	is restored on every exit path.

	If the toggled position reports check, that color's scan is skipped: the
	toggled state is not a reachable position and declining to analyze it is
	the documented behavior, not a failure. The other color's results are
	still returned.
*/
func (a *Analyzer) TrappedPieces(p *board.Position) []TrappedPiece {
	trapped := a.trappedForTurn(p)

	p.ToggleSideToMove()
	defer p.RestoreSideToMove()

	if p.InCheck() {
		return trapped
	}

	return append(trapped, a.trappedForTurn(p)...)
}

func (a *Analyzer) trappedForTurn(p *board.Position) []TrappedPiece {
	turn := p.Turn()

	var trapped []TrappedPiece
	for s := 0; s < 64; s++ {
		sq := chess.Square(s)
		pc := p.Piece(sq)
		if pc == chess.NoPiece || pc.Color() != turn {
			continue
		}
		if pc.Type() == chess.King || pc.Type() == chess.Pawn {
			continue
		}

		if !a.oracle.IsTrapped(p, sq) {
			continue
		}

		trapped = append(trapped, TrappedPiece{
			Square: sq,
			Piece:  pc.Type(),
			Color:  pc.Color(),
		})
	}

	return trapped
}
