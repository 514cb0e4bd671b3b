package tactics

import (
	chess "github.com/garlicgarrison/go-chess"

	"github.com/garlicgarrison/chess-motif-engine/board"
)

/*
	Oracle answers the exchange-safety questions the detectors lean on. Its
	judgement is deliberately approximate: it weighs the cheapest attacker
	against the piece and whether anyone defends it, without searching every
	opponent reply.
*/
type Oracle struct {
	values Values
}

func NewOracle(values Values) (*Oracle, error) {
	if err := values.Validate(); err != nil {
		return nil, err
	}

	return &Oracle{values: values}, nil
}

/*
	IsInBadSpot reports whether the piece on sq is materially indefensible:
	attacked while undefended, or attacked by something cheaper than itself.
	Kings and empty squares are never in a bad spot.
*/
func (o *Oracle) IsInBadSpot(p *board.Position, sq chess.Square) bool {
	pc := p.Piece(sq)
	if pc == chess.NoPiece || pc.Type() == chess.King {
		return false
	}

	attackers := p.AttackersOf(sq, pc.Color().Other())
	if len(attackers) == 0 {
		return false
	}

	defenders := p.AttackersOf(sq, pc.Color())
	if len(defenders) == 0 {
		return true
	}

	cheapest := KingValue
	for _, a := range attackers {
		if v := o.values.Of(p.Piece(a).Type()); v < cheapest {
			cheapest = v
		}
	}

	return cheapest < o.values.Of(pc.Type())
}

/*
	IsTrapped reports whether the piece on sq is in a bad spot with no safe
	escape. Escapes are the piece's legal moves, so this only answers for the
	side to move; each destination is judged on the position after the move.
	Kings and pawns are out of scope.
*/
func (o *Oracle) IsTrapped(p *board.Position, sq chess.Square) bool {
	pc := p.Piece(sq)
	if pc == chess.NoPiece || pc.Color() != p.Turn() {
		return false
	}
	if pc.Type() == chess.King || pc.Type() == chess.Pawn {
		return false
	}

	if !o.IsInBadSpot(p, sq) {
		return false
	}

	for _, dest := range p.LegalMovesFrom(sq) {
		next, err := p.After(sq, dest)
		if err != nil {
			continue
		}

		if !o.IsInBadSpot(next, dest) {
			return false
		}
	}

	return true
}
