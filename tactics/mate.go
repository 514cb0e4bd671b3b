package tactics

import (
	chess "github.com/garlicgarrison/go-chess"

	"github.com/garlicgarrison/chess-motif-engine/board"
)

/*
	Named checkmate pattern matchers. Each one is an independent geometric
	test on a position that is already known to be checkmate -- the caller
	establishes that, and callers must invoke every matcher they care about,
	since several patterns can hold at once.

	The mated side is the side to move.
*/

// BishopMate is the tri-state outcome of the boden/double-bishop
// discriminator. The two patterns are mutually exclusive readings of the
// same two-bishop geometry, so they come from a single check.
type BishopMate int

const (
	BishopMateNone BishopMate = iota
	BishopMateBoden
	BishopMateDoubleBishop
)

// IsBackRankMate: king on its own back rank, mated by a rook or queen along
// that rank, with its forward flight squares blocked by its own pieces.
func IsBackRankMate(p *board.Position) bool {
	ksq, mated, checkers := matedKing(p)

	backRank := chess.Rank1
	if mated == chess.Black {
		backRank = chess.Rank8
	}
	if ksq.Rank() != backRank {
		return false
	}

	onRank := false
	for _, c := range checkers {
		t := p.Piece(c).Type()
		if (t == chess.Rook || t == chess.Queen) && c.Rank() == backRank {
			onRank = true
			break
		}
	}
	if !onRank {
		return false
	}

	for _, sq := range adjacent(ksq) {
		if sq.Rank() == backRank {
			continue
		}

		pc := p.Piece(sq)
		if pc == chess.NoPiece || pc.Color() != mated {
			return false
		}
	}

	return true
}

// IsSmotheredMate: knight check with the king buried behind its own pieces.
func IsSmotheredMate(p *board.Position) bool {
	ksq, mated, checkers := matedKing(p)

	knight := false
	for _, c := range checkers {
		if p.Piece(c).Type() == chess.Knight {
			knight = true
			break
		}
	}
	if !knight {
		return false
	}

	for _, sq := range adjacent(ksq) {
		pc := p.Piece(sq)
		if pc == chess.NoPiece || pc.Color() != mated {
			return false
		}
	}

	return true
}

// IsArabianMate: cornered king, rook check from an adjacent square, rook
// guarded by a knight.
func IsArabianMate(p *board.Position) bool {
	ksq, _, checkers := matedKing(p)

	if ksq != chess.A1 && ksq != chess.H1 && ksq != chess.A8 && ksq != chess.H8 {
		return false
	}

	for _, c := range checkers {
		pc := p.Piece(c)
		if pc.Type() != chess.Rook || chebyshev(c, ksq) != 1 {
			continue
		}

		if guardedByKnight(p, c, pc.Color()) {
			return true
		}
	}

	return false
}

// IsHookMate: rook check from an adjacent square, rook guarded by a knight,
// knight guarded by a pawn.
func IsHookMate(p *board.Position) bool {
	ksq, _, checkers := matedKing(p)

	for _, c := range checkers {
		pc := p.Piece(c)
		if pc.Type() != chess.Rook || chebyshev(c, ksq) != 1 {
			continue
		}

		for _, nsq := range knightGuards(p, c, pc.Color()) {
			for _, g := range p.AttackersOf(nsq, pc.Color()) {
				if p.Piece(g).Type() == chess.Pawn {
					return true
				}
			}
		}
	}

	return false
}

// IsAnastasiaMate: king on the a- or h-file, mated along that file by a
// distant rook while a knight seals the adjacent flight squares.
func IsAnastasiaMate(p *board.Position) bool {
	ksq, _, checkers := matedKing(p)

	if ksq.File() != chess.FileA && ksq.File() != chess.FileH {
		return false
	}

	for _, c := range checkers {
		pc := p.Piece(c)
		if pc.Type() != chess.Rook || c.File() != ksq.File() || chebyshev(c, ksq) <= 1 {
			continue
		}

		for s := 0; s < 64; s++ {
			nsq := chess.Square(s)
			npc := p.Piece(nsq)
			if npc == chess.NoPiece || npc.Type() != chess.Knight || npc.Color() != pc.Color() {
				continue
			}

			for _, a := range p.AttacksFrom(nsq) {
				if chebyshev(a, ksq) == 1 {
					return true
				}
			}
		}
	}

	return false
}

// IsDovetailMate: queen check from a diagonally adjacent square, with
// exactly two flight squares -- the ones the queen does not reach --
// blocked by the king's own pieces.
func IsDovetailMate(p *board.Position) bool {
	ksq, mated, checkers := matedKing(p)

	for _, c := range checkers {
		pc := p.Piece(c)
		if pc.Type() != chess.Queen || !diagAdjacent(c, ksq) {
			continue
		}

		covered := make(map[chess.Square]bool)
		for _, a := range p.AttacksFrom(c) {
			covered[a] = true
		}

		// the tail: own pieces sitting on the squares the queen leaves open
		wings := 0
		for _, sq := range adjacent(ksq) {
			if sq == c || covered[sq] {
				continue
			}

			pcAt := p.Piece(sq)
			if pcAt != chess.NoPiece && pcAt.Color() == mated {
				wings++
			}
		}

		if wings == 2 {
			return true
		}
	}

	return false
}

/*
	BodenOrDoubleBishop discriminates the two-bishop mates in one pass: a
	bishop delivers the check while a second bishop seals the king's flight
	squares. Crossing diagonals make it Boden's mate, parallel diagonals the
	double bishop mate. The outcomes are definitionally exclusive, hence one
	tri-state result instead of two matchers.
*/
func BodenOrDoubleBishop(p *board.Position) BishopMate {
	ksq, _, checkers := matedKing(p)

	for _, c := range checkers {
		pc := p.Piece(c)
		if pc.Type() != chess.Bishop {
			continue
		}

		df1, dr1 := unitDir(c, ksq)
		for s := 0; s < 64; s++ {
			bsq := chess.Square(s)
			if bsq == c {
				continue
			}

			bpc := p.Piece(bsq)
			if bpc == chess.NoPiece || bpc.Type() != chess.Bishop || bpc.Color() != pc.Color() {
				continue
			}

			for _, a := range p.AttacksFrom(bsq) {
				if chebyshev(a, ksq) != 1 {
					continue
				}

				df2, dr2 := unitDir(bsq, a)
				if df1*df2+dr1*dr2 == 0 {
					return BishopMateBoden
				}
				return BishopMateDoubleBishop
			}
		}
	}

	return BishopMateNone
}

func matedKing(p *board.Position) (chess.Square, chess.Color, []chess.Square) {
	mated := p.Turn()
	ksq, _ := p.KingSquare(mated)
	return ksq, mated, p.AttackersOf(ksq, mated.Other())
}

func adjacent(sq chess.Square) []chess.Square {
	var out []chess.Square
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}

			f, r := int(sq.File())+df, int(sq.Rank())+dr
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}

			out = append(out, chess.Square(r*8+f))
		}
	}

	return out
}

func chebyshev(a, b chess.Square) int {
	df := int(a.File()) - int(b.File())
	if df < 0 {
		df = -df
	}
	dr := int(a.Rank()) - int(b.Rank())
	if dr < 0 {
		dr = -dr
	}

	if df > dr {
		return df
	}
	return dr
}

func diagAdjacent(a, b chess.Square) bool {
	df := int(a.File()) - int(b.File())
	dr := int(a.Rank()) - int(b.Rank())
	return (df == 1 || df == -1) && (dr == 1 || dr == -1)
}

func unitDir(from, to chess.Square) (int, int) {
	df := int(to.File()) - int(from.File())
	if df > 0 {
		df = 1
	} else if df < 0 {
		df = -1
	}

	dr := int(to.Rank()) - int(from.Rank())
	if dr > 0 {
		dr = 1
	} else if dr < 0 {
		dr = -1
	}

	return df, dr
}

func guardedByKnight(p *board.Position, sq chess.Square, c chess.Color) bool {
	return len(knightGuards(p, sq, c)) > 0
}

func knightGuards(p *board.Position, sq chess.Square, c chess.Color) []chess.Square {
	var guards []chess.Square
	for _, a := range p.AttackersOf(sq, c) {
		if p.Piece(a).Type() == chess.Knight {
			guards = append(guards, a)
		}
	}

	return guards
}
