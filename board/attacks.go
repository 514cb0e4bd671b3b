package board

import (
	chess "github.com/garlicgarrison/go-chess"
)

const boardSize = 64

var (
	knightSteps = [][2]int{{-2, -1}, {-1, -2}, {1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}}
	kingSteps   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	// DiagonalDirections and StraightDirections are the slider rays, as
	// (file, rank) deltas.
	DiagonalDirections = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	StraightDirections = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

func square(file, rank int) chess.Square {
	return chess.Square(rank*8 + file)
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

/*
	AttacksFrom returns the squares the piece on sq attacks, geometry only --
	it does not care whose turn it is. Sliders stop at the first occupied
	square and include it.
*/
func (p *Position) AttacksFrom(sq chess.Square) []chess.Square {
	pc := p.Piece(sq)
	if pc == chess.NoPiece {
		return nil
	}

	switch pc.Type() {
	case chess.King:
		return p.stepAttacks(sq, kingSteps)
	case chess.Knight:
		return p.stepAttacks(sq, knightSteps)
	case chess.Pawn:
		return p.pawnAttacks(sq, pc.Color())
	case chess.Bishop:
		return p.rayAttacks(sq, DiagonalDirections)
	case chess.Rook:
		return p.rayAttacks(sq, StraightDirections)
	case chess.Queen:
		attacks := p.rayAttacks(sq, StraightDirections)
		return append(attacks, p.rayAttacks(sq, DiagonalDirections)...)
	default:
		return nil
	}
}

// AttackersOf returns the squares of color's pieces that attack sq.
func (p *Position) AttackersOf(sq chess.Square, color chess.Color) []chess.Square {
	var attackers []chess.Square
	for s := 0; s < boardSize; s++ {
		from := chess.Square(s)
		pc := p.Piece(from)
		if pc == chess.NoPiece || pc.Color() != color {
			continue
		}

		for _, a := range p.AttacksFrom(from) {
			if a == sq {
				attackers = append(attackers, from)
				break
			}
		}
	}

	return attackers
}

// Ray returns the squares from sq walking (df, dr) until the board edge,
// regardless of occupancy.
func (p *Position) Ray(sq chess.Square, df, dr int) []chess.Square {
	var squares []chess.Square
	f, r := int(sq.File())+df, int(sq.Rank())+dr
	for onBoard(f, r) {
		squares = append(squares, square(f, r))
		f, r = f+df, r+dr
	}

	return squares
}

func (p *Position) stepAttacks(sq chess.Square, steps [][2]int) []chess.Square {
	attacks := make([]chess.Square, 0, len(steps))
	for _, s := range steps {
		f, r := int(sq.File())+s[0], int(sq.Rank())+s[1]
		if !onBoard(f, r) {
			continue
		}

		attacks = append(attacks, square(f, r))
	}

	return attacks
}

func (p *Position) pawnAttacks(sq chess.Square, color chess.Color) []chess.Square {
	dr := 1
	if color == chess.Black {
		dr = -1
	}

	attacks := make([]chess.Square, 0, 2)
	for _, df := range []int{-1, 1} {
		f, r := int(sq.File())+df, int(sq.Rank())+dr
		if !onBoard(f, r) {
			continue
		}

		attacks = append(attacks, square(f, r))
	}

	return attacks
}

func (p *Position) rayAttacks(sq chess.Square, dirs [][2]int) []chess.Square {
	var attacks []chess.Square
	for _, d := range dirs {
		for _, s := range p.Ray(sq, d[0], d[1]) {
			attacks = append(attacks, s)
			if p.Piece(s) != chess.NoPiece {
				break
			}
		}
	}

	return attacks
}
