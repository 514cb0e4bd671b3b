package motif

import (
	chess "github.com/garlicgarrison/go-chess"

	"github.com/garlicgarrison/chess-motif-engine/board"
)

/*
	XRays scans every slider for attacks running through one of the slider's
	own pieces onto an enemy piece behind it. A candidate with an enemy piece
	in between is a plain direct attack, and a same-color target behind an
	own piece is a defensive relationship; neither is reported.
*/
func (a *Analyzer) XRays(p *board.Position) []XRayAttack {
	var xrays []XRayAttack
	for s := 0; s < 64; s++ {
		sq := chess.Square(s)
		pc := p.Piece(sq)
		if pc == chess.NoPiece {
			continue
		}

		for _, d := range sliderDirections(pc.Type()) {
			through, target, ok := firstTwoOnRay(p, sq, d)
			if !ok {
				continue
			}

			if !ValidXRay(p, sq, through, target) {
				continue
			}

			xrays = append(xrays, XRayAttack{
				Slider:      sq,
				SliderPiece: pc.Type(),
				Color:       pc.Color(),
				Through:     through,
				Target:      target,
				TargetPiece: p.Piece(target).Type(),
			})
		}
	}

	return xrays
}

/*
	ValidXRay re-checks a slider/through/target triple against the current
	occupancy: slider in place and able to run that ray, the through piece
	the slider's own, the target an enemy, and nothing else in between. It is
	used during detection and again at render time, since a motif found in a
	speculative position can go stale by the time it is narrated.
*/
func ValidXRay(p *board.Position, slider, through, target chess.Square) bool {
	spc := p.Piece(slider)
	tpc := p.Piece(target)
	bpc := p.Piece(through)
	if spc == chess.NoPiece || tpc == chess.NoPiece || bpc == chess.NoPiece {
		return false
	}

	if bpc.Color() != spc.Color() || tpc.Color() == spc.Color() {
		return false
	}

	df, dr := rayDirection(slider, target)
	if df == 0 && dr == 0 {
		return false
	}

	allowed := false
	for _, d := range sliderDirections(spc.Type()) {
		if d[0] == df && d[1] == dr {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	seenThrough := false
	for _, sq := range p.Ray(slider, df, dr) {
		if sq == target {
			return seenThrough
		}

		if p.Piece(sq) == chess.NoPiece {
			continue
		}
		if sq != through || seenThrough {
			return false
		}
		seenThrough = true
	}

	return false
}

func sliderDirections(t chess.PieceType) [][2]int {
	switch t {
	case chess.Bishop:
		return board.DiagonalDirections
	case chess.Rook:
		return board.StraightDirections
	case chess.Queen:
		return append(append([][2]int{}, board.StraightDirections...), board.DiagonalDirections...)
	default:
		return nil
	}
}

// rayDirection returns the unit direction from a to b when they share a
// rank, file or diagonal, and (0, 0) otherwise.
func rayDirection(a, b chess.Square) (int, int) {
	df := int(b.File()) - int(a.File())
	dr := int(b.Rank()) - int(a.Rank())
	if df != 0 && dr != 0 && df != dr && df != -dr {
		return 0, 0
	}
	if df == 0 && dr == 0 {
		return 0, 0
	}

	if df > 0 {
		df = 1
	} else if df < 0 {
		df = -1
	}
	if dr > 0 {
		dr = 1
	} else if dr < 0 {
		dr = -1
	}

	return df, dr
}

func firstTwoOnRay(p *board.Position, sq chess.Square, d [2]int) (chess.Square, chess.Square, bool) {
	var through chess.Square
	found := false
	for _, s := range p.Ray(sq, d[0], d[1]) {
		if p.Piece(s) == chess.NoPiece {
			continue
		}

		if !found {
			through = s
			found = true
			continue
		}

		return through, s, true
	}

	return 0, 0, false
}
