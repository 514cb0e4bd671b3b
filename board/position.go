package board

import (
	"errors"
	"fmt"
	"strings"

	chess "github.com/garlicgarrison/go-chess"
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrIllegalMove     = errors.New("illegal move")
)

/*
	Position wraps a go-chess position with the queries the detectors need:
	occupancy, turn-independent attack geometry, legal destinations for the
	side to move, check status, and a reversible side-to-move toggle.

	Everything is a pure read except the toggle, which is an explicit scoped
	mutation: flip, use, restore. Misusing the toggle is a programming error
	and panics.
*/
type Position struct {
	pos     *chess.Position
	saved   *chess.Position
	toggled bool
}

/*
	NewPosition parses a FEN and rejects structurally broken positions
	(a side without a king) before any detector gets to run on them
*/
func NewPosition(fen string) (*Position, error) {
	f, err := chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, ErrInvalidPosition
	}

	p := &Position{pos: chess.NewGame(f).Position()}
	if _, ok := p.KingSquare(chess.White); !ok {
		return nil, ErrInvalidPosition
	}
	if _, ok := p.KingSquare(chess.Black); !ok {
		return nil, ErrInvalidPosition
	}

	return p, nil
}

func (p *Position) FEN() string {
	return p.pos.String()
}

func (p *Position) Turn() chess.Color {
	return p.pos.Turn()
}

func (p *Position) Piece(sq chess.Square) chess.Piece {
	return p.pos.Board().Piece(sq)
}

func (p *Position) KingSquare(c chess.Color) (chess.Square, bool) {
	for s := 0; s < boardSize; s++ {
		sq := chess.Square(s)
		pc := p.Piece(sq)
		if pc != chess.NoPiece && pc.Type() == chess.King && pc.Color() == c {
			return sq, true
		}
	}

	return 0, false
}

/*
	LegalMovesFrom returns the legal destinations of the piece on sq. Only the
	side to move has legal moves; pins and check are already respected by the
	generator, so a pinned piece keeps exactly its moves along the pin line.
*/
func (p *Position) LegalMovesFrom(sq chess.Square) []chess.Square {
	var dests []chess.Square
	for _, m := range p.pos.ValidMoves() {
		if m.S1() == sq {
			dests = append(dests, m.S2())
		}
	}

	return dests
}

// After returns the position reached by the legal move from-to.
func (p *Position) After(from, to chess.Square) (*Position, error) {
	for _, m := range p.pos.ValidMoves() {
		if m.S1() == from && m.S2() == to {
			return &Position{pos: p.pos.Update(m)}, nil
		}
	}

	return nil, ErrIllegalMove
}

// Move returns the position reached by the given UCI move, e.g. "e2e4".
func (p *Position) Move(uci string) (*Position, error) {
	m, err := chess.UCINotation{}.Decode(p.pos, uci)
	if err != nil {
		return nil, ErrIllegalMove
	}

	for _, vm := range p.pos.ValidMoves() {
		if vm.S1() == m.S1() && vm.S2() == m.S2() && vm.Promo() == m.Promo() {
			return &Position{pos: p.pos.Update(vm)}, nil
		}
	}

	return nil, ErrIllegalMove
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	ksq, ok := p.KingSquare(p.Turn())
	if !ok {
		return false
	}

	return len(p.AttackersOf(ksq, p.Turn().Other())) > 0
}

func (p *Position) InCheckmate() bool {
	return p.pos.Status() == chess.Checkmate
}

/*
	ToggleSideToMove flips whose turn it is without touching occupancy -- the
	null move used to analyze the side not to move. En passant rights are
	cleared since they cannot survive the flip. Every toggle must be paired
	with RestoreSideToMove on all exit paths; toggling twice is fatal.
*/
func (p *Position) ToggleSideToMove() {
	if p.toggled {
		panic("board: side to move already toggled")
	}

	fields := strings.Fields(p.pos.String())
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"

	f, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		panic(fmt.Sprintf("board: toggled fen unparseable -- %s", err))
	}

	p.saved = p.pos
	p.pos = chess.NewGame(f).Position()
	p.toggled = true
}

// RestoreSideToMove undoes a prior toggle. Restoring without one is fatal.
func (p *Position) RestoreSideToMove() {
	if !p.toggled {
		panic("board: restore without matching toggle")
	}

	p.pos = p.saved
	p.saved = nil
	p.toggled = false
}
