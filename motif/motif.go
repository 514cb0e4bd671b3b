package motif

import (
	"fmt"
	"strings"

	chess "github.com/garlicgarrison/go-chess"

	"github.com/garlicgarrison/chess-motif-engine/board"
)

// Kind names a motif family.
type Kind string

const (
	KindFork    Kind = "fork"
	KindHanging Kind = "hanging_piece"
	KindTrapped Kind = "trapped_piece"
	KindMate    Kind = "mate_pattern"
	KindXRay    Kind = "xray_attack"
)

// MatePattern is one of the named checkmate patterns.
type MatePattern string

const (
	MateBackRank     MatePattern = "back_rank"
	MateSmothered    MatePattern = "smothered"
	MateArabian      MatePattern = "arabian"
	MateHook         MatePattern = "hook"
	MateAnastasia    MatePattern = "anastasia"
	MateDovetail     MatePattern = "dovetail"
	MateBoden        MatePattern = "boden"
	MateDoubleBishop MatePattern = "double_bishop"
)

/*
	Fork: one piece attacking at least two enemy pieces such that not every
	threat can be answered. IsRoyalFork implies IsCheckFork.
*/
type Fork struct {
	Square       chess.Square      `json:"square"`
	Piece        chess.PieceType   `json:"piece"`
	Color        chess.Color       `json:"color"`
	Targets      []chess.Square    `json:"targets"`
	TargetPieces []chess.PieceType `json:"target_pieces"`
	IsCheckFork  bool              `json:"is_check_fork"`
	IsRoyalFork  bool              `json:"is_royal_fork"`
}

// HangingPiece: an attacked piece the oracle judges indefensible. Kings are
// excluded by construction.
type HangingPiece struct {
	Square     chess.Square    `json:"square"`
	Piece      chess.PieceType `json:"piece"`
	Color      chess.Color     `json:"color"`
	Attackers  []chess.Square  `json:"attackers"`
	CanRetreat bool            `json:"can_retreat"`
}

// TrappedPiece: a piece in a bad spot with no safe escape. Kings and pawns
// are excluded.
type TrappedPiece struct {
	Square chess.Square    `json:"square"`
	Piece  chess.PieceType `json:"piece"`
	Color  chess.Color     `json:"color"`
}

// MateMotif pairs a matched pattern with the mated side.
type MateMotif struct {
	Pattern MatePattern `json:"pattern"`
	Color   chess.Color `json:"mated_color"`
}

/*
	XRayAttack: slider attacking an enemy piece through one of the slider's
	own pieces. The target is always the slider's enemy; a same-color target
	is a defensive relationship, not an attack, and is never reported here.
*/
type XRayAttack struct {
	Slider      chess.Square    `json:"slider"`
	SliderPiece chess.PieceType `json:"slider_piece"`
	Color       chess.Color     `json:"color"`
	Through     chess.Square    `json:"through"`
	Target      chess.Square    `json:"target"`
	TargetPiece chess.PieceType `json:"target_piece"`
}

// Key is a canonical, position-independent motif identity used to decide
// whether a tactic has already been surfaced along a line.
type Key string

// Motif is a tagged record over the concrete motif types, the unit the
// deduplication layer and the narration consumer work with.
type Motif struct {
	Kind    Kind          `json:"kind"`
	Fork    *Fork         `json:"fork,omitempty"`
	Hanging *HangingPiece `json:"hanging,omitempty"`
	Trapped *TrappedPiece `json:"trapped,omitempty"`
	Mate    *MateMotif    `json:"mate,omitempty"`
	XRay    *XRayAttack   `json:"xray,omitempty"`
}

/*
	Key derives the motif's identity from its kind, salient squares and
	salient pieces. Two sightings of the same tactic at different plies
	collide; any change in the salient squares yields a fresh key.
*/
func (m Motif) Key() Key {
	switch m.Kind {
	case KindFork:
		targets := make([]string, 0, len(m.Fork.Targets))
		for _, t := range m.Fork.Targets {
			targets = append(targets, t.String())
		}
		return Key(fmt.Sprintf("fork|%s|%s|%s|%s",
			m.Fork.Color, m.Fork.Piece, m.Fork.Square, strings.Join(targets, ",")))
	case KindHanging:
		return Key(fmt.Sprintf("hanging|%s|%s|%s",
			m.Hanging.Color, m.Hanging.Piece, m.Hanging.Square))
	case KindTrapped:
		return Key(fmt.Sprintf("trapped|%s|%s|%s",
			m.Trapped.Color, m.Trapped.Piece, m.Trapped.Square))
	case KindMate:
		return Key(fmt.Sprintf("mate|%s|%s", m.Mate.Pattern, m.Mate.Color))
	case KindXRay:
		return Key(fmt.Sprintf("xray|%s|%s|%s|%s|%s",
			m.XRay.Color, m.XRay.SliderPiece, m.XRay.Slider, m.XRay.Through, m.XRay.Target))
	default:
		return Key(string(m.Kind))
	}
}

/*
	Valid re-checks the motif's square and piece references against a
	position's actual occupancy. Motifs detected in one position of a
	speculative line may be carried toward narration later; a motif whose
	references no longer hold must be dropped, never surfaced stale.
*/
func (m Motif) Valid(p *board.Position) bool {
	switch m.Kind {
	case KindFork:
		if !pieceAt(p, m.Fork.Square, m.Fork.Piece, m.Fork.Color) {
			return false
		}
		if len(m.Fork.Targets) != len(m.Fork.TargetPieces) {
			return false
		}
		for i, t := range m.Fork.Targets {
			if !pieceAt(p, t, m.Fork.TargetPieces[i], m.Fork.Color.Other()) {
				return false
			}
		}
		return true
	case KindHanging:
		if !pieceAt(p, m.Hanging.Square, m.Hanging.Piece, m.Hanging.Color) {
			return false
		}
		for _, a := range m.Hanging.Attackers {
			pc := p.Piece(a)
			if pc == chess.NoPiece || pc.Color() != m.Hanging.Color.Other() {
				return false
			}
		}
		return true
	case KindTrapped:
		return pieceAt(p, m.Trapped.Square, m.Trapped.Piece, m.Trapped.Color)
	case KindMate:
		return p.InCheckmate() && p.Turn() == m.Mate.Color
	case KindXRay:
		return ValidXRay(p, m.XRay.Slider, m.XRay.Through, m.XRay.Target)
	default:
		return false
	}
}

func pieceAt(p *board.Position, sq chess.Square, t chess.PieceType, c chess.Color) bool {
	pc := p.Piece(sq)
	return pc != chess.NoPiece && pc.Type() == t && pc.Color() == c
}
