package motif

import (
	chess "github.com/garlicgarrison/go-chess"
	guuid "github.com/google/uuid"

	"github.com/garlicgarrison/chess-motif-engine/board"
	"github.com/garlicgarrison/chess-motif-engine/tactics"
)

/*
	Oracle is the exchange-safety collaborator. The analyzer never looks
	inside it; its judgement is taken as-is and any failure in it is a logic
	defect that should surface, not be masked here.
*/
type Oracle interface {
	IsInBadSpot(p *board.Position, sq chess.Square) bool
	IsTrapped(p *board.Position, sq chess.Square) bool
}

// Analyzer runs every detector over a single position snapshot.
type Analyzer struct {
	oracle Oracle
	values tactics.Values
}

func NewAnalyzer(oracle Oracle, values tactics.Values) (*Analyzer, error) {
	if err := values.Validate(); err != nil {
		return nil, err
	}

	return &Analyzer{
		oracle: oracle,
		values: values,
	}, nil
}

// Analysis is the full motif report for one position. Records live for the
// request only; nothing here persists.
type Analysis struct {
	ID      guuid.UUID     `json:"id"`
	FEN     string         `json:"fen"`
	Forks   []Fork         `json:"forks"`
	Hanging []HangingPiece `json:"hanging"`
	Trapped []TrappedPiece `json:"trapped"`
	Mates   []MateMotif    `json:"mates"`
	XRays   []XRayAttack   `json:"xrays"`
}

// Analyze runs every detector on p and aggregates the results.
func (a *Analyzer) Analyze(p *board.Position) *Analysis {
	return &Analysis{
		ID:      guuid.New(),
		FEN:     p.FEN(),
		Forks:   a.Forks(p),
		Hanging: a.HangingPieces(p),
		Trapped: a.TrappedPieces(p),
		Mates:   a.MatePatterns(p),
		XRays:   a.XRays(p),
	}
}

// Motifs flattens the analysis into tagged records for deduplication and
// narration.
func (an *Analysis) Motifs() []Motif {
	var out []Motif
	for i := range an.Forks {
		out = append(out, Motif{Kind: KindFork, Fork: &an.Forks[i]})
	}
	for i := range an.Hanging {
		out = append(out, Motif{Kind: KindHanging, Hanging: &an.Hanging[i]})
	}
	for i := range an.Trapped {
		out = append(out, Motif{Kind: KindTrapped, Trapped: &an.Trapped[i]})
	}
	for i := range an.Mates {
		out = append(out, Motif{Kind: KindMate, Mate: &an.Mates[i]})
	}
	for i := range an.XRays {
		out = append(out, Motif{Kind: KindXRay, XRay: &an.XRays[i]})
	}

	return out
}
