package tactics

import (
	"testing"

	chess "github.com/garlicgarrison/go-chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garlicgarrison/chess-motif-engine/board"
)

func mustPosition(t *testing.T, fen string) *board.Position {
	t.Helper()

	p, err := board.NewPosition(fen)
	require.NoError(t, err)
	return p
}

func newTestOracle(t *testing.T) *Oracle {
	t.Helper()

	o, err := NewOracle(DefaultValues())
	require.NoError(t, err)
	return o
}

func TestValuesValidate(t *testing.T) {
	assert.NoError(t, DefaultValues().Validate())
	assert.ErrorIs(t, Values{}.Validate(), ErrInvalidValues)
	assert.ErrorIs(t, Values{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: KingValue}.Validate(), ErrInvalidValues)

	_, err := NewOracle(Values{})
	assert.ErrorIs(t, err, ErrInvalidValues)
}

func TestIsInBadSpotDefended(t *testing.T) {
	o := newTestOracle(t)

	// pawn d4 attacked by the d8 rook but defended by the e3 pawn: the
	// attacker is dearer than the pawn, so this is not a bad spot
	p := mustPosition(t, "3r3k/8/8/8/3P4/4P3/8/4K3 w - - 0 1")
	assert.False(t, o.IsInBadSpot(p, chess.D4))

	// unattacked piece is never in a bad spot
	assert.False(t, o.IsInBadSpot(p, chess.E3))
}

func TestIsInBadSpotCheaperAttacker(t *testing.T) {
	o := newTestOracle(t)

	// rook d4 defended, but attacked by the c5 pawn: a pawn for a rook is
	// a bad trade no matter the defense
	p := mustPosition(t, "7k/8/8/2p5/3R4/4P3/8/4K3 w - - 0 1")
	assert.True(t, o.IsInBadSpot(p, chess.D4))
}

func TestIsInBadSpotUndefended(t *testing.T) {
	o := newTestOracle(t)

	// rook e4 attacked twice and defended by nothing
	p := mustPosition(t, "k3q3/8/8/8/4R3/8/5n2/4K3 w - - 0 1")
	assert.True(t, o.IsInBadSpot(p, chess.E4))
}

func TestIsTrapped(t *testing.T) {
	o := newTestOracle(t)
	p := mustPosition(t, "Nr1k4/p7/8/8/8/8/P7/nR1K4 w - - 0 1")

	// knight a8: attacked by the b8 rook, b6 runs into the a7 pawn, c7
	// into the black king
	assert.True(t, o.IsTrapped(p, chess.A8))

	// rook b1 is attacked, but taking on a1 is a clean escape
	assert.False(t, o.IsTrapped(p, chess.B1))

	// not the side to move
	assert.False(t, o.IsTrapped(p, chess.A1))
}
