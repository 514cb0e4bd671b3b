package tactics

import (
	"testing"

	chess "github.com/garlicgarrison/go-chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
	Every fixture below is a legal checkmate; the matchers assume the caller
	established that, which the require makes explicit.
*/

func TestBackRankMate(t *testing.T) {
	p := mustPosition(t, "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.True(t, p.InCheckmate())

	assert.True(t, IsBackRankMate(p))
	assert.False(t, IsSmotheredMate(p))
	assert.False(t, IsArabianMate(p))
	assert.False(t, IsHookMate(p))
	assert.False(t, IsAnastasiaMate(p))
	assert.False(t, IsDovetailMate(p))
	assert.Equal(t, BishopMateNone, BodenOrDoubleBishop(p))
}

func TestSmotheredMate(t *testing.T) {
	p := mustPosition(t, "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1")
	require.True(t, p.InCheckmate())

	assert.True(t, IsSmotheredMate(p))
	assert.False(t, IsBackRankMate(p))
	assert.False(t, IsArabianMate(p))
}

func TestArabianMate(t *testing.T) {
	p := mustPosition(t, "7k/7R/5N2/8/8/8/8/6K1 b - - 0 1")
	require.True(t, p.InCheckmate())

	assert.True(t, IsArabianMate(p))
	assert.False(t, IsHookMate(p), "no pawn behind the knight")
	assert.False(t, IsAnastasiaMate(p), "rook is adjacent, not distant")
}

func TestHookMateAlongsideArabian(t *testing.T) {
	// the arabian fixture with a pawn guarding the knight: both patterns
	// hold at once
	p := mustPosition(t, "7k/7R/5N2/4P3/8/8/8/6K1 b - - 0 1")
	require.True(t, p.InCheckmate())

	assert.True(t, IsArabianMate(p))
	assert.True(t, IsHookMate(p))
}

func TestAnastasiaMate(t *testing.T) {
	p := mustPosition(t, "7k/6p1/5N2/8/8/8/8/4K2R b - - 0 1")
	require.True(t, p.InCheckmate())

	assert.True(t, IsAnastasiaMate(p))
	assert.False(t, IsBackRankMate(p), "check runs along the file, not the rank")
	assert.False(t, IsArabianMate(p))
}

func TestDovetailMate(t *testing.T) {
	// f2 pawn guards the queen, so Kxe3 is not an escape
	p := mustPosition(t, "8/8/8/2pp4/3k4/1K2Q3/5P2/8 b - - 0 1")
	require.True(t, p.InCheckmate())
	require.NotContains(t, p.LegalMovesFrom(chess.D4), chess.E3)

	assert.True(t, IsDovetailMate(p))
	assert.False(t, IsBackRankMate(p))
	assert.Equal(t, BishopMateNone, BodenOrDoubleBishop(p))
}

func TestBodenMate(t *testing.T) {
	p := mustPosition(t, "2kr4/3p4/B7/8/5B2/8/8/6K1 b - - 0 1")
	require.True(t, p.InCheckmate())

	assert.Equal(t, BishopMateBoden, BodenOrDoubleBishop(p))
}

func TestDoubleBishopMate(t *testing.T) {
	p := mustPosition(t, "7k/7p/8/8/8/1B6/1B6/6K1 b - - 0 1")
	require.True(t, p.InCheckmate())

	assert.Equal(t, BishopMateDoubleBishop, BodenOrDoubleBishop(p))
}
