package motif

import (
	"testing"

	chess "github.com/garlicgarrison/go-chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForkUndervaluedForker(t *testing.T) {
	// knight d5 hits the b6 rook and the f4 bishop: a knight for a rook is
	// a winning trade, so one target falls
	a := newTestAnalyzer(t)
	p := mustPosition(t, "4k3/8/1r6/3N4/5b2/8/8/4K3 w - - 0 1")

	forks := a.Forks(p)
	require.Len(t, forks, 1)

	f := forks[0]
	assert.Equal(t, chess.D5, f.Square)
	assert.Equal(t, chess.Knight, f.Piece)
	assert.Equal(t, chess.White, f.Color)
	assert.ElementsMatch(t, []chess.Square{chess.B6, chess.F4}, f.Targets)
	assert.False(t, f.IsCheckFork)
	assert.False(t, f.IsRoyalFork)
}

func TestCheckFork(t *testing.T) {
	a := newTestAnalyzer(t)
	p := mustPosition(t, "3k3r/5N2/8/8/8/8/8/K7 b - - 0 1")

	forks := a.Forks(p)
	require.Len(t, forks, 1)

	f := forks[0]
	assert.Equal(t, chess.F7, f.Square)
	assert.ElementsMatch(t, []chess.Square{chess.D8, chess.H8}, f.Targets)
	assert.True(t, f.IsCheckFork)
	assert.False(t, f.IsRoyalFork)
}

func TestRoyalFork(t *testing.T) {
	a := newTestAnalyzer(t)
	p := mustPosition(t, "4k3/2N5/q7/8/8/8/8/7K b - - 0 1")

	forks := a.Forks(p)
	require.Len(t, forks, 1)

	f := forks[0]
	assert.Equal(t, chess.C7, f.Square)
	assert.ElementsMatch(t, []chess.Square{chess.E8, chess.A6}, f.Targets)
	assert.True(t, f.IsCheckFork)
	assert.True(t, f.IsRoyalFork)
}

func TestNoForkWhenRefutedByCapture(t *testing.T) {
	// undefended queen "forking" two undefended bishops, no check: the
	// defender just takes the queen, so nothing is reported
	a := newTestAnalyzer(t)
	p := mustPosition(t, "7k/1b3b2/8/3Q4/8/8/8/4K3 w - - 0 1")

	assert.Empty(t, a.Forks(p))
}

func TestRoyalImpliesCheck(t *testing.T) {
	a := newTestAnalyzer(t)
	for _, fen := range []string{
		"4k3/8/1r6/3N4/5b2/8/8/4K3 w - - 0 1",
		"3k3r/5N2/8/8/8/8/8/K7 b - - 0 1",
		"4k3/2N5/q7/8/8/8/8/7K b - - 0 1",
	} {
		for _, f := range a.Forks(mustPosition(t, fen)) {
			require.GreaterOrEqual(t, len(f.Targets), 2)
			if f.IsRoyalFork {
				require.True(t, f.IsCheckFork)
			}
		}
	}
}
