package motif

import (
	"testing"

	chess "github.com/garlicgarrison/go-chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXRayThroughOwnPiece(t *testing.T) {
	// rook e1 looks through the e4 knight at the black queen on e8
	a := newTestAnalyzer(t)
	p := mustPosition(t, "k3q3/8/8/8/4N3/8/8/4R1K1 w - - 0 1")

	xrays := a.XRays(p)
	require.Len(t, xrays, 1)

	x := xrays[0]
	assert.Equal(t, chess.E1, x.Slider)
	assert.Equal(t, chess.Rook, x.SliderPiece)
	assert.Equal(t, chess.White, x.Color)
	assert.Equal(t, chess.E4, x.Through)
	assert.Equal(t, chess.E8, x.Target)
	assert.Equal(t, chess.Queen, x.TargetPiece)
}

func TestXRayRejectsSameColorTarget(t *testing.T) {
	// same geometry with a white queen behind the knight: defense, not attack
	a := newTestAnalyzer(t)
	p := mustPosition(t, "k3Q3/8/8/8/4N3/8/8/4R1K1 w - - 0 1")

	assert.Empty(t, a.XRays(p))
}

func TestValidXRayGoesStale(t *testing.T) {
	a := newTestAnalyzer(t)
	p := mustPosition(t, "k3q3/8/8/8/4N3/8/8/4R1K1 w - - 0 1")

	xrays := a.XRays(p)
	require.Len(t, xrays, 1)
	require.True(t, ValidXRay(p, chess.E1, chess.E4, chess.E8))

	m := Motif{Kind: KindXRay, XRay: &xrays[0]}
	assert.True(t, m.Valid(p))

	// the target evaporates: the recorded triple must stop validating
	gone := mustPosition(t, "k7/8/8/8/4N3/8/8/4R1K1 w - - 0 1")
	assert.False(t, ValidXRay(gone, chess.E1, chess.E4, chess.E8))
	assert.False(t, m.Valid(gone))
}

func TestValidXRayRejectsBlockedRay(t *testing.T) {
	// a second blocker between the through piece and the target kills the ray
	a := newTestAnalyzer(t)
	p := mustPosition(t, "k3q3/8/4P3/8/4N3/8/8/4R1K1 w - - 0 1")

	assert.False(t, ValidXRay(p, chess.E1, chess.E4, chess.E8))
	for _, x := range a.XRays(p) {
		assert.NotEqual(t, chess.E8, x.Target)
	}
}
