package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashStableAcrossCalls(t *testing.T) {
	b := NewBoard()
	require.Equal(t, b.Hash(), b.Hash())
}

func TestHashChangesAfterMove(t *testing.T) {
	b := NewBoard()
	h0 := b.Hash()
	b.PushSAN("e4")
	require.NotEqual(t, h0, b.Hash())
}

func TestHashRestoredAfterPop(t *testing.T) {
	b := NewBoard()
	h0 := b.Hash()
	b.PushSAN("Nf3")
	b.Pop()
	require.Equal(t, h0, b.Hash())
}

func TestHashDiffersByCastlingRights(t *testing.T) {
	withRights, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	withoutRights, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/R3K2R w - - 0 1")
	require.NoError(t, err)
	require.NotEqual(t, withRights.Hash(), withoutRights.Hash())
}

func TestHashDiffersBySideToMove(t *testing.T) {
	white, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	black, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	require.NotEqual(t, white.Hash(), black.Hash())
}
