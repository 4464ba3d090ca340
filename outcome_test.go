package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsCheckmateFoolsMate(t *testing.T) {
	b := NewBoard()
	for _, san := range []string{"f3", "e5", "g4", "Qh4"} {
		_, err := b.PushSAN(san)
		require.NoError(t, err)
	}
	require.True(t, b.IsCheckmate())
	require.True(t, b.IsCheck())
}

func TestIsStalemate(t *testing.T) {
	b, err := NewBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.False(t, b.IsCheck())
	require.True(t, b.IsStalemate())
	outcome := b.Outcome(false)
	require.NotNil(t, outcome)
	require.Equal(t, Stalemate, outcome.Termination)
	require.Nil(t, outcome.Winner)
}

func TestInsufficientMaterialBareKings(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.IsInsufficientMaterial())
}

func TestInsufficientMaterialKingAndBishopVsKing(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/3BK3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.IsInsufficientMaterial())
}

func TestSufficientMaterialTwoBishopsOppositeColors(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	require.NoError(t, err)
	require.False(t, b.HasInsufficientMaterial(White))
}

func TestIsSeventyFiveMoves(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 150 80")
	require.NoError(t, err)
	require.True(t, b.IsSeventyFiveMoves())
}

func TestStatusDetectsMissingKing(t *testing.T) {
	b, err := NewBoardFromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	require.NotEqual(t, StatusValid, b.Status()&StatusNoBlackKing)
	require.True(t, b.Status()&StatusNoBlackKing != 0)
}

func TestStatusValidForStartingPosition(t *testing.T) {
	b := NewBoard()
	require.Equal(t, StatusValid, b.Status())
}

func TestStatusDetectsTooManyPawns(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/pppppppp/pppppppp/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.Status()&StatusTooManyBlackPawns != 0)
}

func TestStatusDetectsTwoCheckersCollinearThroughKing(t *testing.T) {
	// Black king on e4, white rooks on e8 and e1: both give check along
	// the e-file from opposite sides, so the two checkers lie on one line
	// through the king, which is the impossible geometry: no legal
	// sequence of moves leaves a king skewered by two checkers on one line.
	b, err := NewBoardFromFEN("4R3/8/8/8/4k3/8/8/K3R3 b - - 0 1")
	require.NoError(t, err)
	require.True(t, b.Status()&StatusImpossibleCheck != 0)
}

// TestStatusDetectsImpossibleCheckViaEnPassantSquare covers the third
// impossible-check branch: a single checker whose ray to a structurally
// valid en-passant square passes through the side-to-move's king. The
// en-passant square can only be set if a pawn just double-pushed across
// it, so the checker's line running through both the king and that
// square describes a geometry no legal game can reach.
func TestStatusDetectsImpossibleCheckViaEnPassantSquare(t *testing.T) {
	b, err := NewBoardFromFEN("3R4/8/3k4/8/3P4/8/8/K7 b - d3 0 1")
	require.NoError(t, err)
	require.True(t, b.IsCheck())
	require.True(t, b.Status()&StatusImpossibleCheck != 0)
}

func TestResultStrings(t *testing.T) {
	white := White
	black := Black
	require.Equal(t, "1-0", Outcome{Termination: Checkmate, Winner: &white}.Result())
	require.Equal(t, "0-1", Outcome{Termination: Checkmate, Winner: &black}.Result())
	require.Equal(t, "1/2-1/2", Outcome{Termination: Stalemate}.Result())
}
