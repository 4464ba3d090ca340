package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// perft counts leaf nodes at depth plies from the current position,
// the standard move-generator correctness check: known node counts for
// the starting position catch missing/duplicated/illegal moves that a
// spot-check of individual positions would miss.
func perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.Push(m)
		nodes += perft(b, depth-1)
		b.Pop()
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("perft depth 5 is slow under -short")
	}
	want := []uint64{1, 20, 400, 8902, 197281, 4865609}
	b := NewBoard()
	for depth, expected := range want {
		require.Equal(t, expected, perft(b, depth), "perft(%d) from:\n%s", depth, b.Occupied.Draw())
	}
}

func TestPerftStartingPositionShallow(t *testing.T) {
	b := NewBoard()
	require.Equal(t, uint64(20), perft(b, 1))
	require.Equal(t, uint64(400), perft(b, 2))
}

func TestGenerateLegalMovesNoKingReturnsAllPseudoLegal(t *testing.T) {
	b := NewBoard(WithEmpty())
	b.SetPieceAt(E4, Piece{Type: Rook, Color: White})
	moves := b.LegalMoves()
	require.Len(t, moves, 14) // a rook alone on e4 has 14 destinations
}

func TestGenerateEvasionsOnlyBlockOrCaptureOrFlee(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/4r3/8/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.IsCheck())
	for _, m := range b.LegalMoves() {
		require.True(t, m.From == E1, "only the king may move: got %v", m)
	}
}

// TestEnPassantEvasionCapturesChecker covers the edge case where the sole
// checking piece is a pawn that just double-pushed: the en-passant
// capture of that pawn is a legal evasion even though the en-passant
// destination square itself lies outside Between(king, checker).
func TestEnPassantEvasionCapturesChecker(t *testing.T) {
	b, err := NewBoardFromFEN("k7/8/8/3Pp3/3K4/8/8/8 w - e6 0 1")
	require.NoError(t, err)
	require.True(t, b.IsCheck())

	found := false
	for _, m := range b.LegalMoves() {
		if m.From == D5 && m.To == E6 {
			found = true
		}
	}
	require.True(t, found, "en passant capture of the checking pawn should be a legal evasion")
}

func TestIsPseudoLegalRejectsFriendlyCapture(t *testing.T) {
	b := NewBoard()
	require.False(t, b.IsPseudoLegal(Move{From: A1, To: A2}))
}

func TestMoveGeneratorNext(t *testing.T) {
	b := NewBoard()
	gen := b.NewLegalMoveGenerator(BBAll, BBAll)
	require.Equal(t, 20, gen.Len())
	count := 0
	for {
		_, ok := gen.Next()
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, 20, count)
	require.Equal(t, 0, gen.Len())
}

func TestGenerateLegalMovesSortedDeterministically(t *testing.T) {
	b := NewBoard()
	first := b.LegalMoves()
	second := b.LegalMoves()
	require.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		require.True(t, prev.From < cur.From || (prev.From == cur.From && prev.To <= cur.To))
	}
}
