package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewBaseBoardStartingPosition(t *testing.T) {
	b := NewBaseBoard()
	require.Equal(t, 8, b.PiecesMask(Pawn, White).PopCount())
	require.Equal(t, 8, b.PiecesMask(Pawn, Black).PopCount())
	require.Equal(t, E1, b.King(White))
	require.Equal(t, E8, b.King(Black))
	require.Equal(t, Piece{Type: Rook, Color: White}, b.PieceAt(A1))
	require.Equal(t, NoPiece, b.PieceAt(E4))
}

func TestSetPieceAtAndRemovePieceAt(t *testing.T) {
	b := NewEmptyBaseBoard()
	b.setPieceAt(D4, Piece{Type: Queen, Color: White}, false)
	require.Equal(t, Piece{Type: Queen, Color: White}, b.PieceAt(D4))
	require.True(t, b.Occupied.Occupied(D4))

	removed := b.removePieceAt(D4)
	require.Equal(t, Piece{Type: Queen, Color: White}, removed)
	require.Equal(t, NoPiece, b.PieceAt(D4))
	require.False(t, b.Occupied.Occupied(D4))
}

func TestBoardFENRoundTrip(t *testing.T) {
	b := NewBaseBoard()
	fen := b.BoardFEN(false)
	require.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", fen)

	var nb BaseBoard
	require.NoError(t, nb.SetBoardFEN(fen))
	if diff := cmp.Diff(b, &nb); diff != "" {
		t.Fatalf("round-tripped board mismatch (-want +got):\n%s", diff)
	}
}

func TestSetBoardFENRejectsConsecutiveDigits(t *testing.T) {
	var b BaseBoard
	err := b.SetBoardFEN("pppppppp/44/8/8/8/8/8/8")
	require.Error(t, err)
}

func TestSetBoardFENRejectsBadRankWidth(t *testing.T) {
	var b BaseBoard
	err := b.SetBoardFEN("pppppppp/8/8/8/8/8/8/9")
	require.Error(t, err)
}

func TestSetBoardFENPromotedMarker(t *testing.T) {
	var b BaseBoard
	require.NoError(t, b.SetBoardFEN("4k3/8/8/8/8/8/8/Q~3K3"))
	require.True(t, b.Promoted.Occupied(A1))
	require.Equal(t, Piece{Type: Queen, Color: White}, b.PieceAt(A1))
}

func TestAttackersMaskRookOnOpenFile(t *testing.T) {
	b := NewEmptyBaseBoard()
	b.setPieceAt(A1, Piece{Type: Rook, Color: White}, false)
	b.setPieceAt(A8, Piece{Type: King, Color: Black}, false)
	attackers := b.AttackersMask(White, A8, b.Occupied)
	require.Equal(t, BBForSquare(A1), attackers)
}

func TestPinMaskPinnedBishop(t *testing.T) {
	b := NewEmptyBaseBoard()
	b.setPieceAt(E1, Piece{Type: King, Color: White}, false)
	b.setPieceAt(E4, Piece{Type: Bishop, Color: White}, false)
	b.setPieceAt(E8, Piece{Type: Rook, Color: Black}, false)

	pin := b.PinMask(White, E4)
	require.Equal(t, Ray(E1, E8), pin)
}

func TestPinMaskUnpinnedPiece(t *testing.T) {
	b := NewBaseBoard()
	require.Equal(t, BBAll, b.PinMask(White, B1))
}

func TestNewBaseBoardFromSquareMapRoundTripsWithSquareMap(t *testing.T) {
	want := NewBaseBoard()
	b := NewBaseBoardFromSquareMap(want.SquareMap())
	if diff := cmp.Diff(want, b); diff != "" {
		t.Fatalf("board built from square map mismatch (-want +got):\n%s", diff)
	}
}

func TestBitboardMappingMatchesSquares(t *testing.T) {
	bb := BBForSquare(A1) | BBForSquare(D4) | BBForSquare(H8)
	mapping := bb.Mapping()
	require.Len(t, mapping, 3)
	for _, sq := range bb.Squares() {
		require.True(t, mapping[sq])
	}
}

func TestApplyMirrorIsSelfInverse(t *testing.T) {
	b := NewBaseBoard()
	b.removePieceAt(A1) // the full starting position is its own mirror image
	orig := *b
	b.ApplyMirror()
	require.False(t, b.Eq(&orig))
	b.ApplyMirror()
	require.True(t, b.Eq(&orig))
}
