package chess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBBForSquare(t *testing.T) {
	require.Equal(t, Bitboard(1), BBForSquare(A1))
	require.Equal(t, Bitboard(1)<<63, BBForSquare(H8))
}

func TestBitboardPopCountLsbMsb(t *testing.T) {
	bb := BBForSquare(A1) | BBForSquare(D4) | BBForSquare(H8)
	require.Equal(t, 3, bb.PopCount())
	require.Equal(t, A1, bb.Lsb())
	require.Equal(t, H8, bb.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	bb := BBForSquare(B2) | BBForSquare(C3)
	sq, rest := bb.PopLsb()
	require.Equal(t, B2, sq)
	require.Equal(t, BBForSquare(C3), rest)
}

func TestBitboardSquares(t *testing.T) {
	bb := BBForSquare(A1) | BBForSquare(E4) | BBForSquare(H8)
	require.Equal(t, []Square{A1, E4, H8}, bb.Squares())
}

func TestBitboardReverse(t *testing.T) {
	require.Equal(t, BBForSquare(H8), BBForSquare(A1).Reverse())
	require.Equal(t, BBAll, BBAll.Reverse())
}

func TestCarryRippler(t *testing.T) {
	mask := BBForSquare(A1) | BBForSquare(B1) | BBForSquare(C1)
	seen := map[Bitboard]bool{}
	subset := Bitboard(0)
	for {
		seen[subset] = true
		subset = subset.CarryRippler(mask)
		if subset == 0 {
			break
		}
	}
	require.Len(t, seen, 8) // 2^3 subsets of a 3-bit mask
	require.True(t, seen[mask])
	require.True(t, seen[BBEmpty])
}

func TestBitboardString(t *testing.T) {
	require.Len(t, BBEmpty.String(), 64)
	s := BBForSquare(A1).String()
	require.Len(t, s, 64)
	require.Equal(t, byte('1'), s[len(s)-1])
}

func TestBitboardDraw(t *testing.T) {
	bb := BBForSquare(A1) | BBForSquare(H8)
	drawing := bb.Draw()
	require.Contains(t, drawing, "A B C D E F G H")
	require.True(t, strings.Count(drawing, "1 ") >= 2, "expected both set squares to render as 1s:\n%s", drawing)
}

func TestBitboardAny(t *testing.T) {
	require.False(t, BBEmpty.Any())
	require.True(t, BBForSquare(A1).Any())
}
