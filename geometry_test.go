package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBetweenExcludesEndpoints(t *testing.T) {
	between := Between(A1, A8)
	require.False(t, between.Occupied(A1))
	require.False(t, between.Occupied(A8))
	for r := Rank2; r <= Rank7; r++ {
		require.True(t, between.Occupied(NewSquare(FileA, r)), "rank %v should be between A1 and A8", r)
	}
	require.Equal(t, 6, between.PopCount())
}

func TestBetweenNonColinearIsEmpty(t *testing.T) {
	require.Equal(t, BBEmpty, Between(A1, B3))
}

func TestRayIncludesEndpoints(t *testing.T) {
	ray := Ray(A1, A8)
	require.True(t, ray.Occupied(A1))
	require.True(t, ray.Occupied(A8))
	require.Equal(t, bbFiles[0], ray)
}

func TestRayDiagonal(t *testing.T) {
	ray := Ray(A1, H8)
	require.True(t, ray.Occupied(A1))
	require.True(t, ray.Occupied(D4))
	require.True(t, ray.Occupied(H8))
	require.False(t, ray.Occupied(A2))
}

func TestRookAttacksBlockedByOccupancy(t *testing.T) {
	occupied := BBForSquare(D4) | BBForSquare(A4) | BBForSquare(D1) | BBForSquare(D8) | BBForSquare(F4)
	attacks := rookAttacks(D4, occupied)
	require.True(t, attacks.Occupied(A4))
	require.True(t, attacks.Occupied(D1))
	require.True(t, attacks.Occupied(D8))
	require.False(t, attacks.Occupied(H4))
}

func TestBishopAttacksFromCorner(t *testing.T) {
	attacks := bishopAttacks(A1, BBEmpty)
	require.Equal(t, Ray(A1, H8)&^BBForSquare(A1), attacks)
	require.True(t, attacks.Occupied(H8))
}

func TestKnightAttacksFromCorner(t *testing.T) {
	attacks := knightAttacks[A1]
	require.Equal(t, 2, attacks.PopCount())
	require.True(t, attacks.Occupied(B3))
	require.True(t, attacks.Occupied(C2))
}

func TestPawnAttacksDiffer(t *testing.T) {
	require.True(t, pawnAttacks[colorIndex(White)][E4].Occupied(D5))
	require.True(t, pawnAttacks[colorIndex(White)][E4].Occupied(F5))
	require.True(t, pawnAttacks[colorIndex(Black)][E4].Occupied(D3))
	require.True(t, pawnAttacks[colorIndex(Black)][E4].Occupied(F3))
}
