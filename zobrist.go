package chess

import "math/rand/v2"

// zobrist.go hashes a position into a single uint64, adapted from the
// pack's Zobrist scheme for callers that want a cheap transposition-table
// key. It is not used internally by IsRepetition/CanClaimThreefoldRepetition,
// which compare full transposition keys; a caller using Hash for its own
// table should still confirm a hit against the full position before
// trusting it, the same way this package's own repetition detector does.

var (
	zobristPieceKeys    [2][6][64]uint64
	zobristEpKeys       [64]uint64
	zobristCastlingKeys [16]uint64
	zobristColorKey     uint64
)

func init() {
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieceKeys[c][pt][sq] = rand.Uint64()
			}
		}
	}
	for sq := 0; sq < 64; sq++ {
		zobristEpKeys[sq] = rand.Uint64()
	}
	for i := 0; i < 16; i++ {
		zobristCastlingKeys[i] = rand.Uint64()
	}
	zobristColorKey = rand.Uint64()
}

// castlingZobristIndex packs the four corner-rook rights into a 4-bit
// index: bit0=white kingside, bit1=white queenside, bit2=black kingside,
// bit3=black queenside.
func castlingZobristIndex(rights Bitboard) int {
	idx := 0
	if rights&BBForSquare(H1) != 0 {
		idx |= 1
	}
	if rights&BBForSquare(A1) != 0 {
		idx |= 2
	}
	if rights&BBForSquare(H8) != 0 {
		idx |= 4
	}
	if rights&BBForSquare(A8) != 0 {
		idx |= 8
	}
	return idx
}

// Hash returns a Zobrist hash of the position: piece placement, side to
// move, effective castling rights, and the en-passant square (only when
// actually capturable, matching the transposition key's semantics).
func (b *Board) Hash() uint64 {
	var key uint64
	for _, pt := range allPieceTypes {
		for _, color := range [2]Color{White, Black} {
			bb := b.PiecesMask(pt, color)
			for _, sq := range bb.Squares() {
				key ^= zobristPieceKeys[colorIndex(color)][pt-1][sq]
			}
		}
	}
	if b.HasLegalEnPassant() {
		key ^= zobristEpKeys[b.EpSquare]
	}
	key ^= zobristCastlingKeys[castlingZobristIndex(b.cleanCastlingRights())]
	if b.Turn == Black {
		key ^= zobristColorKey
	}
	return key
}
