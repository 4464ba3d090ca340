package chess

import "strconv"

// Square is an integer 0..63 identifying a board square. A1 is the least
// significant, H8 the most significant: A1=0, H1=7, A8=56, H8=63.
type Square int8

// NoSquare represents the absence of a square (e.g. no en passant target).
const NoSquare Square = -1

const numOfSquaresInBoard = 64
const numOfSquaresInRow = 8

// File is the column of a square, 0 (A) through 7 (H).
type File int8

// Rank is the row of a square, 0 (rank 1) through 7 (rank 8).
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewSquare builds a Square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// File returns the square's file.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// Mirror returns the square reflected across the board's horizontal
// midline (rank 1 <-> rank 8), i.e. sq XOR 0x38.
func (sq Square) Mirror() Square {
	return sq ^ 0x38
}

func (f File) String() string {
	return string(rune('a' + int(f)))
}

func (r Rank) String() string {
	return strconv.Itoa(int(r) + 1)
}

// String returns the algebraic name of the square, e.g. "e4", or "-" for
// NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

var allSquares = func() [64]Square {
	var out [64]Square
	for i := range out {
		out[i] = Square(i)
	}
	return out
}()

// Squares returns all 64 squares in A1..H8 bitboard order.
func Squares() [64]Square {
	return allSquares
}

var strToSquareMap = func() map[string]Square {
	m := make(map[string]Square, 64)
	for _, sq := range allSquares {
		m[sq.String()] = sq
	}
	return m
}()

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, bool) {
	sq, ok := strToSquareMap[s]
	return sq, ok
}

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
