package chess

import (
	"math/bits"
	"strconv"
	"strings"
)

// BaseBoard is piece placement only: no side to move, no castling rights,
// no history. It is a plain value type — copying a BaseBoard copies the
// position outright, which is what gives Board's push/pop snapshot stack
// its O(1)-allocation-per-ply simplicity (spec §9's allowed alternative to
// a delta-based make/unmake).
//
// Invariants (spec §3): OccupiedCo[White]|OccupiedCo[Black] == Occupied;
// OccupiedCo[White]&OccupiedCo[Black] == 0; the six piece-type bitboards
// are pairwise disjoint and their union is Occupied; Promoted is a subset
// of Occupied.
type BaseBoard struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings Bitboard
	OccupiedCo                                    [2]Bitboard // index via colorIndex
	Occupied                                      Bitboard
	Promoted                                       Bitboard
}

// NewBaseBoard returns the standard starting piece placement.
func NewBaseBoard() *BaseBoard {
	b := &BaseBoard{}
	b.reset()
	return b
}

// NewEmptyBaseBoard returns a BaseBoard with no pieces on it.
func NewEmptyBaseBoard() *BaseBoard {
	return &BaseBoard{}
}

// NewBaseBoardFromSquareMap builds a BaseBoard from a square-to-piece
// mapping, the board-editing counterpart to SquareMap. Useful for tests
// and callers constructing positions by hand rather than through FEN.
func NewBaseBoardFromSquareMap(squares map[Square]Piece) *BaseBoard {
	b := NewEmptyBaseBoard()
	for _, pt := range allPieceTypes {
		occupiedBy := func(color Color) map[Square]bool {
			m := map[Square]bool{}
			for sq, p := range squares {
				if p.Type == pt && p.Color == color {
					m[sq] = true
				}
			}
			return m
		}
		bb := newBitboard(occupiedBy(White)) | newBitboard(occupiedBy(Black))
		b.setPieceTypeBB(pt, bb)
	}
	for sq, p := range squares {
		b.OccupiedCo[colorIndex(p.Color)] |= BBForSquare(sq)
	}
	b.Occupied = b.OccupiedCo[colorIndex(White)] | b.OccupiedCo[colorIndex(Black)]
	return b
}

func (b *BaseBoard) reset() {
	b.Pawns = bbRanks[1] | bbRanks[6]
	b.Knights = BBForSquare(B1) | BBForSquare(G1) | BBForSquare(B8) | BBForSquare(G8)
	b.Bishops = BBForSquare(C1) | BBForSquare(F1) | BBForSquare(C8) | BBForSquare(F8)
	b.Rooks = BBForSquare(A1) | BBForSquare(H1) | BBForSquare(A8) | BBForSquare(H8)
	b.Queens = BBForSquare(D1) | BBForSquare(D8)
	b.Kings = BBForSquare(E1) | BBForSquare(E8)
	b.Promoted = BBEmpty
	b.OccupiedCo[colorIndex(White)] = bbRanks[0] | bbRanks[1]
	b.OccupiedCo[colorIndex(Black)] = bbRanks[6] | bbRanks[7]
	b.Occupied = b.OccupiedCo[colorIndex(White)] | b.OccupiedCo[colorIndex(Black)]
}

func (b *BaseBoard) clear() {
	*b = BaseBoard{}
}

// pieceTypeBB returns the bitboard for a single piece type (not
// color-restricted).
func (b *BaseBoard) pieceTypeBB(pt PieceType) Bitboard {
	switch pt {
	case Pawn:
		return b.Pawns
	case Knight:
		return b.Knights
	case Bishop:
		return b.Bishops
	case Rook:
		return b.Rooks
	case Queen:
		return b.Queens
	case King:
		return b.Kings
	}
	return BBEmpty
}

func (b *BaseBoard) setPieceTypeBB(pt PieceType, bb Bitboard) {
	switch pt {
	case Pawn:
		b.Pawns = bb
	case Knight:
		b.Knights = bb
	case Bishop:
		b.Bishops = bb
	case Rook:
		b.Rooks = bb
	case Queen:
		b.Queens = bb
	case King:
		b.Kings = bb
	}
}

// PiecesMask returns the squares holding a piece of the given type and
// color.
func (b *BaseBoard) PiecesMask(pt PieceType, color Color) Bitboard {
	return b.pieceTypeBB(pt) & b.OccupiedCo[colorIndex(color)]
}

// PieceTypeAt returns the piece type standing on sq, or NoPieceType if
// empty.
func (b *BaseBoard) PieceTypeAt(sq Square) PieceType {
	mask := BBForSquare(sq)
	if b.Occupied&mask == 0 {
		return NoPieceType
	}
	for _, pt := range allPieceTypes {
		if b.pieceTypeBB(pt)&mask != 0 {
			return pt
		}
	}
	return NoPieceType
}

// ColorAt returns the color of the piece standing on sq, and whether any
// piece is there at all.
func (b *BaseBoard) ColorAt(sq Square) (Color, bool) {
	mask := BBForSquare(sq)
	if b.OccupiedCo[colorIndex(White)]&mask != 0 {
		return White, true
	}
	if b.OccupiedCo[colorIndex(Black)]&mask != 0 {
		return Black, true
	}
	return White, false
}

// PieceAt returns the piece standing on sq, or NoPiece.
func (b *BaseBoard) PieceAt(sq Square) Piece {
	pt := b.PieceTypeAt(sq)
	if pt == NoPieceType {
		return NoPiece
	}
	color, _ := b.ColorAt(sq)
	return Piece{Type: pt, Color: color}
}

// King returns the most-significant square holding a non-promoted king of
// color, or NoSquare if that side has no such king.
func (b *BaseBoard) King(color Color) Square {
	mask := b.Kings & b.OccupiedCo[colorIndex(color)] &^ b.Promoted
	return mask.Msb()
}

// AttacksMask returns the attack set of whatever piece (if any) stands on
// sq, given the board's current occupancy; it is BBEmpty if sq is empty.
func (b *BaseBoard) AttacksMask(sq Square) Bitboard {
	mask := BBForSquare(sq)
	switch {
	case b.Pawns&mask != 0:
		color, _ := b.ColorAt(sq)
		return pawnAttacks[colorIndex(color)][sq]
	case b.Knights&mask != 0:
		return knightAttacks[sq]
	case b.Kings&mask != 0:
		return kingAttacks[sq]
	default:
		var attacks Bitboard
		if b.Bishops&mask != 0 || b.Queens&mask != 0 {
			attacks |= bishopAttacks(sq, b.Occupied)
		}
		if b.Rooks&mask != 0 || b.Queens&mask != 0 {
			attacks |= rookAttacks(sq, b.Occupied)
		}
		return attacks
	}
}

// AttackersMask returns every square-of-color piece attacking sq, given an
// explicit occupancy (so callers can probe "what would attack sq if this
// blocker weren't there").
func (b *BaseBoard) AttackersMask(color Color, sq Square, occupied Bitboard) Bitboard {
	queensAndRooks := b.Queens | b.Rooks
	queensAndBishops := b.Queens | b.Bishops

	attackers := (knightAttacks[sq] & b.Knights) |
		(kingAttacks[sq] & b.Kings) |
		(rookAttacks(sq, occupied) & queensAndRooks) |
		(bishopAttacks(sq, occupied) & queensAndBishops) |
		(pawnAttacks[colorIndex(color.Other())][sq] & b.Pawns)

	return attackers & b.OccupiedCo[colorIndex(color)]
}

// IsAttackedBy reports whether any piece of color attacks sq.
func (b *BaseBoard) IsAttackedBy(color Color, sq Square) bool {
	return b.AttackersMask(color, sq, b.Occupied) != 0
}

// PinMask returns the ray a piece on sq must stay on to avoid exposing
// color's king to check, or BBAll if sq is not pinned (or the king is
// missing). A piece "on a pin ray" may still move freely along it; callers
// intersect a candidate destination set with this mask.
func (b *BaseBoard) PinMask(color Color, sq Square) Bitboard {
	king := b.King(color)
	if king == NoSquare {
		return BBAll
	}
	squareMask := BBForSquare(sq)

	type family struct {
		table   *slideTable
		sliders Bitboard
	}
	families := [3]family{
		{fileTable, b.Rooks | b.Queens},
		{rankTable, b.Rooks | b.Queens},
		{diagTable, b.Bishops | b.Queens},
	}
	for _, fam := range families {
		rayFromKing := fam.table.attacksFor(king, 0)
		if rayFromKing&squareMask == 0 {
			continue
		}
		snipers := rayFromKing & fam.sliders & b.OccupiedCo[colorIndex(color.Other())]
		for _, sniper := range snipers.Squares() {
			if Between(sniper, king)&(b.Occupied|squareMask) == squareMask {
				return Ray(king, sniper)
			}
		}
		break
	}
	return BBAll
}

// setPieceAt places piece on sq, clearing whatever (if anything) was
// there first. promoted marks the square in the Promoted bitboard.
func (b *BaseBoard) setPieceAt(sq Square, piece Piece, promoted bool) {
	b.removePieceAt(sq)
	mask := BBForSquare(sq)
	b.setPieceTypeBB(piece.Type, b.pieceTypeBB(piece.Type)|mask)
	b.OccupiedCo[colorIndex(piece.Color)] |= mask
	b.Occupied |= mask
	if promoted {
		b.Promoted |= mask
	}
}

// removePieceAt clears sq and returns what was removed (NoPiece if the
// square was already empty).
func (b *BaseBoard) removePieceAt(sq Square) Piece {
	piece := b.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	mask := BBForSquare(sq)
	b.setPieceTypeBB(piece.Type, b.pieceTypeBB(piece.Type)&^mask)
	b.OccupiedCo[colorIndex(piece.Color)] &^= mask
	b.Occupied &^= mask
	b.Promoted &^= mask
	return piece
}

// SquareMap returns every occupied square mapped to its piece.
func (b *BaseBoard) SquareMap() map[Square]Piece {
	m := map[Square]Piece{}
	for _, sq := range b.Occupied.Squares() {
		m[sq] = b.PieceAt(sq)
	}
	return m
}

// Eq reports whether the two boards have the same piece placement: the
// eight piece-type-and-occupancy bitboards match. Promoted/ep/etc. do not
// participate, matching spec §4.2.
func (b *BaseBoard) Eq(other *BaseBoard) bool {
	return b.Pawns == other.Pawns &&
		b.Knights == other.Knights &&
		b.Bishops == other.Bishops &&
		b.Rooks == other.Rooks &&
		b.Queens == other.Queens &&
		b.Kings == other.Kings &&
		b.OccupiedCo[0] == other.OccupiedCo[0] &&
		b.OccupiedCo[1] == other.OccupiedCo[1]
}

// ApplyTransform applies a bitboard-level permutation to every piece-type
// and occupancy bitboard (and Promoted).
func (b *BaseBoard) ApplyTransform(f func(Bitboard) Bitboard) {
	b.Pawns = f(b.Pawns)
	b.Knights = f(b.Knights)
	b.Bishops = f(b.Bishops)
	b.Rooks = f(b.Rooks)
	b.Queens = f(b.Queens)
	b.Kings = f(b.Kings)
	b.Promoted = f(b.Promoted)
	b.OccupiedCo[0] = f(b.OccupiedCo[0])
	b.OccupiedCo[1] = f(b.OccupiedCo[1])
	b.Occupied = f(b.Occupied)
}

// mirrorVertical flips a bitboard over the horizontal midline (rank 1 <->
// rank 8): since squares are laid out rank-major in the low-to-high bit
// order, this is exactly a byte-order reversal of the 64-bit word.
func mirrorVertical(bb Bitboard) Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(bb)))
}

// ApplyMirror flips the board vertically and swaps white/black
// occupancy, turning "white to move" geometry into "black to move"
// geometry with colors re-labeled.
func (b *BaseBoard) ApplyMirror() {
	b.ApplyTransform(mirrorVertical)
	b.OccupiedCo[0], b.OccupiedCo[1] = b.OccupiedCo[1], b.OccupiedCo[0]
}

// BoardFEN serializes the piece-placement field of a FEN string. When
// promoted is true, pieces in the Promoted mask get a trailing "~"
// (allows FEN to round-trip which pieces started as pawns).
func (b *BaseBoard) BoardFEN(promoted bool) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := NewSquare(File(f), Rank(r))
			piece := b.PieceAt(sq)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.symbol())
			if promoted && b.Promoted.Occupied(sq) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// SetBoardFEN parses the piece-placement field of a FEN string, replacing
// the board's contents entirely. It rejects ill-formed input: two
// consecutive digits, a rank that doesn't sum to 8 files, or any
// character that isn't a digit, a piece letter, '/', or a "~" promotion
// marker immediately following a piece letter.
func (b *BaseBoard) SetBoardFEN(fen string) error {
	fen = strings.TrimSpace(fen)
	if strings.ContainsAny(fen, " \t\n") {
		return &ParseError{Kind: "board-fen", Input: fen, Reason: "contains whitespace"}
	}
	rows := strings.Split(fen, "/")
	if len(rows) != 8 {
		return &ParseError{Kind: "board-fen", Input: fen, Reason: "expected 8 ranks separated by '/'"}
	}

	type placement struct {
		sq     Square
		piece  Piece
		promo  bool
	}
	var placements []placement

	for ri, row := range rows {
		rank := Rank(7 - ri)
		file := 0
		previousWasDigit := false
		previousWasPiece := false
		for i := 0; i < len(row); i++ {
			c := row[i]
			switch {
			case c >= '1' && c <= '8':
				if previousWasDigit {
					return &ParseError{Kind: "board-fen", Input: fen, Reason: "two consecutive digits in a rank"}
				}
				file += int(c - '0')
				previousWasDigit = true
				previousWasPiece = false
			case c == '~':
				if !previousWasPiece {
					return &ParseError{Kind: "board-fen", Input: fen, Reason: "'~' must follow a piece letter"}
				}
				placements[len(placements)-1].promo = true
				previousWasPiece = false
			default:
				piece, ok := pieceFromSymbol(c)
				if !ok {
					return &ParseError{Kind: "board-fen", Input: fen, Reason: "unknown character '" + string(c) + "'"}
				}
				if file > 7 {
					return &ParseError{Kind: "board-fen", Input: fen, Reason: "rank wider than 8 files"}
				}
				placements = append(placements, placement{sq: NewSquare(File(file), rank), piece: piece})
				file++
				previousWasDigit = false
				previousWasPiece = true
			}
		}
		if file != 8 {
			return &ParseError{Kind: "board-fen", Input: fen, Reason: "rank does not sum to 8 files"}
		}
	}

	b.clear()
	for _, p := range placements {
		b.setPieceAt(p.sq, p.piece, p.promo)
	}
	return nil
}
