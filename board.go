package chess

// boardState is the full snapshot Push records before mutating a Board,
// and Pop restores verbatim. BaseBoard is a plain value (no pointers or
// slices), so copying it here is copying the position outright.
type boardState struct {
	board          BaseBoard
	turn           Color
	castlingRights Bitboard
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int
}

// Board is a complete chess position: piece placement (embedded
// BaseBoard) plus side to move, castling rights, en-passant target,
// move clocks, and a reversible move-application history.
//
// CastlingRights is a bitboard of rook squares, not a "KQkq" flag set:
// the square that is set is the rook the right belongs to, which is what
// lets the representation express castling through an arbitrary rook
// file. The default (non-Chess960) construction and cleanCastlingRights
// restrict generation to the corner rooks.
type Board struct {
	BaseBoard
	Turn           Color
	CastlingRights Bitboard
	EpSquare       Square
	HalfmoveClock  int
	FullmoveNumber int

	moveStack []Move
	stack     []boardState
}

// BoardOption configures a freshly constructed Board. Every option must
// be infallible: anything that can fail (FEN parsing) has its own
// constructor that returns an error instead.
type BoardOption func(*Board)

// WithEmpty starts the board with no pieces and no castling rights,
// instead of the standard game's starting position.
func WithEmpty() BoardOption {
	return func(b *Board) {
		b.BaseBoard = *NewEmptyBaseBoard()
		b.CastlingRights = BBEmpty
	}
}

var startingCastlingRights = BBForSquare(A1) | BBForSquare(H1) | BBForSquare(A8) | BBForSquare(H8)

// NewBoard returns a Board in the standard starting position, as modified
// by opts.
func NewBoard(opts ...BoardOption) *Board {
	b := &Board{
		BaseBoard:      *NewBaseBoard(),
		Turn:           White,
		CastlingRights: startingCastlingRights,
		EpSquare:       NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Reset restores the standard starting position and discards all history.
func (b *Board) Reset() {
	b.BaseBoard = *NewBaseBoard()
	b.Turn = White
	b.CastlingRights = startingCastlingRights
	b.EpSquare = NoSquare
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
	b.clearStacks()
}

// ClearBoard empties the board (no pieces, no castling rights) and
// discards all history.
func (b *Board) ClearBoard() {
	b.BaseBoard = *NewEmptyBaseBoard()
	b.CastlingRights = BBEmpty
	b.EpSquare = NoSquare
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
	b.clearStacks()
}

func (b *Board) clearStacks() {
	b.moveStack = nil
	b.stack = nil
}

// SetPieceAt places piece on sq, clearing whatever was there, and
// discards move history: an explicit edit makes prior history meaningless
// for pop/repetition purposes.
func (b *Board) SetPieceAt(sq Square, piece Piece) {
	b.BaseBoard.setPieceAt(sq, piece, false)
	b.clearStacks()
}

// RemovePieceAt clears sq, returns what was there, and discards move
// history.
func (b *Board) RemovePieceAt(sq Square) Piece {
	p := b.BaseBoard.removePieceAt(sq)
	b.clearStacks()
	return p
}

// SetBoardFEN replaces piece placement from a FEN board field and
// discards move history.
func (b *Board) SetBoardFEN(fen string) error {
	if err := b.BaseBoard.SetBoardFEN(fen); err != nil {
		return err
	}
	b.clearStacks()
	return nil
}

// Copy returns an independent deep copy: mutating the result never
// affects b.
func (b *Board) Copy() *Board {
	nb := *b
	nb.moveStack = append([]Move(nil), b.moveStack...)
	nb.stack = append([]boardState(nil), b.stack...)
	return &nb
}

// Eq compares position state: piece placement, side to move, castling
// rights, en-passant square, and both move clocks. Move history does not
// participate.
func (b *Board) Eq(other *Board) bool {
	return b.BaseBoard.Eq(&other.BaseBoard) &&
		b.Turn == other.Turn &&
		b.CastlingRights == other.CastlingRights &&
		b.EpSquare == other.EpSquare &&
		b.HalfmoveClock == other.HalfmoveClock &&
		b.FullmoveNumber == other.FullmoveNumber
}

// Ply returns the number of moves pushed (the length of the move stack).
func (b *Board) Ply() int {
	return len(b.moveStack)
}

// MoveStack returns a copy of the moves pushed so far, oldest first.
func (b *Board) MoveStack() []Move {
	return append([]Move(nil), b.moveStack...)
}

// PeekMove returns the most recently pushed move, if any.
func (b *Board) PeekMove() (Move, bool) {
	if len(b.moveStack) == 0 {
		return Move{}, false
	}
	return b.moveStack[len(b.moveStack)-1], true
}

// cleanCastlingRights filters CastlingRights down to rights that are
// actually exercisable: a rook of the right color still standing on the
// recorded square, on its back rank, with that color's non-promoted king
// still on its home square, restricted to the corner files (the
// non-Chess960 default).
func (b *Board) cleanCastlingRights() Bitboard {
	castling := b.CastlingRights & b.Rooks

	whiteCastling := castling & bbRanks[0] & b.OccupiedCo[colorIndex(White)]
	blackCastling := castling & bbRanks[7] & b.OccupiedCo[colorIndex(Black)]

	whiteCastling &= BBForSquare(A1) | BBForSquare(H1)
	blackCastling &= BBForSquare(A8) | BBForSquare(H8)

	if b.OccupiedCo[colorIndex(White)]&b.Kings&^b.Promoted&BBForSquare(E1) == 0 {
		whiteCastling = BBEmpty
	}
	if b.OccupiedCo[colorIndex(Black)]&b.Kings&^b.Promoted&BBForSquare(E8) == 0 {
		blackCastling = BBEmpty
	}

	return whiteCastling | blackCastling
}

// HasKingsideCastlingRights reports whether color can still castle
// kingside (the H-file rook's right survives cleanCastlingRights).
func (b *Board) HasKingsideCastlingRights(color Color) bool {
	rights := b.cleanCastlingRights()
	if color == White {
		return rights&BBForSquare(H1) != 0
	}
	return rights&BBForSquare(H8) != 0
}

// HasQueensideCastlingRights reports whether color can still castle
// queenside (the A-file rook's right survives cleanCastlingRights).
func (b *Board) HasQueensideCastlingRights(color Color) bool {
	rights := b.cleanCastlingRights()
	if color == White {
		return rights&BBForSquare(A1) != 0
	}
	return rights&BBForSquare(A8) != 0
}

// Checkers returns the squares of every enemy piece currently giving
// check to the side to move's king (empty if there is no king or no
// check).
func (b *Board) Checkers() Bitboard {
	king := b.King(b.Turn)
	if king == NoSquare {
		return BBEmpty
	}
	return b.AttackersMask(b.Turn.Other(), king, b.Occupied)
}

// IsCheck reports whether the side to move is in check.
func (b *Board) IsCheck() bool {
	return b.Checkers().Any()
}

// isZeroing reports whether m resets the halfmove clock: a pawn move
// (checked via the from/to squares touching the pawn bitboard, which also
// catches promotions) or a move onto a square held by the opponent. A
// castling move's "capture" of its own rook does not count, since the
// rook's square never belongs to the opponent's occupancy.
func (b *Board) isZeroing(m Move) bool {
	touched := BBForSquare(m.From) | BBForSquare(m.To)
	return touched&b.Pawns != 0 || touched&b.OccupiedCo[colorIndex(b.Turn.Other())] != 0
}

// isCastling reports whether m is a castling move under the encoding
// convention: the king moves onto a square occupied by a piece of its own
// color (the rook it is castling with).
func (b *Board) isCastling(m Move) bool {
	if b.PieceTypeAt(m.From) != King {
		return false
	}
	diff := int(m.From.File()) - int(m.To.File())
	if abs(diff) < 2 {
		return false
	}
	color, ok := b.ColorAt(m.To)
	return ok && color == b.Turn
}

// Push applies m, recording a full snapshot so Pop can undo it exactly.
// m must be pseudo-legal for the current position. Push panics with an
// *IllegalMoveError (wrapping ErrIllegalPush) only when m's from-square
// is empty; any other move that is not pseudo-legal is applied without
// being checked (callers needing safety must filter through the
// legal-move generator first, per the package's error-handling policy).
func (b *Board) Push(m Move) {
	snapshot := boardState{
		board:          b.BaseBoard,
		turn:           b.Turn,
		castlingRights: b.CastlingRights,
		epSquare:       b.EpSquare,
		halfmoveClock:  b.HalfmoveClock,
		fullmoveNumber: b.FullmoveNumber,
	}
	b.stack = append(b.stack, snapshot)
	b.moveStack = append(b.moveStack, m)

	b.CastlingRights = b.cleanCastlingRights()
	epSquareBefore := b.EpSquare
	b.EpSquare = NoSquare

	b.HalfmoveClock++
	if b.Turn == Black {
		b.FullmoveNumber++
	}

	if m.IsNull() {
		b.Turn = b.Turn.Other()
		return
	}

	mover := b.Turn
	zeroing := b.isZeroing(m)
	castling := b.isCastling(m)

	wasPromoted := b.Promoted.Occupied(m.From)
	piece := b.removePieceAt(m.From)
	if piece == NoPiece {
		logger.Debug(m.String() + ": Push of a move with no piece on its from-square")
		panic(&IllegalMoveError{Move: m})
	}

	capturedPiece := NoPiece
	capturedWasPromoted := false
	if !castling {
		capturedPiece = b.PieceAt(m.To)
		capturedWasPromoted = b.Promoted.Occupied(m.To)
	}

	if zeroing {
		b.HalfmoveClock = 0
	}

	fromBB := BBForSquare(m.From)
	toBB := BBForSquare(m.To)
	b.CastlingRights &^= fromBB | toBB
	if piece.Type == King && !wasPromoted {
		if mover == White {
			b.CastlingRights &^= bbRanks[0]
		} else {
			b.CastlingRights &^= bbRanks[7]
		}
	}
	if capturedPiece.Type == King && !capturedWasPromoted {
		if capturedPiece.Color == White {
			b.CastlingRights &^= bbRanks[0]
		} else {
			b.CastlingRights &^= bbRanks[7]
		}
	}

	if piece.Type == Pawn {
		diff := int(m.To) - int(m.From)
		switch diff {
		case 16, -16:
			b.EpSquare = Square(int(m.From) + diff/2)
		default:
			if (diff == 7 || diff == 9 || diff == -7 || diff == -9) &&
				epSquareBefore != NoSquare && m.To == epSquareBefore && capturedPiece == NoPiece {
				var capSq Square
				if mover == White {
					capSq = epSquareBefore - 8
				} else {
					capSq = epSquareBefore + 8
				}
				b.removePieceAt(capSq)
			}
		}
	}

	promoted := wasPromoted
	if m.Promotion != NoPieceType {
		piece.Type = m.Promotion
		promoted = true
	}

	if castling {
		b.removePieceAt(m.To) // the castling rook
		rank := m.From.Rank()
		aSide := m.To.File() < m.From.File()
		var kingDest, rookDest Square
		if aSide {
			kingDest, rookDest = NewSquare(FileC, rank), NewSquare(FileD, rank)
		} else {
			kingDest, rookDest = NewSquare(FileG, rank), NewSquare(FileF, rank)
		}
		b.setPieceAt(kingDest, Piece{Type: King, Color: mover}, false)
		b.setPieceAt(rookDest, Piece{Type: Rook, Color: mover}, false)
	} else {
		b.removePieceAt(m.To)
		b.setPieceAt(m.To, piece, promoted)
	}

	b.Turn = b.Turn.Other()
}

// Pop undoes the most recent Push, restoring the prior snapshot exactly,
// and returns the move that was undone. It panics wrapping ErrEmptyStack
// if there is no history.
func (b *Board) Pop() Move {
	if len(b.stack) == 0 {
		panic(ErrEmptyStack)
	}
	n := len(b.stack)
	st := b.stack[n-1]
	b.stack = b.stack[:n-1]

	mv := b.moveStack[len(b.moveStack)-1]
	b.moveStack = b.moveStack[:len(b.moveStack)-1]

	b.BaseBoard = st.board
	b.Turn = st.turn
	b.CastlingRights = st.castlingRights
	b.EpSquare = st.epSquare
	b.HalfmoveClock = st.halfmoveClock
	b.FullmoveNumber = st.fullmoveNumber
	return mv
}
