package chess

// outcome.go implements the game-state classifiers: check/checkmate/
// stalemate, insufficient material, move-count draws, repetition
// detection, position validity, and overall Outcome resolution.

var lightSquares = func() Bitboard {
	var bb Bitboard
	for _, sq := range allSquares {
		if (int(sq.File())+int(sq.Rank()))%2 == 1 {
			bb |= BBForSquare(sq)
		}
	}
	return bb
}()

var darkSquares = BBAll &^ lightSquares

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && len(b.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move is not in check but has no
// legal moves.
func (b *Board) IsStalemate() bool {
	return !b.IsCheck() && len(b.LegalMoves()) == 0
}

// HasInsufficientMaterial reports whether color's own material is
// insufficient to ever force checkmate, given what the opponent has on
// the board: bare king, king+single knight against a bare king or a king
// with only queens, or king+bishops where every bishop on the board (of
// either color) stands on one square color and the board has no pawns or
// knights.
func (b *Board) HasInsufficientMaterial(color Color) bool {
	if b.PiecesMask(Pawn, color) != 0 || b.PiecesMask(Rook, color) != 0 || b.PiecesMask(Queen, color) != 0 {
		return false
	}
	knights := b.PiecesMask(Knight, color)
	bishops := b.PiecesMask(Bishop, color)

	if knights != 0 {
		if bishops != 0 || knights.PopCount() > 1 {
			return false
		}
		opponent := color.Other()
		dangerous := b.OccupiedCo[colorIndex(opponent)] &^ b.Kings &^ b.Queens
		return dangerous == 0
	}
	if bishops != 0 {
		sameColor := b.Bishops&lightSquares == 0 || b.Bishops&darkSquares == 0
		return sameColor && b.Pawns == 0 && b.Knights == 0
	}
	return true
}

// IsInsufficientMaterial reports whether neither side has enough material
// to force checkmate.
func (b *Board) IsInsufficientMaterial() bool {
	return b.HasInsufficientMaterial(White) && b.HasInsufficientMaterial(Black)
}

// IsSeventyFiveMoves reports whether the 75-move rule fires
// automatically: halfmove clock at least 150, and the side to move still
// has a legal move (the rule does not preempt a mate already on the
// board).
func (b *Board) IsSeventyFiveMoves() bool {
	return b.HalfmoveClock >= 150 && len(b.LegalMoves()) > 0
}

// IsFiftyMoves reports whether the 50-move rule is claimable: halfmove
// clock at least 100, with a legal move available.
func (b *Board) IsFiftyMoves() bool {
	return b.HalfmoveClock >= 100 && len(b.LegalMoves()) > 0
}

// transpositionKey identifies positions equivalent for repetition
// purposes: piece placement, side to move, effective castling rights,
// and the en-passant square only when it is actually capturable.
type transpositionKey struct {
	pawns, knights, bishops, rooks, queens, kings Bitboard
	occWhite, occBlack                            Bitboard
	turn                                          Color
	castling                                      Bitboard
	epSquare                                      Square
}

func (b *Board) transpositionKey() transpositionKey {
	ep := NoSquare
	if b.HasLegalEnPassant() {
		ep = b.EpSquare
	}
	return transpositionKey{
		pawns: b.Pawns, knights: b.Knights, bishops: b.Bishops,
		rooks: b.Rooks, queens: b.Queens, kings: b.Kings,
		occWhite: b.OccupiedCo[colorIndex(White)], occBlack: b.OccupiedCo[colorIndex(Black)],
		turn:      b.Turn,
		castling:  b.cleanCastlingRights(),
		epSquare:  ep,
	}
}

// IsRepetition reports whether the current position has occurred at
// least n times in the game so far (counting the current occurrence). It
// walks history backward via Pop/Push, restoring the board exactly
// before returning. The walk always stops early after crossing a
// zeroing move, since no position before a pawn move or capture can ever
// repeat a placement identical to one after it; this is purely a speed
// optimization; the equality test against every key visited is what
// guarantees correctness.
func (b *Board) IsRepetition(n int) bool {
	if n < 1 {
		return true
	}
	target := b.transpositionKey()
	count := 1

	var undone []Move
	for len(b.stack) > 0 {
		mv := b.moveStack[len(b.moveStack)-1]
		b.Pop()
		zeroing := b.isZeroing(mv)
		undone = append(undone, mv)

		if b.transpositionKey() == target {
			count++
			if count >= n {
				break
			}
		}
		if zeroing {
			break
		}
	}
	for i := len(undone) - 1; i >= 0; i-- {
		b.Push(undone[i])
	}
	return count >= n
}

// IsFivefoldRepetition reports whether the current position has occurred
// five times (automatic draw, no claim needed).
func (b *Board) IsFivefoldRepetition() bool {
	return b.IsRepetition(5)
}

// CanClaimThreefoldRepetition reports whether the current position is
// already a threefold repetition, or whether some legal move would make
// it one (a player may claim the draw on the move that creates the
// repetition, not only after).
func (b *Board) CanClaimThreefoldRepetition() bool {
	if b.IsRepetition(3) {
		return true
	}
	for _, m := range b.LegalMoves() {
		b.Push(m)
		rep := b.IsRepetition(3)
		b.Pop()
		if rep {
			return true
		}
	}
	return false
}

// Termination identifies why a game ended.
type Termination int

const (
	NoTermination Termination = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	SeventyfiveMoves
	FivefoldRepetition
	FiftyMoves
	ThreefoldRepetition
)

// Outcome is the result of a finished (or claimable-draw) game.
type Outcome struct {
	Termination Termination
	Winner      *Color // nil for a draw
}

// Result returns the PGN-style result string: "1-0", "0-1", or "1/2-1/2".
func (o Outcome) Result() string {
	if o.Winner == nil {
		return "1/2-1/2"
	}
	if *o.Winner == White {
		return "1-0"
	}
	return "0-1"
}

// Outcome returns the game's outcome if it is over, trying claimable
// draws (fifty-move, threefold repetition) only when claimDraw is true.
// It returns nil if the game is ongoing.
func (b *Board) Outcome(claimDraw bool) *Outcome {
	if b.IsCheckmate() {
		winner := b.Turn.Other()
		return &Outcome{Termination: Checkmate, Winner: &winner}
	}
	if b.IsInsufficientMaterial() {
		return &Outcome{Termination: InsufficientMaterial}
	}
	if b.IsStalemate() {
		return &Outcome{Termination: Stalemate}
	}
	if b.IsSeventyFiveMoves() {
		return &Outcome{Termination: SeventyfiveMoves}
	}
	if b.IsFivefoldRepetition() {
		return &Outcome{Termination: FivefoldRepetition}
	}
	if claimDraw {
		if b.IsFiftyMoves() {
			return &Outcome{Termination: FiftyMoves}
		}
		if b.CanClaimThreefoldRepetition() {
			return &Outcome{Termination: ThreefoldRepetition}
		}
	}
	return nil
}

// StatusFlag is a bitmask of position-validity problems returned by
// Board.Status. A zero value means the position is structurally valid.
type StatusFlag uint32

const StatusValid StatusFlag = 0

const (
	StatusNoWhiteKing StatusFlag = 1 << iota
	StatusNoBlackKing
	StatusTooManyKings
	StatusTooManyWhitePawns
	StatusTooManyBlackPawns
	StatusPawnsOnBackrank
	StatusTooManyWhitePieces
	StatusTooManyBlackPieces
	StatusBadCastlingRights
	StatusInvalidEpSquare
	StatusOppositeCheck
	StatusTooManyCheckers
	StatusImpossibleCheck
)

// Status reports every structural-validity problem with the position.
func (b *Board) Status() StatusFlag {
	var status StatusFlag

	if b.PiecesMask(King, White) == 0 {
		status |= StatusNoWhiteKing
	}
	if b.PiecesMask(King, Black) == 0 {
		status |= StatusNoBlackKing
	}
	if b.PiecesMask(King, White).PopCount() > 1 || b.PiecesMask(King, Black).PopCount() > 1 {
		status |= StatusTooManyKings
	}

	if b.PiecesMask(Pawn, White).PopCount() > 8 {
		status |= StatusTooManyWhitePawns
	}
	if b.PiecesMask(Pawn, Black).PopCount() > 8 {
		status |= StatusTooManyBlackPawns
	}
	if b.Pawns&(bbRanks[0]|bbRanks[7]) != 0 {
		status |= StatusPawnsOnBackrank
	}

	if b.OccupiedCo[colorIndex(White)].PopCount() > 16 {
		status |= StatusTooManyWhitePieces
	}
	if b.OccupiedCo[colorIndex(Black)].PopCount() > 16 {
		status |= StatusTooManyBlackPieces
	}

	if b.CastlingRights != b.cleanCastlingRights() {
		status |= StatusBadCastlingRights
	}

	if b.EpSquare != NoSquare {
		status |= b.epSquareStatus()
	}

	if opponentKing := b.King(b.Turn.Other()); opponentKing != NoSquare {
		if b.IsAttackedBy(b.Turn, opponentKing) {
			status |= StatusOppositeCheck
		}
	}

	checkers := b.Checkers()
	king := b.King(b.Turn)
	switch {
	case checkers.PopCount() > 2:
		status |= StatusTooManyCheckers
	case checkers.PopCount() == 2:
		sqs := checkers.Squares()
		if king != NoSquare {
			if line := Ray(sqs[0], sqs[1]); line != 0 && line&BBForSquare(king) != 0 {
				status |= StatusImpossibleCheck
			}
		}
	}

	// A checker whose ray to a legal en-passant square runs through the
	// king is also an impossible geometry: the pawn that could be
	// captured en passant would have had to pass through check to reach
	// its double-pushed square.
	if king != NoSquare {
		if epSquare, ok := b.validEpSquare(); ok {
			for _, checker := range checkers.Squares() {
				if line := Ray(checker, epSquare); line != 0 && line&BBForSquare(king) != 0 {
					status |= StatusImpossibleCheck
					break
				}
			}
		}
	}

	return status
}

// validEpSquare returns b.EpSquare and true if it passes every structural
// check epSquareStatus performs, or (NoSquare, false) otherwise.
func (b *Board) validEpSquare() (Square, bool) {
	if b.EpSquare == NoSquare {
		return NoSquare, false
	}
	if b.epSquareStatus() != StatusValid {
		return NoSquare, false
	}
	return b.EpSquare, true
}

func (b *Board) epSquareStatus() StatusFlag {
	validRank := (b.Turn == White && b.EpSquare.Rank() == Rank6) || (b.Turn == Black && b.EpSquare.Rank() == Rank3)
	if !validRank {
		return StatusInvalidEpSquare
	}

	var pawnSq, behindSq Square
	if b.Turn == White {
		pawnSq, behindSq = b.EpSquare-8, b.EpSquare+8
	} else {
		pawnSq, behindSq = b.EpSquare+8, b.EpSquare-8
	}

	expected := Piece{Type: Pawn, Color: b.Turn.Other()}
	if b.PieceAt(pawnSq) != expected || b.PieceAt(b.EpSquare) != NoPiece || b.PieceAt(behindSq) != NoPiece {
		return StatusInvalidEpSquare
	}
	return StatusValid
}
