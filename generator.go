package chess

import "golang.org/x/exp/slices"

// generator.go implements pseudo-legal and legal move generation. The
// public entry points materialize a []Move (rather than a true
// non-materializing state machine): MoveGenerator wraps that slice behind
// a pull-based Next(), which gives callers early-termination without
// committing to the more intricate lazy-state-machine implementation the
// bit-geometry tables would otherwise demand. See DESIGN.md for the
// tradeoff.

func isPromotionRank(color Color, r Rank) bool {
	if color == White {
		return r == Rank8
	}
	return r == Rank1
}

// pawnMoves expands a single pawn destination into one move, or four
// underpromotion moves (queen, rook, bishop, knight) if to lands on the
// far rank.
func pawnMoves(from, to Square, color Color) []Move {
	if isPromotionRank(color, to.Rank()) {
		moves := make([]Move, 0, len(promotionPieceTypes))
		for _, pt := range promotionPieceTypes {
			moves = append(moves, Move{From: from, To: to, Promotion: pt})
		}
		return moves
	}
	return []Move{{From: from, To: to, Promotion: NoPieceType}}
}

var pseudoLegalNonPawnTypes = [5]PieceType{Knight, Bishop, Rook, Queen, King}

// GeneratePseudoLegalMoves returns every pseudo-legal move with origin in
// fromMask and destination in toMask (pass BBAll for "any"). Pseudo-legal
// moves obey piece movement rules but may leave or pass through check.
func (b *Board) GeneratePseudoLegalMoves(fromMask, toMask Bitboard) []Move {
	moves := b.generatePseudoLegal(fromMask, toMask)
	sortMoves(moves)
	return moves
}

// sortMoves orders moves by (from, to), then by promotion piece in the
// order queen, rook, bishop, knight, so that callers see a stable,
// reproducible move order regardless of which bitboard family (piece
// type, pawn push, castling) contributed a given move.
func sortMoves(moves []Move) {
	slices.SortFunc(moves, func(a, b Move) int {
		if a.From != b.From {
			return int(a.From) - int(b.From)
		}
		if a.To != b.To {
			return int(a.To) - int(b.To)
		}
		return int(b.Promotion) - int(a.Promotion)
	})
}

// generatePseudoLegalNoKing is generateEvasions' building block: pseudo-
// legal moves from non-king pieces only (king evasions are generated
// separately, since an in-check king's own move set is computed
// differently from its ordinary attacks-minus-own-pieces set).
func (b *Board) generatePseudoLegalNoKing(fromMask, toMask Bitboard) []Move {
	return b.generatePseudoLegal(fromMask&^b.Kings, toMask)
}

func (b *Board) generatePseudoLegal(fromMask, toMask Bitboard) []Move {
	var moves []Move
	own := b.OccupiedCo[colorIndex(b.Turn)]

	for _, pt := range pseudoLegalNonPawnTypes {
		froms := b.PiecesMask(pt, b.Turn) & fromMask
		for _, from := range froms.Squares() {
			targets := b.AttacksMask(from) &^ own & toMask
			for _, to := range targets.Squares() {
				moves = append(moves, Move{From: from, To: to, Promotion: NoPieceType})
			}
		}
	}

	if king := b.King(b.Turn); king != NoSquare && fromMask.Occupied(king) {
		moves = append(moves, b.generateCastlingMoves(toMask)...)
	}

	pawnsFrom := b.PiecesMask(Pawn, b.Turn) & fromMask
	enemy := b.OccupiedCo[colorIndex(b.Turn.Other())]
	for _, from := range pawnsFrom.Squares() {
		captureTargets := pawnAttacks[colorIndex(b.Turn)][from] & enemy & toMask
		for _, to := range captureTargets.Squares() {
			moves = append(moves, pawnMoves(from, to, b.Turn)...)
		}
	}

	var singlePushAll Bitboard
	if b.Turn == White {
		singlePushAll = (pawnsFrom << 8) &^ b.Occupied
	} else {
		singlePushAll = (pawnsFrom >> 8) &^ b.Occupied
	}
	for _, to := range (singlePushAll & toMask).Squares() {
		var from Square
		if b.Turn == White {
			from = to - 8
		} else {
			from = to + 8
		}
		moves = append(moves, pawnMoves(from, to, b.Turn)...)
	}

	var doublePush Bitboard
	if b.Turn == White {
		doublePush = (singlePushAll << 8) &^ b.Occupied & bbRanks[3]
	} else {
		doublePush = (singlePushAll >> 8) &^ b.Occupied & bbRanks[4]
	}
	for _, to := range (doublePush & toMask).Squares() {
		var from Square
		if b.Turn == White {
			from = to - 16
		} else {
			from = to + 16
		}
		moves = append(moves, Move{From: from, To: to, Promotion: NoPieceType})
	}

	if b.EpSquare != NoSquare && toMask.Occupied(b.EpSquare) {
		capturers := pawnAttacks[colorIndex(b.Turn.Other())][b.EpSquare] & b.PiecesMask(Pawn, b.Turn) & fromMask
		for _, from := range capturers.Squares() {
			moves = append(moves, Move{From: from, To: b.EpSquare, Promotion: NoPieceType})
		}
	}

	return moves
}

// generateCastlingMoves yields castling moves for every remaining right
// on the side-to-move's back rank whose rook square lies in toMask. Each
// is encoded as (king_square, rook_square, NoPieceType): Push recognizes
// this shape by the king "capturing" a piece of its own color.
func (b *Board) generateCastlingMoves(toMask Bitboard) []Move {
	king := b.King(b.Turn)
	if king == NoSquare {
		return nil
	}
	backRank := bbRanks[0]
	if b.Turn == Black {
		backRank = bbRanks[7]
	}
	rights := b.cleanCastlingRights() & backRank

	var moves []Move
	enemy := b.Turn.Other()
	for _, rookSq := range rights.Squares() {
		if !toMask.Occupied(rookSq) {
			continue
		}
		aSide := rookSq.File() < king.File()
		rank := king.Rank()
		var kingDest, rookDest Square
		if aSide {
			kingDest, rookDest = NewSquare(FileC, rank), NewSquare(FileD, rank)
		} else {
			kingDest, rookDest = NewSquare(FileG, rank), NewSquare(FileF, rank)
		}

		occupiedWithoutMovers := b.Occupied &^ BBForSquare(king) &^ BBForSquare(rookSq)
		kingPath := Between(king, kingDest) | BBForSquare(kingDest)
		rookPath := Between(rookSq, rookDest) | BBForSquare(rookDest)
		blockPath := (kingPath | rookPath) &^ BBForSquare(king) &^ BBForSquare(rookSq)
		if occupiedWithoutMovers&blockPath != 0 {
			continue
		}

		kingTravel := Between(king, kingDest) | BBForSquare(king) | BBForSquare(kingDest)
		occupiedNoKing := b.Occupied &^ BBForSquare(king)
		safe := true
		for _, sq := range kingTravel.Squares() {
			if b.AttackersMask(enemy, sq, occupiedNoKing) != 0 {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}

		occupiedFinal := occupiedWithoutMovers | BBForSquare(kingDest) | BBForSquare(rookDest)
		if b.AttackersMask(enemy, kingDest, occupiedFinal) != 0 {
			continue
		}

		moves = append(moves, Move{From: king, To: rookSq, Promotion: NoPieceType})
	}
	return moves
}

// sliderBlockers returns own pieces that stand alone between king and an
// enemy slider that would otherwise attack it: moving one off the
// king-slider ray exposes check, so is_safe must special-case them.
func (b *Board) sliderBlockers(king Square) Bitboard {
	rooksAndQueens := b.Rooks | b.Queens
	bishopsAndQueens := b.Bishops | b.Queens
	snipers := (rankTable.attacksFor(king, 0) & rooksAndQueens) |
		(fileTable.attacksFor(king, 0) & rooksAndQueens) |
		(diagTable.attacksFor(king, 0) & bishopsAndQueens)

	var blockers Bitboard
	for _, sniper := range (snipers & b.OccupiedCo[colorIndex(b.Turn.Other())]).Squares() {
		between := Between(king, sniper) & b.Occupied
		if between != 0 && between.PopCount() == 1 {
			blockers |= between
		}
	}
	return blockers & b.OccupiedCo[colorIndex(b.Turn)]
}

// isEnPassant reports whether m is an en-passant capture: a pawn moving
// diagonally onto the current ep square, which is otherwise empty.
func (b *Board) isEnPassant(m Move) bool {
	return b.EpSquare != NoSquare && m.To == b.EpSquare &&
		b.PieceTypeAt(m.From) == Pawn && m.From.File() != m.To.File() &&
		b.PieceAt(m.To) == NoPiece
}

// epSkewered reports whether capturing en passant from capturer would
// expose king to a rook/queen along the rank once both the capturing
// pawn's origin and the captured pawn's square empty out (the
// en-passant skewer).
func (b *Board) epSkewered(king, capturer Square) bool {
	var lastDouble Square
	if b.Turn == White {
		lastDouble = b.EpSquare - 8
	} else {
		lastDouble = b.EpSquare + 8
	}
	occupied := (b.Occupied &^ BBForSquare(lastDouble) &^ BBForSquare(capturer)) | BBForSquare(b.EpSquare)
	horizontalAttackers := b.OccupiedCo[colorIndex(b.Turn.Other())] & (b.Rooks | b.Queens)
	return rankTable.attacksFor(king, occupied)&horizontalAttackers != 0
}

// isSafe reports whether a pseudo-legal move m leaves the side to move's
// own king safe, given its square and the precomputed slider-blockers.
func (b *Board) isSafe(king Square, blockers Bitboard, m Move) bool {
	switch {
	case m.From == king:
		if b.isCastling(m) {
			return true
		}
		return !b.IsAttackedBy(b.Turn.Other(), m.To)
	case b.isEnPassant(m):
		return b.PinMask(b.Turn, m.From)&BBForSquare(m.To) != 0 && !b.epSkewered(king, m.From)
	default:
		return blockers&BBForSquare(m.From) == 0 || Ray(m.From, m.To)&BBForSquare(king) != 0
	}
}

// generateEvasions returns candidate check-evading moves: king flight
// squares outside the checkers' x-ray reach, and, if there is exactly one
// checker, every move (including the en-passant capture of the checker
// itself) that blocks it or captures it.
func (b *Board) generateEvasions(king Square, checkers, fromMask, toMask Bitboard) []Move {
	var moves []Move

	sliders := checkers & (b.Bishops | b.Rooks | b.Queens)
	var attacked Bitboard
	for _, checker := range sliders.Squares() {
		attacked |= Ray(king, checker) &^ BBForSquare(checker)
	}

	if BBForSquare(king)&fromMask != 0 {
		targets := kingAttacks[king] &^ b.OccupiedCo[colorIndex(b.Turn)] &^ attacked & toMask
		for _, to := range targets.Squares() {
			moves = append(moves, Move{From: king, To: to, Promotion: NoPieceType})
		}
	}

	if checkers.PopCount() != 1 {
		return moves
	}
	checker := checkers.Lsb()
	target := (Between(king, checker) | checkers) & toMask
	moves = append(moves, b.generatePseudoLegalNoKing(fromMask, target)...)

	if b.EpSquare != NoSquare && toMask.Occupied(b.EpSquare) {
		var epVictim Square
		if b.Turn == White {
			epVictim = b.EpSquare - 8
		} else {
			epVictim = b.EpSquare + 8
		}
		if epVictim == checker {
			capturers := pawnAttacks[colorIndex(b.Turn.Other())][b.EpSquare] & b.PiecesMask(Pawn, b.Turn) & fromMask
			for _, from := range capturers.Squares() {
				moves = append(moves, Move{From: from, To: b.EpSquare, Promotion: NoPieceType})
			}
		}
	}
	return moves
}

// GenerateLegalMoves returns every fully legal move with origin in
// fromMask and destination in toMask. If the side to move has no king on
// the board, every pseudo-legal move is considered legal (the no-king
// position has no check to avoid).
func (b *Board) GenerateLegalMoves(fromMask, toMask Bitboard) []Move {
	king := b.King(b.Turn)
	if king == NoSquare {
		return b.GeneratePseudoLegalMoves(fromMask, toMask)
	}

	blockers := b.sliderBlockers(king)
	checkers := b.Checkers()

	var candidates []Move
	if checkers.Any() {
		candidates = b.generateEvasions(king, checkers, fromMask, toMask)
	} else {
		candidates = b.generatePseudoLegal(fromMask, toMask)
	}

	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		if b.isSafe(king, blockers, m) {
			legal = append(legal, m)
		}
	}
	sortMoves(legal)
	return legal
}

// LegalMoves returns every legal move in the current position.
func (b *Board) LegalMoves() []Move {
	return b.GenerateLegalMoves(BBAll, BBAll)
}

// PseudoLegalMoves returns every pseudo-legal move in the current
// position.
func (b *Board) PseudoLegalMoves() []Move {
	return b.GeneratePseudoLegalMoves(BBAll, BBAll)
}

// IsLegal reports whether m is a legal move in the current position.
func (b *Board) IsLegal(m Move) bool {
	for _, lm := range b.GenerateLegalMoves(BBForSquare(m.From), BBForSquare(m.To)) {
		if lm.Eq(m) {
			return true
		}
	}
	return false
}

// IsPseudoLegal reports whether m is a pseudo-legal move in the current
// position.
func (b *Board) IsPseudoLegal(m Move) bool {
	for _, pm := range b.GeneratePseudoLegalMoves(BBForSquare(m.From), BBForSquare(m.To)) {
		if pm.Eq(m) {
			return true
		}
	}
	return false
}

// MoveGenerator is a pull-based cursor over a precomputed move list,
// matching the package's "lazy sequence, early termination allowed"
// contract at the API boundary.
type MoveGenerator struct {
	moves []Move
	idx   int
}

// NewLegalMoveGenerator returns a cursor over GenerateLegalMoves(fromMask, toMask).
func (b *Board) NewLegalMoveGenerator(fromMask, toMask Bitboard) *MoveGenerator {
	return &MoveGenerator{moves: b.GenerateLegalMoves(fromMask, toMask)}
}

// NewPseudoLegalMoveGenerator returns a cursor over
// GeneratePseudoLegalMoves(fromMask, toMask).
func (b *Board) NewPseudoLegalMoveGenerator(fromMask, toMask Bitboard) *MoveGenerator {
	return &MoveGenerator{moves: b.GeneratePseudoLegalMoves(fromMask, toMask)}
}

// Next returns the next move and true, or the zero Move and false once
// exhausted.
func (g *MoveGenerator) Next() (Move, bool) {
	if g.idx >= len(g.moves) {
		return Move{}, false
	}
	m := g.moves[g.idx]
	g.idx++
	return m, true
}

// Len returns the number of moves remaining.
func (g *MoveGenerator) Len() int {
	return len(g.moves) - g.idx
}
