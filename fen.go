package chess

import (
	"strconv"
	"strings"
)

// StartingFEN is the FEN of the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN parses fen into a fresh Board. On error no partial
// state is committed to the returned value (there is none: it is nil).
func NewBoardFromFEN(fen string) (*Board, error) {
	b := NewBoard(WithEmpty())
	if err := b.SetFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// FEN serializes the complete position: board, side to move, castling
// rights, en-passant square (only when actually capturable), halfmove
// clock, and fullmove number.
func (b *Board) FEN() string {
	fields := []string{
		b.BaseBoard.BoardFEN(false),
		b.Turn.String(),
		b.castlingFEN(),
		b.epFEN(),
		strconv.Itoa(b.HalfmoveClock),
		strconv.Itoa(b.FullmoveNumber),
	}
	return strings.Join(fields, " ")
}

func (b *Board) castlingFEN() string {
	rights := b.cleanCastlingRights()
	var sb strings.Builder
	if rights&BBForSquare(H1) != 0 {
		sb.WriteByte('K')
	}
	if rights&BBForSquare(A1) != 0 {
		sb.WriteByte('Q')
	}
	if rights&BBForSquare(H8) != 0 {
		sb.WriteByte('k')
	}
	if rights&BBForSquare(A8) != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func (b *Board) epFEN() string {
	if !b.HasLegalEnPassant() {
		return "-"
	}
	return b.EpSquare.String()
}

// HasLegalEnPassant reports whether some legal move actually captures en
// passant this move (as opposed to ep_square merely being set, which
// happens on every double push regardless of whether a capture exists).
func (b *Board) HasLegalEnPassant() bool {
	if b.EpSquare == NoSquare {
		return false
	}
	for _, m := range b.GenerateLegalMoves(BBAll, BBForSquare(b.EpSquare)) {
		if b.isEnPassant(m) {
			return true
		}
	}
	return false
}

// SetFEN replaces the entire board state by parsing a six-field FEN
// string. Castling-field parsing is restricted to the corner-rook letters
// K/Q/k/q (the non-Chess960 default this package implements); any other
// character is a parse error. On error, b is left unmodified.
func (b *Board) SetFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		logger.Debug(fen + ": does not have 6 space-separated fields")
		return &ParseError{Kind: "fen", Input: fen, Reason: "expected 6 space-separated fields"}
	}
	boardPart, sidePart, castlingPart, epPart, halfPart, fullPart := parts[0], parts[1], parts[2], parts[3], parts[4], parts[5]

	var nb BaseBoard
	if err := nb.SetBoardFEN(boardPart); err != nil {
		logger.Debug(fen + ": board field rejected: " + err.Error())
		return err
	}

	var turn Color
	switch sidePart {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		logger.Debug(fen + ": side to move must be 'w' or 'b'")
		return &ParseError{Kind: "fen", Input: fen, Reason: "side to move must be 'w' or 'b'"}
	}

	var castlingRights Bitboard
	if castlingPart != "-" {
		for _, c := range castlingPart {
			switch c {
			case 'K':
				castlingRights |= BBForSquare(H1)
			case 'Q':
				castlingRights |= BBForSquare(A1)
			case 'k':
				castlingRights |= BBForSquare(H8)
			case 'q':
				castlingRights |= BBForSquare(A8)
			default:
				logger.Debug(fen + ": invalid castling character '" + string(c) + "'")
				return &ParseError{Kind: "fen", Input: fen, Reason: "invalid castling character '" + string(c) + "'"}
			}
		}
	}

	epSquare := NoSquare
	if epPart != "-" {
		sq, ok := ParseSquare(epPart)
		if !ok {
			logger.Debug(fen + ": invalid en passant square")
			return &ParseError{Kind: "fen", Input: fen, Reason: "invalid en passant square"}
		}
		if sq.Rank() != Rank3 && sq.Rank() != Rank6 {
			logger.Debug(fen + ": en passant square must be on rank 3 or 6")
			return &ParseError{Kind: "fen", Input: fen, Reason: "en passant square must be on rank 3 or 6"}
		}
		epSquare = sq
	}

	halfmove, err := strconv.Atoi(halfPart)
	if err != nil || halfmove < 0 {
		logger.Debug(fen + ": halfmove clock must be a non-negative integer")
		return &ParseError{Kind: "fen", Input: fen, Reason: "halfmove clock must be a non-negative integer"}
	}
	fullmove, err := strconv.Atoi(fullPart)
	if err != nil || fullmove < 1 {
		logger.Debug(fen + ": fullmove number must be a positive integer")
		return &ParseError{Kind: "fen", Input: fen, Reason: "fullmove number must be a positive integer"}
	}

	b.BaseBoard = nb
	b.Turn = turn
	b.CastlingRights = castlingRights
	b.EpSquare = epSquare
	b.HalfmoveClock = halfmove
	b.FullmoveNumber = fullmove
	b.clearStacks()
	return nil
}
