package chess

// Color is the color of a side or a piece. Internally it is a bool with
// White as the "true" value, so it indexes a two-element array directly
// via colorIndex: White -> 1, Black -> 0.
type Color bool

const (
	Black Color = false
	White Color = true
)

// colorIndex maps a Color to 0/1 for array indexing, White at 1.
func colorIndex(c Color) int {
	if c {
		return 1
	}
	return 0
}

// Other returns the opposing color.
func (c Color) Other() Color {
	return !c
}

// String returns the FEN-compatible single-character notation ("w"/"b").
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Name returns a display-friendly name.
func (c Color) Name() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType identifies a kind of chess piece, independent of color.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

var allPieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// PieceTypes returns every piece type, pawn through king.
func PieceTypes() [6]PieceType {
	return allPieceTypes
}

// promotionPieceTypes enumerates underpromotion targets in the order the
// generator and SAN printer must emit them: queen, rook, bishop, knight.
var promotionPieceTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// String returns the lowercase FEN letter for the piece type ("p".."k"),
// or "" for NoPieceType.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return ""
}

// pieceTypeFromChar parses a case-insensitive non-pawn piece letter.
// Pawn is never expressed this way in SAN disambiguators or promotion
// suffixes, so it is intentionally excluded.
func pieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPieceType
}

// Piece is a piece type bound to a color.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece represents the absence of a piece on a square.
var NoPiece = Piece{Type: NoPieceType}

// symbol returns the FEN letter for the piece: uppercase for white,
// lowercase for black. Returns 0 for NoPiece.
func (p Piece) symbol() byte {
	s := p.Type.String()
	if s == "" {
		return 0
	}
	c := s[0]
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

var unicodePieces = map[PieceType][2]rune{
	King:   {'♚', '♔'},
	Queen:  {'♛', '♕'},
	Rook:   {'♜', '♖'},
	Bishop: {'♝', '♗'},
	Knight: {'♞', '♘'},
	Pawn:   {'♟', '♙'},
}

// String returns the Unicode chess glyph for the piece, or a blank space
// for NoPiece.
func (p Piece) String() string {
	pair, ok := unicodePieces[p.Type]
	if !ok {
		return " "
	}
	if p.Color == White {
		return string(pair[1])
	}
	return string(pair[0])
}

// pieceFromSymbol parses a single FEN board-character into a Piece.
func pieceFromSymbol(c byte) (Piece, bool) {
	var pt PieceType
	switch c {
	case 'P', 'p':
		pt = Pawn
	case 'N', 'n':
		pt = Knight
	case 'B', 'b':
		pt = Bishop
	case 'R', 'r':
		pt = Rook
	case 'Q', 'q':
		pt = Queen
	case 'K', 'k':
		pt = King
	default:
		return NoPiece, false
	}
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
	}
	return Piece{Type: pt, Color: color}, true
}
