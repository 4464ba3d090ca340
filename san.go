package chess

import (
	"regexp"
	"strings"
)

// san.go implements Standard Algebraic Notation parsing and printing.
// Disambiguation and legality are resolved by intersecting the SAN
// token's constraints with the legal-move generator's output, rather
// than hand-rolling per-piece-type matching rules: the generator is
// already the single source of truth for what is legal, so SAN parsing
// reduces to "narrow (from_mask, to_mask) until exactly one legal move
// survives."

var sanPattern = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?(x)?([a-h][1-8])(=?[NBRQnbrq])?[+#]?$`)
var castlePattern = regexp.MustCompile(`^(O-O-O|0-0-0|O-O|0-0)[+#]?$`)

var nullMoveTokens = map[string]bool{"--": true, "Z0": true, "0000": true, "@@@@": true}

// ParseSAN parses a SAN token against the current position. It does not
// mutate the board. Ambiguous or unmatched tokens return
// *AmbiguousSANError or *NoMatchingMoveError; tokens that don't match the
// SAN grammar at all return *ParseError.
func (b *Board) ParseSAN(san string) (Move, error) {
	san = strings.TrimSpace(san)
	if nullMoveTokens[san] {
		return NullMove(), nil
	}
	if castlePattern.MatchString(san) {
		return b.parseCastlingSAN(san)
	}

	groups := sanPattern.FindStringSubmatch(san)
	if groups == nil {
		return Move{}, &ParseError{Kind: "san", Input: san, Reason: "does not match SAN grammar"}
	}
	pieceLetter, fromFile, fromRank, _, toStr, promoStr := groups[1], groups[2], groups[3], groups[4], groups[5], groups[6]

	toSq, ok := ParseSquare(toStr)
	if !ok {
		return Move{}, &ParseError{Kind: "san", Input: san, Reason: "bad destination square"}
	}

	promotion := NoPieceType
	if promoStr != "" {
		promotion = pieceTypeFromChar(promoStr[len(promoStr)-1])
	}

	fromMask := BBAll
	if fromFile != "" {
		fromMask &= bbFiles[fromFile[0]-'a']
	}
	if fromRank != "" {
		fromMask &= bbRanks[fromRank[0]-'1']
	}

	pieceType := Pawn
	if pieceLetter != "" {
		pieceType = pieceTypeFromChar(pieceLetter[0])
	}
	fromMask &= b.PiecesMask(pieceType, b.Turn)

	var candidates []Move
	for _, cm := range b.GenerateLegalMoves(fromMask, BBForSquare(toSq)) {
		if cm.Promotion == promotion {
			candidates = append(candidates, cm)
		}
	}

	switch len(candidates) {
	case 0:
		logger.Debug(san + ": no legal move matches")
		return Move{}, &NoMatchingMoveError{SAN: san}
	case 1:
		return candidates[0], nil
	default:
		logger.Debug(san + ": ambiguous among multiple legal moves")
		return Move{}, &AmbiguousSANError{SAN: san, Candidates: candidates}
	}
}

func (b *Board) parseCastlingSAN(san string) (Move, error) {
	trimmed := strings.TrimRight(san, "+#")
	isQueenside := trimmed == "O-O-O" || trimmed == "0-0-0"

	king := b.King(b.Turn)
	if king == NoSquare {
		return Move{}, &NoMatchingMoveError{SAN: san}
	}
	for _, m := range b.GenerateLegalMoves(BBForSquare(king), BBAll) {
		if !b.isCastling(m) {
			continue
		}
		if (m.To.File() < m.From.File()) == isQueenside {
			return m, nil
		}
	}
	return Move{}, &NoMatchingMoveError{SAN: san}
}

// PushSAN parses san against the current position and pushes it,
// returning the resolved move.
func (b *Board) PushSAN(san string) (Move, error) {
	m, err := b.ParseSAN(san)
	if err != nil {
		return Move{}, err
	}
	b.Push(m)
	return m, nil
}

// SAN returns the short-form algebraic notation for m (e.g. "Nf3",
// "exd5", "O-O", "e8=Q#"), computed by tentatively applying m to detect
// check/checkmate and then undoing it. m must be legal in the current
// position.
func (b *Board) SAN(m Move) string {
	return b.algebraicAndPush(m, false)
}

// LAN returns the long-form algebraic notation for m, which always
// states the origin square and always uses "x" or "-" before the
// destination.
func (b *Board) LAN(m Move) string {
	return b.algebraicAndPush(m, true)
}

func (b *Board) algebraicAndPush(m Move, long bool) string {
	san := b.algebraic(m, long)
	b.Push(m)
	switch {
	case b.IsCheckmate():
		san += "#"
	case b.IsCheck():
		san += "+"
	}
	b.Pop()
	return san
}

func (b *Board) algebraic(m Move, long bool) string {
	if m.IsNull() {
		return "--"
	}
	if b.isCastling(m) {
		if m.To.File() < m.From.File() {
			return "O-O-O"
		}
		return "O-O"
	}

	pieceType := b.PieceTypeAt(m.From)
	capture := b.PieceAt(m.To) != NoPiece || b.isEnPassant(m)

	var sb strings.Builder
	if pieceType == Pawn {
		switch {
		case long:
			sb.WriteString(m.From.String())
		case capture:
			sb.WriteString(m.From.File().String())
		}
	} else {
		sb.WriteString(strings.ToUpper(pieceType.String()))
		if long {
			sb.WriteString(m.From.String())
		} else {
			sb.WriteString(b.disambiguator(m, pieceType))
		}
	}

	switch {
	case long && capture:
		sb.WriteString("x")
	case long:
		sb.WriteString("-")
	case capture:
		sb.WriteString("x")
	}

	sb.WriteString(m.To.String())
	if m.Promotion != NoPieceType {
		sb.WriteString("=")
		sb.WriteString(strings.ToUpper(m.Promotion.String()))
	}
	return sb.String()
}

// disambiguator returns the minimal SAN disambiguator needed to
// distinguish m from other legal moves of the same piece type to the
// same destination: empty, a file, a rank, or the full origin square.
func (b *Board) disambiguator(m Move, pieceType PieceType) string {
	var others []Move
	for _, cm := range b.GenerateLegalMoves(BBAll, BBForSquare(m.To)) {
		if cm.From == m.From {
			continue
		}
		if b.PieceTypeAt(cm.From) != pieceType {
			continue
		}
		others = append(others, cm)
	}
	if len(others) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, o := range others {
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}
