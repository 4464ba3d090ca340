// Package chess implements a bitboard-based chess position core: piece
// placement, legal move generation (castling, en passant, promotion), a
// reversible push/pop move stack, SAN and FEN conversion, and game-state
// classifiers (check, checkmate, stalemate, draw claims, repetition,
// insufficient material, position validity).
//
// A Board is the entry point:
//
//	b := chess.NewBoard()
//	m, err := b.ParseSAN("e4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b.Push(m)
//	fmt.Println(b.FEN())
//
// The package does not implement a PGN tokenizer, a UCI subprocess
// adapter, an endgame-tablebase client, or a CLI; it exposes the
// collaborator surfaces those would consume (ParseUCI/Move.UCI,
// Board.ParseSAN/Push, Board.Reset).
//
// Logging is opt-in and silent by default; call SetLogger to attach a
// *zap.Logger. Precondition violations (Push of a move whose from-square
// is empty, Pop of an empty history) panic with a sentinel error; Push
// does not otherwise check that a move is legal. Malformed input
// (FEN, SAN, UCI) and ambiguous SAN resolution are returned as
// structured errors instead.
package chess
