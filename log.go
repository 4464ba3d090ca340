package chess

import "go.uber.org/zap"

// logger is the package-wide diagnostic logger. It defaults to a no-op
// logger: the core is a library, not a service, and must stay silent
// unless a caller opts in.
var logger = zap.NewNop()

// SetLogger installs the logger used for debug-level diagnostics: FEN
// fields rejected by SetFEN, SAN tokens that match no legal move or more
// than one, and Push of a move whose from-square is empty (just before
// Push panics). UCI parse errors and SAN tokens that fail the grammar are
// returned without logging. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
