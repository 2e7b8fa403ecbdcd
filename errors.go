package casbench

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidLexeme is thrown when a character sequence in the source
	// cannot be classified into any token category. It carries the first
	// offending character together with its line, column and absolute index.
	ErrInvalidLexeme = errors.NewKind("invalid lexeme %q encountered on line %d at column %d (index %d) during lexing")

	// ErrUnexpectedToken is thrown by consumers of a token sequence when
	// the token at the current position cannot continue the construct being
	// parsed. The lexer itself never returns it.
	ErrUnexpectedToken = errors.NewKind("unexpected token %s encountered on line %d at column %d during parsing")

	// ErrExhaustedTokens is thrown by consumers of a token sequence that
	// need more tokens than the sequence contains. The lexer itself never
	// returns it.
	ErrExhaustedTokens = errors.NewKind("token sequence exhausted at position %d during parsing")
)
