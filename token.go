package casbench // import "gopkg.in/casbench/go-casbench.v0"

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// TokenType is the lexical category of a token. The benchmark definition
// language is closed, so there are no categories besides these.
type TokenType int

const (
	// IdentifierToken is a symbol or function name.
	IdentifierToken TokenType = iota
	// IntToken is an integer literal.
	IntToken
	// FloatToken is a floating point literal.
	FloatToken
	// LeftParenToken is an opening parenthesis.
	LeftParenToken
	// RightParenToken is a closing parenthesis.
	RightParenToken
	// CommaToken is an argument separator.
	CommaToken
	// EqualEqualToken is the equality operator.
	EqualEqualToken
	// EOFToken marks the end of the token sequence. It has no lexeme.
	EOFToken
)

func (t TokenType) String() string {
	switch t {
	case IdentifierToken:
		return "identifier"
	case IntToken:
		return "integer_literal"
	case FloatToken:
		return "float_literal"
	case LeftParenToken:
		return "left_parenthesis"
	case RightParenToken:
		return "right_parenthesis"
	case CommaToken:
		return "comma"
	case EqualEqualToken:
		return "equal_equal"
	case EOFToken:
		return "end_of_file"
	default:
		return "invalid"
	}
}

// Token is a single lexical unit of a benchmark definition. Positions carry
// no weight in sequence hashing (see Tokens.Hash).
type Token struct {
	// Type is the lexical category of the token.
	Type TokenType
	// Lexeme is the exact source text the token was scanned from. It is
	// empty only for EOFToken.
	Lexeme string
	// Line is the zero-based line the token starts at. Definitions are a
	// single line, so it is always zero.
	Line int `hash:"ignore"`
	// Column is the zero-based column the token starts at, counted in
	// characters, not bytes.
	Column int `hash:"ignore"`
	// Literal is the parsed value of numeric lexemes, int64 for IntToken
	// and float64 for FloatToken. It is nil for all other token types.
	Literal interface{}
}

// NewToken creates a new Token of the given type with no literal value.
func NewToken(typ TokenType, lexeme string, line, column int) *Token {
	return &Token{
		Type:   typ,
		Lexeme: lexeme,
		Line:   line,
		Column: column,
	}
}

// NewLiteralToken creates a new Token carrying the parsed value of a numeric
// lexeme.
func NewLiteralToken(typ TokenType, lexeme string, line, column int, literal interface{}) *Token {
	return &Token{
		Type:    typ,
		Lexeme:  lexeme,
		Line:    line,
		Column:  column,
		Literal: literal,
	}
}

// Length returns the number of characters of source text the token spans.
// It is zero for EOFToken.
func (t *Token) Length() int {
	return utf8.RuneCountInString(t.Lexeme)
}

// Int returns the literal as an int64, truncating float literals. It is zero
// for tokens with no numeric literal.
func (t *Token) Int() int64 {
	return cast.ToInt64(t.Literal)
}

// Float returns the literal as a float64, widening integer literals, so a
// numeric argument in either form can be read through it. It is zero for
// tokens with no numeric literal.
func (t *Token) Float() float64 {
	return cast.ToFloat64(t.Literal)
}

func (t *Token) String() string {
	if t.Type == EOFToken {
		return t.Type.String()
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}
