package lexer // import "gopkg.in/casbench/go-casbench.v0/lexer"

import (
	"strconv"
	"sync"
	"unicode"

	opentracing "github.com/opentracing/opentracing-go"
	casbench "gopkg.in/casbench/go-casbench.v0"
)

const (
	space      rune = ' '
	leftParen       = '('
	rightParen      = ')'
	comma           = ','
	equal           = '='
	dot             = '.'
	underscore      = '_'
)

// Lexer scans one line of benchmark definition source into its token
// sequence.
type Lexer struct {
	source string

	once   sync.Once
	tokens casbench.Tokens
	err    error
}

// New creates a new Lexer for the given source.
func New(source string) *Lexer {
	return &Lexer{source: source}
}

// Source returns the source text the lexer was created for.
func (l *Lexer) Source() string {
	return l.source
}

// Tokens returns the token sequence of the source. The scan runs at most
// once per Lexer, on first call; later calls return the same tokens or the
// same error, and concurrent calls are safe. No partial sequence is returned
// for a source that fails to scan.
func (l *Lexer) Tokens() (casbench.Tokens, error) {
	l.once.Do(func() {
		l.tokens, l.err = l.tokenize()
	})
	return l.tokens, l.err
}

// Tokenize scans the given benchmark definition source into its token
// sequence. It is the one-shot form of New(source).Tokens(), tracing and
// logging the scan through the given context.
func Tokenize(ctx *casbench.Context, source string) (casbench.Tokens, error) {
	span, ctx := ctx.Span("lexer.Tokenize", opentracing.Tag{Key: "source", Value: source})
	defer span.Finish()

	tokens, err := New(source).Tokens()
	if err != nil {
		return nil, err
	}

	ctx.Logger().WithField("tokens", len(tokens)).Debug("tokenized benchmark definition")
	return tokens, nil
}

func (l *Lexer) tokenize() (casbench.Tokens, error) {
	var (
		tokens casbench.Tokens
		source = []rune(l.source)
		line   int
		column int
	)

	for index := 0; index < len(source); {
		current := source[index]

		var tok *casbench.Token
		switch true {
		case current == space:
			index++
			column++
			continue
		case unicode.IsLetter(current):
			length := scanIdentifier(source, index)
			tok = casbench.NewToken(casbench.IdentifierToken, string(source[index:index+length]), line, column)
		case unicode.IsDigit(current):
			var err error
			tok, err = scanNumber(source, index, line, column)
			if err != nil {
				return nil, err
			}
		case current == leftParen:
			tok = casbench.NewToken(casbench.LeftParenToken, string(current), line, column)
		case current == rightParen:
			tok = casbench.NewToken(casbench.RightParenToken, string(current), line, column)
		case current == comma:
			tok = casbench.NewToken(casbench.CommaToken, string(current), line, column)
		case current == equal && index+1 < len(source) && source[index+1] == equal:
			tok = casbench.NewToken(casbench.EqualEqualToken, string(source[index:index+2]), line, column)
		default:
			return nil, invalidLexeme(current, line, column, index)
		}

		tokens = append(tokens, tok)
		index += tok.Length()
		column += tok.Length()
	}

	return append(tokens, casbench.NewToken(casbench.EOFToken, "", line, column)), nil
}

func scanIdentifier(source []rune, start int) int {
	end := start
	for end < len(source) && isAllowedInIdentifier(source[end]) {
		end++
	}
	return end - start
}

// scanNumber scans a numeric run starting at a digit. Errors are reported
// against the first character of the run.
func scanNumber(source []rune, start, line, column int) (*casbench.Token, error) {
	var isFloat bool

	end := start
Scan:
	for end < len(source) {
		current := source[end]
		switch true {
		case unicode.IsDigit(current):
			end++
		case current == dot && !isFloat:
			isFloat = true
			end++
		case current == dot, unicode.IsLetter(current), current == underscore:
			return nil, invalidLexeme(source[start], line, column, start)
		default:
			break Scan
		}
	}

	lexeme := string(source[start:end])
	if isFloat {
		val, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, invalidLexeme(source[start], line, column, start)
		}
		return casbench.NewLiteralToken(casbench.FloatToken, lexeme, line, column, val), nil
	}

	val, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, invalidLexeme(source[start], line, column, start)
	}
	return casbench.NewLiteralToken(casbench.IntToken, lexeme, line, column, val), nil
}

func invalidLexeme(current rune, line, column, index int) error {
	return casbench.ErrInvalidLexeme.New(current, line, column, index)
}

func isAllowedInIdentifier(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == underscore
}
