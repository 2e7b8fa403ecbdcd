package casbench

import "github.com/mitchellh/hashstructure"

// Tokens is the ordered token sequence produced by one scan of a benchmark
// definition. A complete sequence is terminated by exactly one EOFToken.
type Tokens []*Token

// Hash returns a fingerprint of the sequence. Token positions are excluded,
// so two definitions differing only in the spacing between tokens hash to
// the same value, while any difference in category, lexeme or literal
// produces a different one.
func (t Tokens) Hash() (uint64, error) {
	return hashstructure.Hash(t, nil)
}

// Cursor walks a token sequence in order, one token at a time. Consumers of
// a sequence read it through a Cursor instead of indexing it directly.
type Cursor struct {
	tokens Tokens
	pos    int
}

// NewCursor creates a new Cursor at the start of the given sequence.
func NewCursor(tokens Tokens) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next returns the token at the current position and advances past it. The
// second return value is false once the sequence is exhausted.
func (c *Cursor) Next() (*Token, bool) {
	tok, ok := c.Peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// Peek returns the token at the current position without advancing.
func (c *Cursor) Peek() (*Token, bool) {
	if c.pos >= len(c.tokens) {
		return nil, false
	}
	return c.tokens[c.pos], true
}

// Pos returns the position of the token Next would return.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek moves the cursor to the given position. Positions outside the
// sequence are ignored.
func (c *Cursor) Seek(pos int) {
	if pos < 0 || pos >= len(c.tokens) {
		return
	}
	c.pos = pos
}
