package casbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokensHash(t *testing.T) {
	require := require.New(t)

	compact := Tokens{
		NewToken(IdentifierToken, "sin", 0, 0),
		NewToken(LeftParenToken, "(", 0, 3),
		NewToken(IdentifierToken, "x", 0, 4),
		NewToken(RightParenToken, ")", 0, 5),
		NewToken(EOFToken, "", 0, 6),
	}
	spaced := Tokens{
		NewToken(IdentifierToken, "sin", 0, 1),
		NewToken(LeftParenToken, "(", 0, 5),
		NewToken(IdentifierToken, "x", 0, 7),
		NewToken(RightParenToken, ")", 0, 9),
		NewToken(EOFToken, "", 0, 11),
	}

	h1, err := compact.Hash()
	require.NoError(err)
	h2, err := spaced.Hash()
	require.NoError(err)
	require.Equal(h1, h2)

	other := Tokens{
		NewToken(IdentifierToken, "cos", 0, 0),
		NewToken(LeftParenToken, "(", 0, 3),
		NewToken(IdentifierToken, "x", 0, 4),
		NewToken(RightParenToken, ")", 0, 5),
		NewToken(EOFToken, "", 0, 6),
	}
	h3, err := other.Hash()
	require.NoError(err)
	require.NotEqual(h1, h3)
}

func TestTokensHashLiterals(t *testing.T) {
	require := require.New(t)

	ten := Tokens{
		NewLiteralToken(IntToken, "10", 0, 0, int64(10)),
		NewToken(EOFToken, "", 0, 2),
	}
	eleven := Tokens{
		NewLiteralToken(IntToken, "11", 0, 0, int64(11)),
		NewToken(EOFToken, "", 0, 2),
	}

	h1, err := ten.Hash()
	require.NoError(err)
	h2, err := eleven.Hash()
	require.NoError(err)
	require.NotEqual(h1, h2)
}

func TestCursor(t *testing.T) {
	require := require.New(t)

	tokens := Tokens{
		NewToken(IdentifierToken, "sin", 0, 0),
		NewToken(LeftParenToken, "(", 0, 3),
		NewToken(IdentifierToken, "x", 0, 4),
		NewToken(RightParenToken, ")", 0, 5),
		NewToken(EOFToken, "", 0, 6),
	}

	cursor := NewCursor(tokens)
	require.Equal(0, cursor.Pos())

	tok, ok := cursor.Peek()
	require.True(ok)
	require.True(tok == tokens[0])
	require.Equal(0, cursor.Pos())

	for i := range tokens {
		tok, ok := cursor.Next()
		require.True(ok)
		require.True(tok == tokens[i])
		require.Equal(i+1, cursor.Pos())
	}

	tok, ok = cursor.Next()
	require.False(ok)
	require.Nil(tok)

	cursor.Seek(2)
	require.Equal(2, cursor.Pos())
	tok, ok = cursor.Peek()
	require.True(ok)
	require.True(tok == tokens[2])

	cursor.Seek(-1)
	require.Equal(2, cursor.Pos())
	cursor.Seek(len(tokens))
	require.Equal(2, cursor.Pos())
}
