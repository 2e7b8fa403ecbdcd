package casbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrInvalidLexeme(t *testing.T) {
	require := require.New(t)

	err := ErrInvalidLexeme.New('_', 0, 0, 0)
	require.True(ErrInvalidLexeme.Is(err))
	require.False(ErrUnexpectedToken.Is(err))
	require.False(ErrExhaustedTokens.Is(err))
	require.Equal(
		"invalid lexeme '_' encountered on line 0 at column 0 (index 0) during lexing",
		err.Error(),
	)
}

func TestParserErrorKinds(t *testing.T) {
	require := require.New(t)

	err := ErrUnexpectedToken.New(NewToken(CommaToken, ",", 0, 9), 0, 9)
	require.True(ErrUnexpectedToken.Is(err))
	require.Equal(
		`unexpected token comma "," encountered on line 0 at column 9 during parsing`,
		err.Error(),
	)

	err = ErrExhaustedTokens.New(14)
	require.True(ErrExhaustedTokens.Is(err))
	require.Equal(
		"token sequence exhausted at position 14 during parsing",
		err.Error(),
	)
}
