package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silverdollar/internal/game/strip"
)

func TestPlayToTheEnd(t *testing.T) {
	s, err := strip.Parse("o_o_")
	require.NoError(t, err)

	var out bytes.Buffer
	err = Play(s, strings.NewReader("2 2\n2 1\n"), &out)
	require.NoError(t, err)

	assert.Equal(t,
		"o_o_ Next move? Illegal move!\n"+
			"o_o_ Next move? "+
			"oo__You win!!\n",
		out.String())
	assert.Equal(t, "oo__", s.String())
}

func TestPlayAlreadyOver(t *testing.T) {
	s, err := strip.Parse("oo___")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Play(s, strings.NewReader(""), &out))
	assert.Equal(t, "oo___You win!!\n", out.String())
}

func TestPlayInputClosed(t *testing.T) {
	s, err := strip.Parse("_o")
	require.NoError(t, err)

	var out bytes.Buffer
	err = Play(s, strings.NewReader("1"), &out)
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, "_o", s.String())
}

func TestPlayRejectsNonInteger(t *testing.T) {
	s, err := strip.Parse("_o")
	require.NoError(t, err)

	var out bytes.Buffer
	err = Play(s, strings.NewReader("one 1"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected integer")
	assert.Equal(t, "_o", s.String())
}
