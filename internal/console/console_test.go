package console

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter(t *testing.T) {
	completer := NewCompleter()

	candidates, length := completer.Do([]rune("e"), 1)
	require.Len(t, candidates, 1)
	assert.Equal(t, 1, length)
	assert.True(t, strings.HasPrefix(string(candidates[0]), "xit"))

	candidates, _ = completer.Do([]rune(""), 0)
	assert.Len(t, candidates, 3)
}

func TestReadLine_Interrupt(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	// ctrl+c abandons a half-typed line, then ends input on an empty one
	_, err = w.WriteString("ls -l\ncd a\x03\x03")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	c, err := New("$ ", r, io.Discard, io.Discard)
	require.NoError(t, err)
	defer c.Close()

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ls -l", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Empty(t, line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
