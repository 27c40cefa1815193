package sortedmap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	seq := func(yield func(string, string) bool) {
		for _, kv := range [][2]string{{"one", "1"}, {"two", "it's"}} {
			if !yield(kv[0], kv[1]) {
				return
			}
		}
	}
	// Quotes inside keys and values are not escaped.
	assert.Equal(t, "{'one': '1', 'two': 'it's'}", Format(seq))
	assert.Equal(t, "{}", Format(func(func(string, string) bool) {}))
}

func TestFprint(t *testing.T) {
	m := newMap(t, 2)
	mustSet(t, m, "Betty", "Holberton")
	mustSet(t, m, "Ada", "Lovelace")

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, m))
	require.NoError(t, FprintReverse(&buf, m))
	assert.Equal(t,
		"{'Ada': 'Lovelace', 'Betty': 'Holberton'}\n{'Betty': 'Holberton', 'Ada': 'Lovelace'}\n",
		buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprintWriteError(t *testing.T) {
	m := newMap(t, 2)
	require.ErrorIs(t, Fprint(failingWriter{}, m), errWrite)
	require.ErrorIs(t, FprintReverse(failingWriter{}, m), errWrite)
}

func TestRenderReverseIsReverse(t *testing.T) {
	m := newMap(t, 4)
	for _, k := range []string{"q", "w", "e", "r", "t", "y"} {
		mustSet(t, m, k, k)
	}
	assert.Equal(t, "{'e': 'e', 'q': 'q', 'r': 'r', 't': 't', 'w': 'w', 'y': 'y'}", m.Render())
	assert.Equal(t, m.Render(), m.String())
	assert.Equal(t, "{'y': 'y', 'w': 'w', 't': 't', 'r': 'r', 'q': 'q', 'e': 'e'}", m.RenderReverse())
}

func TestFprintNilMap(t *testing.T) {
	var m *Map
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, m))
	require.NoError(t, FprintReverse(&buf, m))
	assert.Equal(t, "{}\n{}\n", buf.String())
}
