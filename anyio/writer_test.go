package anyio

import (
	"bytes"
	"testing"

	"github.com/brimdata/ntuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCloser struct {
	*bytes.Buffer
}

func (nopCloser) Close() error { return nil }

func TestNewWriter(t *testing.T) {
	rec, err := ntuple.Build("Point", ntuple.Pairs{{Name: "x", Value: 3}, {Name: "y", Value: "five"}})
	require.NoError(t, err)
	cases := map[string]string{
		"text": "Point(x=3, y=\"five\")\n",
		"json": "{\"x\":3,\"y\":\"five\"}\n",
		"yaml": "x: 3\ny: five\n",
	}
	for format, expected := range cases {
		var buf bytes.Buffer
		w, err := NewWriter(nopCloser{&buf}, format)
		require.NoError(t, err)
		require.NoError(t, w.Write(rec))
		require.NoError(t, w.Close())
		assert.Equal(t, expected, buf.String(), format)
	}
	_, err = NewWriter(nopCloser{&bytes.Buffer{}}, "zng")
	assert.EqualError(t, err, `no such format: "zng"`)
}
