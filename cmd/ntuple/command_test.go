package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brimdata/ntuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCloser struct {
	*bytes.Buffer
}

func (nopCloser) Close() error { return nil }

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-log.path", "/dev/null"}, args...)
	err := New(&stderr).Run(args, strings.NewReader(stdin), nopCloser{&stdout})
	return stdout.String(), err
}

func TestCommandFields(t *testing.T) {
	out, err := run(t, "", "Point", "x=3", "y=5")
	require.NoError(t, err)
	assert.Equal(t, "Point(x=3, y=5)\n", out)

	out, err = run(t, "", "-f", "json", "Msg", "text=hello world", "ok=true")
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hello world","ok":true}`+"\n", out)
}

func TestCommandInput(t *testing.T) {
	const input = "informal: Hi there!\nformal: Hello; nice to meet you.\n---\nformal: Yo\ninformal: Hey\n"
	out, err := run(t, input, "-i", "-", "Greetings")
	require.NoError(t, err)
	const expected = `Greetings(informal="Hi there!", formal="Hello; nice to meet you.")
Greetings(formal="Yo", informal="Hey")
`
	assert.Equal(t, expected, out)
}

func TestCommandEmptyInputYAML(t *testing.T) {
	out, err := run(t, "", "-i", "-", "-f", "yaml", "T")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCommandBuildErrorYAML(t *testing.T) {
	_, err := run(t, "", "-f", "yaml", "T", "x=1", "x=2")
	var nameErr *ntuple.InvalidFieldNameError
	require.ErrorAs(t, err, &nameErr)
	assert.EqualError(t, err, `invalid field name "x" at position 1: duplicate field`)
}

func TestCommandInputAndFields(t *testing.T) {
	_, err := run(t, "a: 5\n", "-i", "-", "Point", "b=7")
	var argErr *ntuple.InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestCommandRename(t *testing.T) {
	_, err := run(t, "", "T", "x=1", "if=2")
	var nameErr *ntuple.InvalidFieldNameError
	require.ErrorAs(t, err, &nameErr)

	out, err := run(t, "", "-rename", "T", "x=1", "if=2")
	require.NoError(t, err)
	assert.Equal(t, "T(x=1, _1=2)\n", out)
}

func TestCommandConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "ntuple.yaml")
	const doc = `
builder:
  rename: true
log:
  path: /dev/null
  level: warn
`
	require.NoError(t, os.WriteFile(conf, []byte(doc), 0644))
	out, err := run(t, "", "-config", conf, "-f", "yaml", "T", "x=1", "x=2")
	require.NoError(t, err)
	assert.Equal(t, "x: 1\n_1: 2\n", out)

	// Flags after -config override it.
	_, err = run(t, "", "-config", conf, "-rename=false", "T", "x=1", "x=2")
	var nameErr *ntuple.InvalidFieldNameError
	require.ErrorAs(t, err, &nameErr)
}

func TestCommandVerbose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ntuple.log")
	_, err := run(t, "", "-verbose", "-log.path", logPath, "Point", "x=1")
	require.NoError(t, err)
	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"record type"`)
	assert.Contains(t, string(b), `type Point struct`)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "")
	assert.ErrorIs(t, err, errUsage)

	_, err = run(t, "", "T", "novalue")
	assert.EqualError(t, err, `field argument "novalue": expected name=value`)

	_, err = run(t, "", "-f", "csv", "T", "x=1")
	assert.EqualError(t, err, `no such format: "csv"`)

	_, err = run(t, "", "-i", filepath.Join(t.TempDir(), "missing.yaml"), "T")
	assert.Error(t, err)
}
