// Package anyio selects a record writer by format name.
package anyio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brimdata/ntuple"
	"github.com/brimdata/ntuple/yamlio"
)

var Formats = []string{"text", "json", "yaml"}

type WriteCloser interface {
	Write(*ntuple.Record) error
	Close() error
}

func NewWriter(w io.WriteCloser, format string) (WriteCloser, error) {
	switch format {
	case "text", "":
		return &textWriter{w}, nil
	case "json":
		return &jsonWriter{Closer: w, encoder: json.NewEncoder(w)}, nil
	case "yaml":
		return yamlio.NewWriter(w), nil
	}
	return nil, fmt.Errorf("no such format: \"%s\"", format)
}

// textWriter writes each record on its own line as formatted by
// Record.String.
type textWriter struct {
	io.WriteCloser
}

func (w *textWriter) Write(rec *ntuple.Record) error {
	_, err := io.WriteString(w.WriteCloser, rec.String()+"\n")
	return err
}

// jsonWriter writes newline-delimited JSON objects.
type jsonWriter struct {
	io.Closer
	encoder *json.Encoder
}

func (w *jsonWriter) Write(rec *ntuple.Record) error {
	return w.encoder.Encode(rec)
}
