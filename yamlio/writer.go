package yamlio

import (
	"fmt"
	"io"

	"github.com/brimdata/ntuple"
	"gopkg.in/yaml.v3"
)

// Writer writes each record as a YAML document holding a mapping of the
// record's fields in field order.
type Writer struct {
	writer  io.WriteCloser
	encoder *yaml.Encoder
	n       int
}

func NewWriter(w io.WriteCloser) *Writer {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	return &Writer{
		writer:  w,
		encoder: encoder,
	}
}

func (w *Writer) Write(rec *ntuple.Record) error {
	node, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	if err := w.encoder.Encode(node); err != nil {
		return err
	}
	w.n++
	return nil
}

// Close flushes the YAML stream and closes the underlying writer.  A
// Writer that wrote no records leaves its output empty.
func (w *Writer) Close() error {
	var err error
	if w.n > 0 {
		err = w.encoder.Close()
	}
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}

// EncodeRecord returns a YAML mapping node for rec.  Values that are
// themselves records become nested mappings.
func EncodeRecord(rec *ntuple.Record) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for k, f := range rec.Fields() {
		v, err := rec.Index(k)
		if err != nil {
			return nil, err
		}
		val, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: field %s: %w", rec.Name(), f, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

func encodeValue(v any) (*yaml.Node, error) {
	if rec, ok := v.(*ntuple.Record); ok {
		return EncodeRecord(rec)
	}
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return &node, nil
}
