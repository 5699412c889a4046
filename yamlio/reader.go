// Package yamlio reads record fields from and writes records to YAML
// streams.  Mappings keep their document order in both directions, so a
// YAML mapping is an ordered source of fields.
package yamlio

import (
	"errors"
	"fmt"
	"io"

	"github.com/brimdata/ntuple"
	"gopkg.in/yaml.v3"
)

type Reader struct {
	decoder *yaml.Decoder
	n       int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{decoder: yaml.NewDecoder(r)}
}

// Read returns the fields of the next document in the stream, in
// document order.  At the end of the stream Read returns nil, nil.
func (r *Reader) Read() (ntuple.Pairs, error) {
	var doc yaml.Node
	if err := r.decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	r.n++
	pairs, err := DecodePairs(&doc)
	if err != nil {
		return nil, fmt.Errorf("document %d: %w", r.n, err)
	}
	return pairs, nil
}

// DecodePairs converts a YAML mapping node, or a document node holding
// one, into Pairs in mapping order.
func DecodePairs(node *yaml.Node) (ntuple.Pairs, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	pairs := make(ntuple.Pairs, 0, len(node.Content)/2)
	for k := 0; k+1 < len(node.Content); k += 2 {
		key, val := node.Content[k], node.Content[k+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: field name must be a scalar", key.Line)
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: field %s: %w", val.Line, key.Value, err)
		}
		pairs = append(pairs, ntuple.NewField(key.Value, v))
	}
	return pairs, nil
}

// DecodeValue decodes s as a YAML scalar so that, e.g., "3" becomes an
// int and "true" a bool.  Anything that fails to decode is kept as the
// string s.
func DecodeValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	switch v.(type) {
	case map[string]any, []any:
		return s
	}
	if v == nil && s != "null" && s != "~" {
		return s
	}
	return v
}
