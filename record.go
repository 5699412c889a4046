package ntuple

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/exp/slices"
)

// A Record is an immutable tuple of values whose positions are named by
// its TypeRecord.  Field i of the type names value i of the record.
// Records are made by Build, Builder.Build, and TypeRecord.New.  The zero
// Record has no type and behaves as an empty record with no name.
type Record struct {
	typ    *TypeRecord
	values []any
}

func (r *Record) Type() *TypeRecord {
	return r.typ
}

func (r *Record) Name() string {
	if r.typ == nil {
		return ""
	}
	return r.typ.name
}

// Fields returns a copy of the record's field names in positional order.
func (r *Record) Fields() []string {
	return slices.Clone(r.fields())
}

func (r *Record) fields() []string {
	if r.typ == nil {
		return nil
	}
	return r.typ.fields
}

func (r *Record) Len() int {
	return len(r.values)
}

// Index returns the value at position k.
func (r *Record) Index(k int) (any, error) {
	if k < 0 || k >= len(r.values) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndex, k, len(r.values))
	}
	return r.values[k], nil
}

// Lookup returns the value of the named field and whether the record has
// such a field.
func (r *Record) Lookup(field string) (any, bool) {
	if r.typ == nil {
		return nil, false
	}
	k, ok := r.typ.lut[field]
	if !ok {
		return nil, false
	}
	return r.values[k], true
}

// Access returns the value of the named field or an error wrapping
// ErrMissing if the record has no such field.
func (r *Record) Access(field string) (any, error) {
	v, ok := r.Lookup(field)
	if !ok {
		return nil, r.missing(field)
	}
	return v, nil
}

func (r *Record) missing(field string) error {
	if s := r.suggest(field); s != "" {
		return fmt.Errorf("%s: %w %q (did you mean %q?)", r.Name(), ErrMissing, field, s)
	}
	return fmt.Errorf("%s: %w %q", r.Name(), ErrMissing, field)
}

// suggest returns the field name closest to field when it is close enough
// to plausibly be a misspelling.
func (r *Record) suggest(field string) string {
	var best string
	limit := len(field)/2 + 1
	for _, f := range r.fields() {
		if d := levenshtein.ComputeDistance(field, f); d < limit {
			best, limit = f, d
		}
	}
	return best
}

// Values returns a copy of the record's values in positional order.
func (r *Record) Values() []any {
	return slices.Clone(r.values)
}

// AsMap returns a new map from field name to value.
func (r *Record) AsMap() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, f := range r.fields() {
		m[f] = r.values[k]
	}
	return m
}

// Replace returns a new record of the same type as r with the indicated
// fields set to new values.  r is left unchanged.
func (r *Record) Replace(fields ...Field) (*Record, error) {
	values := slices.Clone(r.values)
	for _, f := range fields {
		if r.typ == nil {
			return nil, r.missing(f.Name)
		}
		k, ok := r.typ.lut[f.Name]
		if !ok {
			return nil, r.missing(f.Name)
		}
		values[k] = f.Value
	}
	return &Record{typ: r.typ, values: values}, nil
}

// String formats the record as its type name followed by its fields,
// e.g., Point(x=3, y=5).
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString(r.Name())
	b.WriteByte('(')
	for k, f := range r.fields() {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Field{f, r.values[k]}.String())
	}
	b.WriteByte(')')
	return b.String()
}

// MarshalJSON encodes the record as a JSON object whose keys appear in
// field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for k, f := range r.fields() {
		if k > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
