// Package ntuple builds one-off named records: immutable tuples whose
// positions carry field names, created from a list of name/value pairs
// without first declaring a record type.
//
// Record types are interned in a Context keyed by type name and the
// ordered field-name sequence, so building many records with the same
// shape creates the TypeRecord once.  Records themselves are never shared.
package ntuple

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// TypeRecord describes the shape of a record: a type name and an ordered
// sequence of field names.  A TypeRecord is immutable and may be shared
// by any number of Records.
type TypeRecord struct {
	id     int
	name   string
	fields []string
	lut    map[string]int
}

func newTypeRecord(id int, name string, fields []string) *TypeRecord {
	t := &TypeRecord{
		id:     id,
		name:   name,
		fields: slices.Clone(fields),
	}
	t.createLUT()
	return t
}

// ID returns the identifier assigned to this type by its Context.
func (t *TypeRecord) ID() int {
	return t.id
}

func (t *TypeRecord) Name() string {
	return t.name
}

// Fields returns a copy of the field names in positional order.
func (t *TypeRecord) Fields() []string {
	return slices.Clone(t.fields)
}

func (t *TypeRecord) Arity() int {
	return len(t.fields)
}

func (t *TypeRecord) IndexOfField(field string) (int, bool) {
	k, ok := t.lut[field]
	return k, ok
}

func (t *TypeRecord) HasField(field string) bool {
	_, ok := t.lut[field]
	return ok
}

// New returns a record of this type holding values in positional order.
func (t *TypeRecord) New(values ...any) (*Record, error) {
	if len(values) != len(t.fields) {
		return nil, fmt.Errorf("%s: %w: expected %d, got %d", t.name, ErrArity, len(t.fields), len(values))
	}
	return &Record{typ: t, values: slices.Clone(values)}, nil
}

func (t *TypeRecord) String() string {
	return t.name + "(" + strings.Join(t.fields, ", ") + ")"
}

// Definition returns source text describing this type as a Go struct
// whose fields are annotated with their positions.
func (t *TypeRecord) Definition() string {
	width := 0
	for _, f := range t.fields {
		if len(f) > width {
			width = len(f)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", t.name)
	for k, f := range t.fields {
		fmt.Fprintf(&b, "\t%-*s any // %d\n", width, f, k)
	}
	b.WriteString("}\n")
	return b.String()
}

func (t *TypeRecord) createLUT() {
	t.lut = make(map[string]int, len(t.fields))
	for k, f := range t.fields {
		t.lut[f] = k
	}
}
