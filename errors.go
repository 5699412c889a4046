package ntuple

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFields = errors.New("record type has no fields")
	ErrMissing  = errors.New("missing field")
	ErrIndex    = errors.New("record index out of bounds")
	ErrArity    = errors.New("wrong number of values for record type")
)

// InvalidArgumentError is returned by Build when it is given both a
// non-empty Source and named field values.
type InvalidArgumentError struct {
	Source []Field
	Named  []Field
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Build called with %s and %s, but it takes a field source or named fields, not both",
		formatFields(e.Source), formatFields(e.Named))
}

// InvalidFieldNameError reports a field name that cannot be used in a
// record type.
type InvalidFieldNameError struct {
	Name   string
	Index  int
	Reason string
}

func (e *InvalidFieldNameError) Error() string {
	return fmt.Sprintf("invalid field name %q at position %d: %s", e.Name, e.Index, e.Reason)
}

type TypeNameError struct {
	Name   string
	Reason string
}

func (e *TypeNameError) Error() string {
	return fmt.Sprintf("bad type name %q: %s", e.Name, e.Reason)
}

func formatFields(fields []Field) string {
	var b strings.Builder
	b.WriteByte('{')
	for k, f := range fields {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
	}
	b.WriteByte('}')
	return b.String()
}
