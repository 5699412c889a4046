package ntuple

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Field is a name/value pair destined for one position of a record.
type Field struct {
	Name  string
	Value any
}

func NewField(name string, value any) Field {
	return Field{Name: name, Value: value}
}

func (f Field) String() string {
	return fmt.Sprintf("%s=%#v", f.Name, f.Value)
}

// A Source supplies the fields of a record to Build.
type Source interface {
	Fields() []Field
}

// Pairs is an ordered Source.  A record built from Pairs has its fields
// in exactly the order of the slice.
type Pairs []Field

func (p Pairs) Fields() []Field {
	return p
}

// Map is an unordered Source.  Callers must not rely on the field order
// of records built from a Map and should find positions with
// TypeRecord.IndexOfField.  (The current implementation orders the
// fields by name.)
type Map map[string]any

func (m Map) Fields() []Field {
	keys := maps.Keys(m)
	slices.Sort(keys)
	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, Field{key, m[key]})
	}
	return fields
}

func splitFields(fields []Field) ([]string, []any) {
	names := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
		values = append(values, f.Value)
	}
	return names, values
}
