package ntuple

import (
	"fmt"
	"go/token"
	"unicode"
)

// IsIdentifier returns true iff s can be used unquoted as a field or
// type name: a letter or underscore followed by letters, digits, or
// underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	first := true
	for _, c := range s {
		if !idChar(c) && (first || !unicode.IsDigit(c)) {
			return false
		}
		first = false
	}
	return true
}

func idChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

// IsReserved returns true iff s is a reserved word.
func IsReserved(s string) bool {
	return token.IsKeyword(s)
}

func checkTypeName(name string) error {
	if !IsIdentifier(name) {
		return &TypeNameError{Name: name, Reason: "not an identifier"}
	}
	if IsReserved(name) {
		return &TypeNameError{Name: name, Reason: "reserved word"}
	}
	return nil
}

// CheckFieldNames returns an *InvalidFieldNameError for the first name
// in names that is not an identifier, is a reserved word, begins with
// an underscore, or repeats an earlier name.
func CheckFieldNames(names []string) error {
	return checkFieldNames(names, false)
}

// checkTypeFields is CheckFieldNames for the field names of a record
// type, which may hold the placeholders left by RenameFields: the name
// "_k" is accepted at position k.
func checkTypeFields(names []string) error {
	return checkFieldNames(names, true)
}

func checkFieldNames(names []string, placeholders bool) error {
	seen := make(map[string]struct{}, len(names))
	for k, name := range names {
		if reason := fieldNameProblem(k, name, seen, placeholders); reason != "" {
			return &InvalidFieldNameError{Name: name, Index: k, Reason: reason}
		}
		seen[name] = struct{}{}
	}
	return nil
}

// RenameFields returns a copy of names where each name that
// CheckFieldNames would reject is replaced with its positional
// placeholder: "_0" for the first field, "_1" for the second, and so on.
func RenameFields(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for k, name := range names {
		if fieldNameProblem(k, name, seen, false) != "" {
			name = placeholder(k)
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func placeholder(k int) string {
	return fmt.Sprintf("_%d", k)
}

func fieldNameProblem(k int, name string, seen map[string]struct{}, placeholders bool) string {
	switch {
	case !IsIdentifier(name):
		return "not an identifier"
	case IsReserved(name):
		return "reserved word"
	case name[0] == '_' && !(placeholders && name == placeholder(k)):
		return "begins with an underscore"
	}
	if _, ok := seen[name]; ok {
		return "duplicate field"
	}
	return ""
}
