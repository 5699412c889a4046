package ntuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifier(t *testing.T) {
	for _, s := range []string{"x", "_", "_x1", "héllo", "X9_y"} {
		assert.True(t, IsIdentifier(s), s)
	}
	for _, s := range []string{"", "1x", "a b", "a-b", "a.b", "$x"} {
		assert.False(t, IsIdentifier(s), s)
	}
}

func TestRenameFields(t *testing.T) {
	in := []string{"a", "", "a", "if", "_b", "b", "b"}
	assert.Equal(t, []string{"a", "_1", "_2", "_3", "_4", "b", "_6"}, RenameFields(in))
	assert.Equal(t, []string{"a", "", "a", "if", "_b", "b", "b"}, in)
	assert.NoError(t, checkTypeFields(RenameFields(in)))
	assert.Error(t, CheckFieldNames(RenameFields(in)))
}

func TestCheckTypeFieldsPlaceholders(t *testing.T) {
	assert.NoError(t, checkTypeFields([]string{"_0", "x", "_2"}))
	assert.EqualError(t, checkTypeFields([]string{"x", "_0"}), `invalid field name "_0" at position 1: begins with an underscore`)
	assert.EqualError(t, checkTypeFields([]string{"_y"}), `invalid field name "_y" at position 0: begins with an underscore`)
	assert.EqualError(t, CheckFieldNames([]string{"_0"}), `invalid field name "_0" at position 0: begins with an underscore`)
}
