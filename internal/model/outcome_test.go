package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevealedType_Equal(t *testing.T) {
	intOrFloat := NewUnion(NewBuiltin("int"), NewBuiltin("float"))

	assert.True(t, RevealedType{LineNumber: 3, Type: intOrFloat}.Equal(RevealedType{LineNumber: 3, Type: NewUnion(NewBuiltin("float"), NewBuiltin("int"))}))
	assert.False(t, RevealedType{LineNumber: 3, Type: intOrFloat}.Equal(RevealedType{LineNumber: 4, Type: intOrFloat}))
	assert.False(t, RevealedType{LineNumber: 3, Type: intOrFloat}.Equal(RevealedType{LineNumber: 3, Type: NewBuiltin("int")}))
	assert.False(t, RevealedType{LineNumber: 3, Type: intOrFloat}.Equal(Flaw{LineNumber: 3}))
}

func TestFlaw_MatchesAnyFlawOnTheSameLine(t *testing.T) {
	expected := Flaw{LineNumber: 7}

	assert.True(t, expected.Equal(Flaw{LineNumber: 7, Message: "Incompatible types in assignment"}))
	assert.True(t, Flaw{LineNumber: 7, Message: "one"}.Equal(Flaw{LineNumber: 7, Message: "two"}))
	assert.False(t, expected.Equal(Flaw{LineNumber: 8}))
	assert.False(t, expected.Equal(Mismatch{LineNumber: 7, Assigned: NewBuiltin("int"), Declared: NewBuiltin("str")}))
	assert.False(t, expected.Equal(RevealedType{LineNumber: 7, Type: NewBuiltin("int")}))
}

func TestMismatch_RolesAreOrdered(t *testing.T) {
	intToStr := Mismatch{LineNumber: 1, Assigned: NewBuiltin("int"), Declared: NewBuiltin("str")}
	strToInt := Mismatch{LineNumber: 1, Assigned: NewBuiltin("str"), Declared: NewBuiltin("int")}

	assert.True(t, intToStr.Equal(Mismatch{LineNumber: 1, Assigned: NewBuiltin("builtins.int"), Declared: NewBuiltin("str")}))
	assert.False(t, intToStr.Equal(strToInt))
	assert.False(t, intToStr.Equal(Mismatch{LineNumber: 2, Assigned: NewBuiltin("int"), Declared: NewBuiltin("str")}))
}

func TestOutcomeKinds(t *testing.T) {
	assert.Equal(t, KindRevealedType, RevealedType{}.Kind())
	assert.Equal(t, KindFlaw, Flaw{}.Kind())
	assert.Equal(t, KindMismatch, Mismatch{}.Kind())
}
