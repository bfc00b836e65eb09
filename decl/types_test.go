package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeClasses(t *testing.T) {
	assert.True(t, I32Type.IsInt())
	assert.True(t, I64Type.IsInt())
	assert.False(t, I32Type.IsFloat())

	assert.True(t, F32Type.IsFloat())
	assert.True(t, F64Type.IsFloat())
	assert.False(t, F64Type.IsInt())
}

func TestTypeEquals(t *testing.T) {
	assert.True(t, I32Type.Equals(I32Type))
	assert.False(t, I32Type.Equals(I64Type))
	assert.False(t, I32Type.Equals(F32Type))

	// Equality is by name, so a foreign instance still matches the singleton.
	assert.True(t, I32Type.Equals(&Type{Name: "i32"}))

	var nilType *Type
	assert.False(t, I32Type.Equals(nilType))
	assert.False(t, nilType.Equals(I32Type))
	assert.True(t, nilType.Equals(nilType))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "20", IntValue(20).String())
	assert.Equal(t, "20.2", FloatValue(20.2).String())
	assert.False(t, IntValue(20).IsFloat())
	assert.True(t, FloatValue(20.2).IsFloat())
}

func TestBuilderAllocatesUniqueIDs(t *testing.T) {
	b := NewBuilder()
	nodes := []Expr{
		b.IntLit(1),
		b.FloatLit(2.5),
		b.Ident("a"),
		b.Binary("+", b.IntLit(3), b.IntLit(4)),
	}
	seen := map[int64]bool{}
	for _, n := range nodes {
		assert.False(t, seen[n.ID()], "duplicate node id %d", n.ID())
		seen[n.ID()] = true
	}

	// A fresh builder restarts its counter; ids are only unique per tree.
	b2 := NewBuilder()
	b3 := NewBuilder()
	assert.Equal(t, b2.IntLit(0).ID(), b3.IntLit(0).ID())
}

func TestTypeSlotStartsEmpty(t *testing.T) {
	b := NewBuilder()
	lit := b.IntLit(20)
	assert.Nil(t, lit.Type())
	lit.SetType(I64Type)
	assert.True(t, lit.Type().Equals(I64Type))
}
