package infer

import (
	"testing"

	"github.com/panyam/tinfer/decl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngine() (*Inference, *decl.Builder) {
	inf := New(DefaultPolicy)
	inf.env = NewEnvironment()
	return inf, decl.NewBuilder()
}

func TestUnifyPlaceholderClassCheck(t *testing.T) {
	inf, b := setupEngine()

	lit := b.IntLit(20)
	ty, err := inf.inferExpr(lit)
	require.NoError(t, err)
	require.True(t, ty.IsPlaceholder())

	// Wrong class fails and leaves the node unpinned.
	err = inf.unify(ty, decl.F64Type)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Nil(t, lit.Type())

	// Either integer width is acceptable for an integer placeholder.
	require.NoError(t, inf.unify(ty, decl.I32Type))
	assert.True(t, lit.Type().Equals(decl.I32Type))
	assert.Empty(t, inf.env.unresolved)
}

func TestUnifyResolved(t *testing.T) {
	inf, _ := setupEngine()

	require.NoError(t, inf.unify(Resolved(decl.I32Type), decl.I32Type))

	err := inf.unify(Resolved(decl.I32Type), decl.I64Type)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "expected `i64` but got `i32`")
}

func TestUnifyPinsWholeEquivalenceClass(t *testing.T) {
	inf, b := setupEngine()
	env := inf.env

	// Simulate `a = 20; b = a` and then a constraint arriving through b.
	lit := b.IntLit(20)
	litTy, err := inf.inferExpr(lit)
	require.NoError(t, err)
	env.addBinding("a", litTy)

	occurrence := b.Ident("a")
	occTy, err := inf.inferExpr(occurrence)
	require.NoError(t, err)
	require.True(t, occTy.Equals(litTy), "alias occurrence must reuse the placeholder identity")
	env.addBinding("b", occTy)

	require.NoError(t, inf.unify(occTy, decl.I64Type))

	assert.True(t, lit.Type().Equals(decl.I64Type))
	assert.True(t, occurrence.Type().Equals(decl.I64Type))
	assert.Empty(t, env.unresolved)

	// The aliased name was rebound to a resolved entry.
	bound, found := env.findType("a")
	require.True(t, found)
	assert.Equal(t, TagResolved, bound.Tag)
	assert.True(t, bound.Type.Equals(decl.I64Type))
}

func TestUnifyFloatPlaceholder(t *testing.T) {
	inf, b := setupEngine()

	lit := b.FloatLit(2.5)
	ty, err := inf.inferExpr(lit)
	require.NoError(t, err)

	err = inf.unify(ty, decl.I32Type)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	require.NoError(t, inf.unify(ty, decl.F32Type))
	assert.True(t, lit.Type().Equals(decl.F32Type))
}

func TestResolveDefaultOnResolvedEntryFails(t *testing.T) {
	inf, b := setupEngine()

	// A resolved entry in the unresolved set is an engine bug, not a user
	// error: it must surface as an internal failure.
	lit := b.IntLit(1)
	inf.env.exprs[lit.ID()] = lit
	err := inf.resolveDefault(lit.ID(), Resolved(decl.I32Type))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)

	// An unregistered node id is likewise internal.
	err = inf.resolveDefault(9999, UnresolvedInt(9999))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
