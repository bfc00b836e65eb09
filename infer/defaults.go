package infer

import (
	"github.com/panyam/tinfer/decl"
)

// Defaults is the policy table choosing which concrete tag each placeholder
// class falls back to when nothing constrained it. The table is caller
// configuration; the engine only cares that each slot is in the right class.
type Defaults struct {
	Int   *decl.Type
	Float *decl.Type
}

// DefaultPolicy mirrors untyped-literal defaulting in most languages: the
// wider tag of each class.
var DefaultPolicy = Defaults{Int: decl.I64Type, Float: decl.F64Type}

// applyDefaults concretizes every placeholder the pass never pinned. Entry
// order must not matter: entries never overlap once unification has removed
// everything it touched.
func (inf *Inference) applyDefaults() error {
	for id, t := range inf.env.unresolved {
		if err := inf.resolveDefault(id, t); err != nil {
			return err
		}
	}
	inf.env.unresolved = make(map[int64]InferType)
	return nil
}

// resolveDefault assigns the policy type for one leftover placeholder. A
// resolved entry in the unresolved set is an engine bug and fails loudly.
func (inf *Inference) resolveDefault(id int64, t InferType) error {
	expr, ok := inf.env.exprs[id]
	if !ok {
		return internalErr("unresolved node %d has no registered expression", id)
	}
	switch t.Tag {
	case TagUnresolvedInt:
		expr.SetType(inf.defaults.Int)
	case TagUnresolvedFloat:
		expr.SetType(inf.defaults.Float)
	default:
		return internalErr("defaulting invoked on already-resolved node %d (%s)", id, t)
	}
	return nil
}
