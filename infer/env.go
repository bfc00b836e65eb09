package infer

import (
	"github.com/panyam/tinfer/decl"
)

// Environment is the mutable inference state for one function body. It is
// created when the pass starts and discarded when it finishes; nothing is
// shared across functions.
//
// Unification can rewrite entries for nodes visited earlier in the walk, so
// readers must always re-fetch from the maps rather than cache a node's type
// across a unify call.
type Environment struct {
	// bindings maps each bound name to its current inference type. The scope
	// is flat: the outer link of the Env chain is never populated, and
	// rebinding a name overwrites its entry.
	bindings *decl.Env[InferType]

	// exprs registers every visited expression node by id, so unification
	// and defaulting can write concrete types into node slots later.
	exprs map[int64]decl.Expr

	// unresolved holds the placeholder of every node whose concrete type is
	// still open. Entries are removed as unification pins them.
	unresolved map[int64]InferType

	// bindingID records that a node id is an occurrence of a named binding,
	// so pinning that occurrence also rebinds the name.
	bindingID map[int64]string

	// parentBin records tree adjacency: child node id to enclosing binary
	// node id. Pinning one operand also pins the parent and the sibling.
	parentBin map[int64]int64
}

func NewEnvironment() *Environment {
	return &Environment{
		bindings:   decl.NewEnv[InferType](nil),
		exprs:      make(map[int64]decl.Expr),
		unresolved: make(map[int64]InferType),
		bindingID:  make(map[int64]string),
		parentBin:  make(map[int64]int64),
	}
}

func (env *Environment) addBinding(name string, t InferType) {
	env.bindings.Set(name, t)
}

func (env *Environment) findType(name string) (InferType, bool) {
	return env.bindings.Get(name)
}

// otherOperand returns the sibling of the given child within a binary node.
func otherOperand(bin *decl.BinaryExpr, childID int64) decl.Expr {
	if bin.Left.ID() == childID {
		return bin.Right
	}
	return bin.Left
}
