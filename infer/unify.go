package infer

import (
	"github.com/panyam/tinfer/decl"
)

// unify enforces that t is compatible with the expected concrete type and,
// for placeholders, commits expected everywhere the placeholder's
// equivalence class is visible.
//
// This is not a general unifier: there is no substitution composition and no
// occurs check. Every node is either a placeholder or fully concrete, and
// two distinct placeholders are never unified against each other, only
// against a concrete expectation. One call pins one equivalence class.
func (inf *Inference) unify(t InferType, expected *decl.Type) error {
	switch t.Tag {
	case TagUnresolvedInt:
		if !expected.IsInt() {
			return mismatchErr(expected.String(), "int")
		}
		inf.pinClass(t, expected)
	case TagUnresolvedFloat:
		if !expected.IsFloat() {
			return mismatchErr(expected.String(), "float")
		}
		inf.pinClass(t, expected)
	case TagResolved:
		// A resolved value carries no outstanding placeholder, so there is
		// nothing to cascade; it either already matches or never will.
		if !t.Type.Equals(expected) {
			return mismatchErr(expected.String(), t.Type.String())
		}
	default:
		return internalErr("unreachable inference tag %d in unify", t.Tag)
	}
	return nil
}

// pinClass writes expected into every node sharing t's placeholder identity
// and cascades transitively: enclosing binary expressions drag in their
// sibling operand, binary nodes drag in their operand subtrees, pinned nodes
// drag in every other node with the same placeholder identity, and
// occurrences that alias a name rebind it. The worklist runs until the whole
// reachable constraint set is pinned, so nested binary trees resolve all the
// way down.
func (inf *Inference) pinClass(t InferType, expected *decl.Type) {
	env := inf.env
	pinned := make(map[int64]bool)
	work := env.classMembers(t)

	for len(work) > 0 {
		id := work[0]
		work = work[1:]
		if pinned[id] {
			continue
		}
		pinned[id] = true

		// Everything sharing this node's placeholder identity goes with it.
		// Read the entry before pin removes it.
		if entry, ok := env.unresolved[id]; ok {
			work = append(work, env.classMembers(entry)...)
		}
		env.pin(id, expected)

		if parentID, ok := env.parentBin[id]; ok {
			if bin, ok := env.exprs[parentID].(*decl.BinaryExpr); ok {
				work = append(work, parentID, otherOperand(bin, id).ID())
			}
		}
		if bin, ok := env.exprs[id].(*decl.BinaryExpr); ok {
			work = append(work, bin.Left.ID(), bin.Right.ID())
		}
		if name, ok := env.bindingID[id]; ok {
			env.addBinding(name, Resolved(expected))
			delete(env.bindingID, id)
		}
	}
}

// classMembers returns the ids of every unresolved node carrying the given
// placeholder identity.
func (env *Environment) classMembers(t InferType) []int64 {
	var ids []int64
	for id, entry := range env.unresolved {
		if entry.Equals(t) {
			ids = append(ids, id)
		}
	}
	return ids
}

// pin writes the concrete type into one node's slot and drops it from the
// unresolved set.
func (env *Environment) pin(id int64, expected *decl.Type) {
	if e, ok := env.exprs[id]; ok {
		e.SetType(expected)
	}
	delete(env.unresolved, id)
}
