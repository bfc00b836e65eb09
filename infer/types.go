package infer

import (
	"fmt"

	"github.com/panyam/tinfer/decl"
)

type InferTag int

const (
	// TagUnresolvedInt marks an integer-class placeholder: the node is known
	// to be some integer but its width is still open.
	TagUnresolvedInt InferTag = iota

	// TagUnresolvedFloat marks a float-class placeholder.
	TagUnresolvedFloat

	// TagResolved wraps a pinned concrete type.
	TagResolved
)

// InferType is the provisional type attached to an expression during
// inference: either a class placeholder identified by the node that first
// produced it, or a resolved wrapper around a concrete type.
//
// Two placeholders denote the same equivalence class iff they carry the same
// tag and the same origin id. That value identity is the only mechanism for
// recognizing "the same still-unknown type" across nodes, so InferType must
// stay a plain comparable value.
type InferType struct {
	Tag    InferTag
	Origin int64      // id of the node that produced the placeholder
	Type   *decl.Type // set only when Tag == TagResolved
}

// UnresolvedInt creates an integer-class placeholder originating at the
// given node.
func UnresolvedInt(origin int64) InferType {
	return InferType{Tag: TagUnresolvedInt, Origin: origin}
}

// UnresolvedFloat creates a float-class placeholder.
func UnresolvedFloat(origin int64) InferType {
	return InferType{Tag: TagUnresolvedFloat, Origin: origin}
}

// Resolved wraps a concrete type. A resolved value carries no node identity
// of its own.
func Resolved(t *decl.Type) InferType {
	return InferType{Tag: TagResolved, Type: t}
}

// IsPlaceholder reports whether the type is still an unpinned placeholder.
func (t InferType) IsPlaceholder() bool {
	return t.Tag == TagUnresolvedInt || t.Tag == TagUnresolvedFloat
}

// Equals reports type identity: placeholders match on tag and origin,
// resolved values match on concrete-type equality only.
func (t InferType) Equals(other InferType) bool {
	if t.Tag != other.Tag {
		return false
	}
	if t.Tag == TagResolved {
		return t.Type.Equals(other.Type)
	}
	return t.Origin == other.Origin
}

func (t InferType) String() string {
	switch t.Tag {
	case TagUnresolvedInt:
		return fmt.Sprintf("int_%d", t.Origin)
	case TagUnresolvedFloat:
		return fmt.Sprintf("float_%d", t.Origin)
	case TagResolved:
		return t.Type.String()
	}
	return fmt.Sprintf("<invalid infer tag %d>", t.Tag)
}
