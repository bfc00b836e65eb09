package infer

import (
	"errors"
	"fmt"
)

// The three error kinds the pass can report. All are terminal: the pass
// stops at the first one and the tree is left partially typed.
var (
	// ErrNotFound reports an identifier with no binding in scope.
	ErrNotFound = errors.New("identifier not found")

	// ErrTypeMismatch reports an incompatible concrete type: a
	// concrete-vs-concrete comparison failure, or a placeholder whose class
	// cannot accept the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInternal reports an inference-engine invariant violation. This is a
	// bug in the engine, not a user error.
	ErrInternal = errors.New("internal inference error")
)

func notFoundErr(name string) error {
	return fmt.Errorf("%w: `%s` not found in this scope", ErrNotFound, name)
}

func mismatchErr(expected, found string) error {
	return fmt.Errorf("%w: expected `%s` but got `%s`", ErrTypeMismatch, expected, found)
}

func internalErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
