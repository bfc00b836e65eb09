package decl

import (
	"fmt"
)

// References to values
type Ref[T any] struct {
	Value T
}

// Env[T] holds per-name state for one inference pass (binding name to its
// current inference type). Supports basic scoping via the 'outer'
// environment, though the inference core only ever uses a single flat scope:
// rebinding a name overwrites its entry in place.
type Env[T any] struct {
	store map[string]*Ref[T]
	outer *Env[T]
}

// NewEnv[T] creates a new environment nested within an outer one.
// If outer is nil then returns a fresh top-level environment.
func NewEnv[T any](outer *Env[T]) *Env[T] {
	s := make(map[string]*Ref[T])
	return &Env[T]{store: s, outer: outer}
}

// GetRef retrieves a reference by name. It checks the current environment
// first, then recursively checks outer environments.
func (e *Env[T]) GetRef(name string) *Ref[T] {
	ref, ok := e.store[name]
	if (!ok || ref == nil) && e.outer != nil {
		// Not found here, try the outer scope
		ref = e.outer.GetRef(name)
	}
	return ref
}

func (e *Env[T]) Get(name string) (out T, found bool) {
	ref := e.GetRef(name)
	if ref != nil {
		out = ref.Value
		found = true
	}
	return
}

// Set creates or overwrites the entry for key in the current scope.
func (e *Env[T]) Set(key string, value T) {
	e.store[key] = &Ref[T]{Value: value}
}

// Push creates a new environment nested inside this one.
func (e *Env[T]) Push() *Env[T] {
	return NewEnv(e)
}

// Keys returns all keys in this environment (not including outer environments)
func (e *Env[T]) Keys() []string {
	keys := make([]string, 0, len(e.store))
	for k := range e.store {
		keys = append(keys, k)
	}
	return keys
}

// String representation for debugging
func (e *Env[T]) String() string {
	return fmt.Sprintf("Env[T]{store: %v, outer: %v}", e.Keys(), e.outer != nil)
}
