package lang

import (
	"maps"
	"slices"
)

// Env is the language's sole mutable state: a flat mapping from variable
// name to Value. The grammar defines no function declarations, so there is
// no nested or lexical scoping; assignment overwrites and reading an unbound
// name is an error.
//
// An Env is owned by a single evaluation session and is not safe for
// concurrent use. Concurrent sessions must each own a private Env.
type Env struct {
	vars map[string]Value
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Get returns the value bound to name.
// The boolean reports whether the name is bound; there is no implicit zero
// or empty value for unbound names.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.vars[name]

	return v, ok
}

// Set binds name to value, overwriting any prior binding.
func (e *Env) Set(name string, value Value) {
	e.vars[name] = value
}

// Len returns the number of bound variables.
func (e *Env) Len() int { return len(e.vars) }

// Names returns the bound variable names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// Snapshot returns a copy of the current bindings. The copy is detached:
// later assignments do not affect it. This mapping is the primary observable
// output for embedding callers and for tests.
func (e *Env) Snapshot() map[string]Value {
	return maps.Clone(e.vars)
}

// ToMap converts the current bindings to native Go types for serialization.
func (e *Env) ToMap() map[string]any {
	result := make(map[string]any, len(e.vars))

	for name, value := range e.vars {
		result[name] = value.Interface()
	}

	return result
}
