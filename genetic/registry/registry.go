package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknown is wrapped by Lookup when a name is not registered
var ErrUnknown = errors.New("not registered")

// Registry maps names to values (evaluators, strategies) for configuration lookup
type Registry[T any] struct {
	kind    string
	entries map[string]T
	mu      sync.RWMutex
}

// New creates an empty registry; kind names the entries in error messages
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]T),
	}
}

// Register adds a named value (must be called before lookups start)
func (r *Registry[T]) Register(name string, value T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("%s name is empty", r.kind)
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%s %q already registered", r.kind, name)
	}
	r.entries[name] = value
	return nil
}

// MustRegister panics on registration errors; used for built-in tables
func (r *Registry[T]) MustRegister(name string, value T) *Registry[T] {
	if err := r.Register(name, value); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the named value or an error wrapping ErrUnknown
func (r *Registry[T]) Lookup(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", r.kind, name, ErrUnknown)
	}
	return v, nil
}

// Names returns registered names in sorted order
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
