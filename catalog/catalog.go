// Package catalog holds the fixed named tag sets a run places into dungeons
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ErrEmptyName is returned when a catalog entry has no name
var ErrEmptyName = errors.New("catalog: empty name")

// Options is an immutable ordered set of tags for one category (tiles, items or occupants)
type Options[T ~string] struct {
	names []T
	index map[T]int
}

// New builds a catalog preserving the given order; empty and duplicate names are rejected
func New[T ~string](names ...T) (*Options[T], error) {
	o := &Options[T]{
		names: make([]T, 0, len(names)),
		index: make(map[T]int, len(names)),
	}
	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := o.index[name]; exists {
			return nil, fmt.Errorf("catalog: duplicate name %q", name)
		}
		o.index[name] = len(o.names)
		o.names = append(o.names, name)
	}
	return o, nil
}

// MustNew is New for literal catalogs known to be valid
func MustNew[T ~string](names ...T) *Options[T] {
	o, err := New(names...)
	if err != nil {
		panic(err)
	}
	return o
}

// Get returns the named tag and whether it is part of the catalog
func (o *Options[T]) Get(name string) (T, bool) {
	if _, ok := o.index[T(name)]; !ok {
		var zero T
		return zero, false
	}
	return T(name), true
}

// MustGet panics when name is not in the catalog
func (o *Options[T]) MustGet(name string) T {
	tag, ok := o.Get(name)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown name %q", name))
	}
	return tag
}

// Has reports membership
func (o *Options[T]) Has(tag T) bool {
	_, ok := o.index[tag]
	return ok
}

func (o *Options[T]) Len() int {
	return len(o.names)
}

// Names returns a copy of the tags in catalog order
func (o *Options[T]) Names() []T {
	return slices.Clone(o.names)
}

// Choose returns one uniformly random tag
func (o *Options[T]) Choose(rng *rand.Rand) T {
	o.mustNotBeEmpty()
	return o.names[rng.IntN(len(o.names))]
}

// Sample returns min(n, Len()) pairwise distinct tags drawn without replacement
func (o *Options[T]) Sample(rng *rand.Rand, n int) []T {
	o.mustNotBeEmpty()
	n = max(0, min(n, len(o.names)))

	// Partial Fisher-Yates over a scratch copy
	pool := slices.Clone(o.names)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func (o *Options[T]) mustNotBeEmpty() {
	if len(o.names) == 0 {
		panic("catalog: sampling an empty catalog")
	}
}
