package store

import (
	"encoding/json"
	"iter"
	"slices"
)

type keyed[K comparable] interface {
	Key() K
}

// Collection is an insertion-ordered list of entities keyed by id.
// It is a value: every "mutating" method returns a new Collection and leaves
// the receiver untouched, so states handed out earlier never change.
// Records inside are shared between states and must be replaced, not
// modified in place.
type Collection[K comparable, T keyed[K]] struct {
	items []T
}

// NewCollection copies items into a new Collection.
func NewCollection[K comparable, T keyed[K]](items ...T) Collection[K, T] {
	return Collection[K, T]{items: slices.Clone(items)}
}

func (c Collection[K, T]) Len() int { return len(c.items) }

// Items returns the records in insertion order.
func (c Collection[K, T]) Items() []T {
	return slices.Clone(c.items)
}

// All iterates the records in insertion order.
func (c Collection[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range c.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (c Collection[K, T]) index(id K) int {
	return slices.IndexFunc(c.items, func(item T) bool { return item.Key() == id })
}

// Get looks a record up by id.
func (c Collection[K, T]) Get(id K) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c Collection[K, T]) Has(id K) bool {
	return c.index(id) >= 0
}

// Append adds item at the end.
func (c Collection[K, T]) Append(item T) Collection[K, T] {
	items := make([]T, len(c.items), len(c.items)+1)
	copy(items, c.items)
	return Collection[K, T]{items: append(items, item)}
}

// Replace swaps the record with item's id for item, keeping its position.
// Reports false (and returns c unchanged) when no record matches.
func (c Collection[K, T]) Replace(item T) (Collection[K, T], bool) {
	i := c.index(item.Key())
	if i < 0 {
		return c, false
	}
	items := slices.Clone(c.items)
	items[i] = item
	return Collection[K, T]{items: items}, true
}

// Remove drops the record with the given id.
func (c Collection[K, T]) Remove(id K) (Collection[K, T], bool) {
	i := c.index(id)
	if i < 0 {
		return c, false
	}
	items := make([]T, 0, len(c.items)-1)
	items = append(items, c.items[:i]...)
	items = append(items, c.items[i+1:]...)
	return Collection[K, T]{items: items}, true
}

// Filter returns the records matching keep, in insertion order.
func (c Collection[K, T]) Filter(keep func(T) bool) []T {
	out := []T{}
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c Collection[K, T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

func (c *Collection[K, T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.items = items
	return nil
}
