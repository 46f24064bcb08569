// Package memory holds the in-memory record stores backing every screen.
// Record data is never persisted; each store is an ordered slice guarded by
// a mutex, seeded with sample data at startup.
package memory

import (
	"context"
	"sync"

	"github.com/planops/ruleboard/internal/repository"
)

// Collection is an ordered in-memory store of records identified by a
// string id.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

// NewCollection creates an empty collection using id to extract identity.
func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

// Create appends an item; the id must not already be present.
func (c *Collection[T]) Create(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, have := range c.items {
		if c.id(have) == c.id(item) {
			return repository.ErrDuplicate
		}
	}
	c.items = append(c.items, item)
	return nil
}

// Get returns the item with the given id.
func (c *Collection[T]) Get(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, repository.ErrNotFound
}

// Update replaces the item with the same id, keeping its position.
func (c *Collection[T]) Update(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, have := range c.items {
		if c.id(have) == c.id(item) {
			c.items[i] = item
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the item with the given id.
func (c *Collection[T]) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, have := range c.items {
		if c.id(have) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// List returns a copy of all items in insertion order.
func (c *Collection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...), nil
}

// Replace swaps the entire contents, used when seeding sample data.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}
