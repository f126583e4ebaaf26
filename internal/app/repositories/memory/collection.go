// Package memory implements the local data source variant: an explicitly
// constructed, mutex-guarded in-process collection per entity type. Mutations
// are visible to subsequent reads in the same process. There is no
// transactional isolation; the admin tool assumes a single logical writer.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// Collection holds every record of one entity type. T is stored by value;
// callers always receive copies, never aliases into the collection.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64

	identityOf  func(*T) (int64, string)
	setIdentity func(*T, int64, string)
}

// NewCollection creates an empty collection. identityOf reads a record's
// internal id and public id; setIdentity writes them.
func NewCollection[T any](identityOf func(*T) (int64, string), setIdentity func(*T, int64, string)) *Collection[T] {
	return &Collection[T]{
		identityOf:  identityOf,
		setIdentity: setIdentity,
	}
}

// List returns a snapshot of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the record with the given public id.
func (c *Collection[T]) Find(publicID string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if _, pid := c.identityOf(&c.items[i]); pid == publicID {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Insert stores a new record, assigning the internal id and, when the record
// does not carry one already (seed data does), a fresh public id.
func (c *Collection[T]) Insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	_, pid := c.identityOf(&item)
	if pid == "" {
		pid = uuid.NewString()
	}
	c.setIdentity(&item, c.nextID, pid)
	c.items = append(c.items, item)
	return item
}

// Mutate applies fn to the record with the given public id under the write
// lock and returns the updated copy. The record's identity cannot be changed
// by fn; it is restored afterwards.
func (c *Collection[T]) Mutate(publicID string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	for i := range c.items {
		id, pid := c.identityOf(&c.items[i])
		if pid != publicID {
			continue
		}
		if err := fn(&c.items[i]); err != nil {
			return zero, err
		}
		c.setIdentity(&c.items[i], id, pid)
		return c.items[i], nil
	}
	return zero, apperrors.ErrNotFound
}

// Replace swaps the stored record for item, preserving identity (full-replace
// update semantics).
func (c *Collection[T]) Replace(publicID string, item T) (T, error) {
	return c.Mutate(publicID, func(t *T) error {
		*t = item
		return nil
	})
}

// Remove deletes the record with the given public id.
func (c *Collection[T]) Remove(publicID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if _, pid := c.identityOf(&c.items[i]); pid == publicID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Search runs the shared filter/sort/paginate pipeline over a snapshot of the
// collection.
func (c *Collection[T]) Search(match func(T) bool, schema search.Schema[T], params search.Params) search.Page[T] {
	return search.Run(c.List(), match, schema, params)
}

// Count returns how many records satisfy pred.
func (c *Collection[T]) Count(pred func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for i := range c.items {
		if pred(c.items[i]) {
			n++
		}
	}
	return n
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
