// Package state holds the dashboard's transient order board. Nothing here is
// durable: the board is a cache of the order service's rows, mutated only
// after the service confirms a change.
package state

import (
	"sync"

	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
)

// Board is the in-memory order collection. Snapshot order is the order the
// service returned the rows in. Mutations on one order are serialized by
// per-order in-flight markers; independent orders may mutate concurrently.
type Board struct {
	mu        sync.RWMutex
	orders    []entity.Order
	index     map[string]int
	inFlight  map[string]struct{}
	suspended bool
	loaded    bool
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		index:    make(map[string]int),
		inFlight: make(map[string]struct{}),
	}
}

// Replace swaps the whole collection in one step so readers never observe a
// partially applied refresh.
func (b *Board) Replace(orders []entity.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.orders = make([]entity.Order, len(orders))
	copy(b.orders, orders)
	b.reindex()
	b.loaded = true
}

// Snapshot returns a copy of the collection in presentation order.
func (b *Board) Snapshot() []entity.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]entity.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Get returns the order with the given ID.
func (b *Board) Get(id string) (entity.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i, ok := b.index[id]
	if !ok {
		return entity.Order{}, false
	}
	return b.orders[i], true
}

// Patch replaces the stored order matching o.ID in place. Returns false when
// the order is no longer on the board.
func (b *Board) Patch(o entity.Order) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := b.index[o.ID]
	if !ok {
		return false
	}
	b.orders[i] = o
	return true
}

// Remove deletes the order with the given ID, preserving the order of the
// remaining rows.
func (b *Board) Remove(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := b.index[id]
	if !ok {
		return false
	}
	b.orders = append(b.orders[:i], b.orders[i+1:]...)
	b.reindex()
	return true
}

// Begin marks an order as having a mutation in flight. Returns false if one
// is already in flight, in which case the caller must not start another.
func (b *Board) Begin(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, busy := b.inFlight[id]; busy {
		return false
	}
	b.inFlight[id] = struct{}{}
	return true
}

// End clears the in-flight marker for an order.
func (b *Board) End(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inFlight, id)
}

// InFlight reports whether a mutation is currently in flight for the order.
func (b *Board) InFlight(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, busy := b.inFlight[id]
	return busy
}

// SetSuspended flips the read-only suspended mode.
func (b *Board) SetSuspended(suspended bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.suspended = suspended
}

// Suspended reports whether the board is in read-only suspended mode.
func (b *Board) Suspended() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.suspended
}

// Loaded reports whether the board has been populated at least once.
func (b *Board) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

// reindex rebuilds the id index; callers hold the write lock.
func (b *Board) reindex() {
	b.index = make(map[string]int, len(b.orders))
	for i := range b.orders {
		b.index[b.orders[i].ID] = i
	}
}
