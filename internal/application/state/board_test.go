package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
)

func sampleOrders() []entity.Order {
	return []entity.Order{
		{ID: "o1", Status: enum.OrderStatusUnprocessed},
		{ID: "o2", Status: enum.OrderStatusPending},
		{ID: "o3", Status: enum.OrderStatusReady},
	}
}

func TestReplacePreservesOrder(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.Loaded())

	b.Replace(sampleOrders())

	require.True(t, b.Loaded())
	snap := b.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "o1", snap[0].ID)
	assert.Equal(t, "o2", snap[1].ID)
	assert.Equal(t, "o3", snap[2].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	b := NewBoard()
	b.Replace(sampleOrders())

	snap := b.Snapshot()
	snap[0].Status = enum.OrderStatusCancelled

	got, ok := b.Get("o1")
	require.True(t, ok)
	assert.Equal(t, enum.OrderStatusUnprocessed, got.Status)
}

func TestPatchUpdatesInPlace(t *testing.T) {
	b := NewBoard()
	b.Replace(sampleOrders())

	updated := entity.Order{ID: "o2", Status: enum.OrderStatusReady}
	require.True(t, b.Patch(updated))

	snap := b.Snapshot()
	assert.Equal(t, "o2", snap[1].ID, "patch must not reorder")
	assert.Equal(t, enum.OrderStatusReady, snap[1].Status)

	assert.False(t, b.Patch(entity.Order{ID: "missing"}))
}

func TestRemoveKeepsRemainingOrder(t *testing.T) {
	b := NewBoard()
	b.Replace(sampleOrders())

	require.True(t, b.Remove("o2"))

	snap := b.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "o1", snap[0].ID)
	assert.Equal(t, "o3", snap[1].ID)

	_, ok := b.Get("o2")
	assert.False(t, ok)
	assert.False(t, b.Remove("o2"))

	// Index must be rebuilt after removal.
	got, ok := b.Get("o3")
	require.True(t, ok)
	assert.Equal(t, "o3", got.ID)
}

func TestInFlightMarkers(t *testing.T) {
	b := NewBoard()
	b.Replace(sampleOrders())

	require.True(t, b.Begin("o1"))
	assert.True(t, b.InFlight("o1"))
	assert.False(t, b.Begin("o1"), "second mutation on the same order must be refused")
	assert.True(t, b.Begin("o2"), "independent orders mutate concurrently")

	b.End("o1")
	assert.False(t, b.InFlight("o1"))
	assert.True(t, b.Begin("o1"))
}

func TestSuspended(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.Suspended())

	b.SetSuspended(true)
	assert.True(t, b.Suspended())

	b.SetSuspended(false)
	assert.False(t, b.Suspended())
}
