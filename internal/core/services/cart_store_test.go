package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/services"
)

func TestCartStore_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	store := services.NewCartStore(ctx, slot, "p1", nullLogger())

	require.NoError(t, store.AddItem(ctx, event("a", 50), 2))
	require.NoError(t, store.AddItem(ctx, event("b", 20), 1))
	_, err := store.SetQuantity(ctx, "a", 3)
	require.NoError(t, err)
	_, err = store.RemoveItem(ctx, "b")
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	writes := slot.Writes()
	assert.Len(t, writes, 5)
	assert.JSONEq(t, `[]`, writes[4])
	assert.True(t, store.TotalPrice().IsZero())
}

func TestCartStore_RoundTripThroughSlot(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()

	store := services.NewCartStore(ctx, slot, "p1", nullLogger())
	require.NoError(t, store.AddItem(ctx, event("A", 50), 2))
	require.NoError(t, store.AddItem(ctx, event("B", 20), 1))

	rehydrated := services.NewCartStore(ctx, slot, "p1", nullLogger())

	assert.Equal(t, store.Lines(), rehydrated.Lines())
	assert.Equal(t, "120.00", rehydrated.TotalPrice().StringFixed(2))
}

func TestCartStore_ProfilesDoNotShareSlots(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()

	store := services.NewCartStore(ctx, slot, "p1", nullLogger())
	require.NoError(t, store.AddItem(ctx, event("A", 50), 1))

	other := services.NewCartStore(ctx, slot, "p2", nullLogger())

	assert.True(t, other.IsEmpty())
}

func TestCartStore_CorruptSlotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	slot.data[services.CartSlotKey("p1")] = `{"broken`

	store := services.NewCartStore(ctx, slot, "p1", nullLogger())

	assert.True(t, store.IsEmpty())
	assert.True(t, store.TotalPrice().IsZero())
}

func TestCartStore_UnreadableSlotStartsEmpty(t *testing.T) {
	slot := newMemorySlot()
	slot.getErr = errors.New("connection refused")

	store := services.NewCartStore(context.Background(), slot, "p1", nullLogger())

	assert.True(t, store.IsEmpty())
}

func TestCartStore_SetQuantityMissingEvent(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	store := services.NewCartStore(ctx, slot, "p1", nullLogger())
	require.NoError(t, store.AddItem(ctx, event("a", 10), 1))

	found, err := store.SetQuantity(ctx, "missing", 3)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, slot.Writes(), 1)
}

func TestCartStore_SetQuantityZeroEmptiesCart(t *testing.T) {
	ctx := context.Background()
	store := services.NewCartStore(ctx, newMemorySlot(), "p1", nullLogger())
	require.NoError(t, store.AddItem(ctx, event("a", 10), 4))

	found, err := store.SetQuantity(ctx, "a", 0)

	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, store.IsEmpty())
	assert.True(t, store.TotalPrice().IsZero())
}

func TestCartStore_WriteFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	store := services.NewCartStore(ctx, slot, "p1", nullLogger())
	slot.setErr = errors.New("read only replica")

	err := store.AddItem(ctx, event("a", 10), 2)

	assert.ErrorIs(t, err, domain.ErrCartNotPersisted)
	assert.Equal(t, "20", store.TotalPrice().String())
}
