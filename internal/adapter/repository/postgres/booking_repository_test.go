package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/ticket_storefront/internal/adapter/repository/postgres"
	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/ports"
	"github.com/srgjo27/ticket_storefront/internal/platform/database"
)

func newBooking(userID string) *domain.Booking {
	return &domain.Booking{
		UserID:    userID,
		UserEmail: "a@x.com",
		Items: []domain.CartLine{
			{EventID: "A", Title: "Summer Jazz Festival", UnitPrice: decimal.RequireFromString("50.00"), Quantity: 2, Location: "Oslo"},
			{EventID: "B", Title: "Indie Rock Night", UnitPrice: decimal.RequireFromString("20.00"), Quantity: 1},
		},
		TotalAmount: decimal.RequireFromString("120.00"),
	}
}

func TestBookingRepository_AppendAndQuery(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgres.NewBookingRepository(db)
	userID := uuid.NewString()

	first := newBooking(userID)
	require.NoError(t, repo.Append(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := newBooking(userID)
	second.Items = second.Items[:1]
	second.TotalAmount = decimal.RequireFromString("100.00")
	require.NoError(t, repo.Append(ctx, second))

	bookings, err := repo.QueryByUser(ctx, userID, true)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
	assert.True(t, bookings[1].TotalAmount.Equal(decimal.NewFromInt(120)))

	items := bookings[1].Items
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].EventID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "B", items[1].EventID)
}

func TestBookingRepository_QueryIsScopedToUser(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgres.NewBookingRepository(db)

	require.NoError(t, repo.Append(ctx, newBooking(uuid.NewString())))

	bookings, err := repo.QueryByUser(ctx, uuid.NewString(), false)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingRepository_OrderedQueryNeedsIndex(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := postgres.NewBookingRepository(db)
	userID := uuid.NewString()

	require.NoError(t, repo.Append(ctx, newBooking(userID)))

	_, err := db.ExecContext(ctx, `DROP INDEX IF EXISTS `+postgres.HistoryIndexName)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.CreateHistoryIndex(context.Background(), db))
	})

	_, err = repo.QueryByUser(ctx, userID, true)
	assert.True(t, errors.Is(err, ports.ErrIndexUnavailable))

	bookings, err := repo.QueryByUser(ctx, userID, false)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
