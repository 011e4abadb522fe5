package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/ports"
	"github.com/srgjo27/ticket_storefront/internal/core/ports/mocks"
	"github.com/srgjo27/ticket_storefront/internal/core/services"
)

func bookingAt(day int) domain.Booking {
	return domain.Booking{
		UserID:    "u1",
		CreatedAt: time.Date(2024, 5, day, 12, 0, 0, 0, time.UTC),
	}
}

var signedIn = &domain.Identity{UID: "u1", Email: "a@x.com"}

func TestHistoryService_OrderedQuery(t *testing.T) {
	ledger := mocks.NewBookingLedger(t)
	svc := services.NewHistoryService(ledger, nullLogger())

	want := []domain.Booking{bookingAt(3), bookingAt(1)}
	ledger.On("QueryByUser", mock.Anything, "u1", true).Return(want, nil).Once()

	got, err := svc.History(context.Background(), signedIn)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHistoryService_FallsBackWhenIndexMissing(t *testing.T) {
	ledger := mocks.NewBookingLedger(t)
	svc := services.NewHistoryService(ledger, nullLogger())

	ledger.On("QueryByUser", mock.Anything, "u1", true).
		Return(nil, fmt.Errorf("%w: bookings_user_created_idx", ports.ErrIndexUnavailable)).Once()
	ledger.On("QueryByUser", mock.Anything, "u1", false).
		Return([]domain.Booking{bookingAt(1), bookingAt(3), bookingAt(2)}, nil).Once()

	got, err := svc.History(context.Background(), signedIn)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].CreatedAt.Day())
	assert.Equal(t, 2, got[1].CreatedAt.Day())
	assert.Equal(t, 1, got[2].CreatedAt.Day())
}

func TestHistoryService_FallbackFailure(t *testing.T) {
	ledger := mocks.NewBookingLedger(t)
	svc := services.NewHistoryService(ledger, nullLogger())

	ledger.On("QueryByUser", mock.Anything, "u1", true).Return(nil, ports.ErrIndexUnavailable).Once()
	ledger.On("QueryByUser", mock.Anything, "u1", false).Return(nil, errors.New("timeout")).Once()

	_, err := svc.History(context.Background(), signedIn)

	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)
}

func TestHistoryService_OtherErrorsDoNotFallBack(t *testing.T) {
	ledger := mocks.NewBookingLedger(t)
	svc := services.NewHistoryService(ledger, nullLogger())

	ledger.On("QueryByUser", mock.Anything, "u1", true).Return(nil, errors.New("connection reset")).Once()

	_, err := svc.History(context.Background(), signedIn)

	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)
	ledger.AssertNotCalled(t, "QueryByUser", mock.Anything, "u1", false)
}

func TestHistoryService_RequiresIdentity(t *testing.T) {
	ledger := mocks.NewBookingLedger(t)
	svc := services.NewHistoryService(ledger, nullLogger())

	_, err := svc.History(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
