package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/ports"
)

type HistoryService struct {
	ledger ports.BookingLedger
	log    logrus.FieldLogger
}

func NewHistoryService(ledger ports.BookingLedger, logger logrus.FieldLogger) *HistoryService {
	return &HistoryService{
		ledger: ledger,
		log:    logger,
	}
}

// History returns the identity's bookings, newest first. If the ledger cannot
// order by date it falls back to the unordered query and sorts the result here.
func (s *HistoryService) History(ctx context.Context, identity *domain.Identity) ([]domain.Booking, error) {
	if identity == nil {
		return nil, domain.ErrNotAuthenticated
	}

	bookings, err := s.ledger.QueryByUser(ctx, identity.UID, true)
	if err == nil {
		return bookings, nil
	}

	if !errors.Is(err, ports.ErrIndexUnavailable) {
		s.log.WithError(err).WithField("user_id", identity.UID).Error("Failed to fetch bookings")
		return nil, fmt.Errorf("%w: %v", domain.ErrHistoryUnavailable, err)
	}

	s.log.WithField("user_id", identity.UID).Warn("Ordered booking query unavailable, falling back to unordered query")

	bookings, err = s.ledger.QueryByUser(ctx, identity.UID, false)
	if err != nil {
		s.log.WithError(err).WithField("user_id", identity.UID).Error("Failed to fetch bookings")
		return nil, fmt.Errorf("%w: %v", domain.ErrHistoryUnavailable, err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}
