package ports

import (
	"context"
	"errors"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
)

// ErrIndexUnavailable is returned by a ledger that cannot serve an ordered
// query because the backing index does not exist.
var ErrIndexUnavailable = errors.New("index unavailable")

// CartSlot is a durable key-value slot scoped to one browser profile.
type CartSlot interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type BookingLedger interface {
	// Append stores the booking and fills in its ID and CreatedAt.
	Append(ctx context.Context, booking *domain.Booking) error
	QueryByUser(ctx context.Context, userID string, orderByDateDesc bool) ([]domain.Booking, error)
}

type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (domain.Identity, error)
	SignIn(ctx context.Context, email, password string) (domain.Identity, error)
	UpdateDisplayName(ctx context.Context, uid, displayName string) (domain.Identity, error)
}

type BookingEventPublisher interface {
	PublishBookingPlaced(ctx context.Context, booking domain.Booking) error
}

type Catalog interface {
	All() []domain.Event
	Get(id string) (domain.Event, bool)
}
