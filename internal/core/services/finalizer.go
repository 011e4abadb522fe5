package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/ports"
)

type CheckoutState int32

const (
	StateIdle CheckoutState = iota
	StateSubmitting
	StateCommitted
	StateFailed
)

func (s CheckoutState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateSubmitting:
		return "SUBMITTING"
	case StateCommitted:
		return "COMMITTED"
	case StateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("CheckoutState(%d)", int32(s))
	}
}

// Finished reports whether the attempt reached COMMITTED or FAILED.
func (s CheckoutState) Finished() bool {
	return s == StateCommitted || s == StateFailed
}

// IdentitySource yields the identity signed in at the moment of the call.
type IdentitySource interface {
	Current() *domain.Identity
}

// Finalizer turns one checkout attempt into at most one ledger append. Once
// it has left IDLE it never goes back; a new attempt needs a new Finalizer.
type Finalizer struct {
	cart      *CartStore
	identity  IdentitySource
	ledger    ports.BookingLedger
	publisher ports.BookingEventPublisher
	log       logrus.FieldLogger

	state atomic.Int32
	done  chan struct{}

	mu      sync.Mutex
	booking *domain.Booking
	err     error
}

// NewFinalizer wires a checkout attempt. publisher may be nil.
func NewFinalizer(
	cart *CartStore,
	identity IdentitySource,
	ledger ports.BookingLedger,
	publisher ports.BookingEventPublisher,
	logger logrus.FieldLogger,
) *Finalizer {
	return &Finalizer{
		cart:      cart,
		identity:  identity,
		ledger:    ledger,
		publisher: publisher,
		log:       logger,
		done:      make(chan struct{}),
	}
}

func (f *Finalizer) State() CheckoutState {
	return CheckoutState(f.state.Load())
}

// Done is closed once the attempt is COMMITTED or FAILED.
func (f *Finalizer) Done() <-chan struct{} {
	return f.done
}

func (f *Finalizer) Booking() *domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.booking
}

func (f *Finalizer) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.err
}

// Finalize submits the cart as a booking. Guard failures leave the attempt
// IDLE so it can be retried after signing in or filling the cart. A call that
// finds the attempt already past IDLE returns ErrCheckoutStarted and writes
// nothing.
func (f *Finalizer) Finalize(ctx context.Context) (*domain.Booking, error) {
	if f.State() != StateIdle {
		return f.Booking(), domain.ErrCheckoutStarted
	}

	identity := f.identity.Current()
	if identity == nil {
		return f.guardFailed(domain.ErrNotAuthenticated)
	}

	snapshot := f.cart.Snapshot()
	if len(snapshot.Lines) == 0 {
		return f.guardFailed(domain.ErrEmptyCart)
	}

	if !f.state.CompareAndSwap(int32(StateIdle), int32(StateSubmitting)) {
		return f.Booking(), domain.ErrCheckoutStarted
	}

	booking := &domain.Booking{
		UserID:      identity.UID,
		UserEmail:   identity.Email,
		Items:       snapshot.Lines,
		TotalAmount: snapshot.TotalPrice,
	}

	log := f.log.WithFields(logrus.Fields{
		"user_id": identity.UID,
		"items":   len(booking.Items),
		"total":   booking.TotalAmount.StringFixed(2),
	})

	// The write is not cancelled when the caller goes away.
	if err := f.ledger.Append(context.WithoutCancel(ctx), booking); err != nil {
		log.WithError(err).Error("Failed to save booking")
		return nil, f.fail(fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err))
	}

	f.commit(ctx, booking, log)

	if f.publisher != nil {
		if err := f.publisher.PublishBookingPlaced(context.WithoutCancel(ctx), *booking); err != nil {
			log.WithError(err).Warn("Failed to publish booking placed event")
		}
	}

	return booking, nil
}

// guardFailed reports err unless another caller moved the attempt on while the
// guards ran, in which case the cart or session was changed by that attempt.
func (f *Finalizer) guardFailed(err error) (*domain.Booking, error) {
	if f.State() != StateIdle {
		return f.Booking(), domain.ErrCheckoutStarted
	}

	return nil, err
}

func (f *Finalizer) commit(ctx context.Context, booking *domain.Booking, log logrus.FieldLogger) {
	f.mu.Lock()
	f.booking = booking
	if err := f.cart.Clear(context.WithoutCancel(ctx)); err != nil {
		log.WithError(err).Warn("Booking saved but cart could not be cleared")
	}
	f.state.Store(int32(StateCommitted))
	f.mu.Unlock()

	close(f.done)
	log.WithField("booking_id", booking.ID).Info("Booking committed")
}

func (f *Finalizer) fail(err error) error {
	f.mu.Lock()
	f.err = err
	f.state.Store(int32(StateFailed))
	f.mu.Unlock()

	close(f.done)
	return err
}
