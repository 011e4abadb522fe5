package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_storefront/internal/core/ports"
)

const (
	DefaultCheckoutRetention = time.Hour
	checkoutCleanupInterval  = time.Minute
)

type checkoutAttempt struct {
	finalizer *Finalizer
	profile   *Profile
	createdAt time.Time
}

// reusableBy reports whether p may join the attempt. An attempt that never
// started is bound to the cart it was made for, which an evicted profile no
// longer owns.
func (a checkoutAttempt) reusableBy(p *Profile) bool {
	return a.profile == p || a.finalizer.State() != StateIdle
}

// CheckoutRegistry hands out one Finalizer per (profile, idempotency key), so
// a repeated checkout request joins the attempt already made instead of
// starting a second one. Requests without a key share the profile's current
// attempt until it is COMMITTED or FAILED.
type CheckoutRegistry struct {
	ledger    ports.BookingLedger
	publisher ports.BookingEventPublisher
	log       logrus.FieldLogger
	retention time.Duration
	now       func() time.Time

	mu       sync.Mutex
	attempts map[string]checkoutAttempt
	unkeyed  map[string]checkoutAttempt
}

func NewCheckoutRegistry(
	ledger ports.BookingLedger,
	publisher ports.BookingEventPublisher,
	retention time.Duration,
	logger logrus.FieldLogger,
) *CheckoutRegistry {
	if retention <= 0 {
		retention = DefaultCheckoutRetention
	}

	return &CheckoutRegistry{
		ledger:    ledger,
		publisher: publisher,
		log:       logger,
		retention: retention,
		now:       time.Now,
		attempts:  make(map[string]checkoutAttempt),
		unkeyed:   make(map[string]checkoutAttempt),
	}
}

// Attempt returns the checkout attempt for key, creating it if needed. With an
// empty key it returns the profile's unfinished attempt, or a new one once the
// previous attempt has finished.
func (r *CheckoutRegistry) Attempt(profile *Profile, key string) *Finalizer {
	newFinalizer := func() *Finalizer {
		return NewFinalizer(profile.Cart, profile.Session, r.ledger, r.publisher,
			r.log.WithFields(logrus.Fields{"profile_id": profile.ID, "idempotency_key": key}))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if key == "" {
		if a, ok := r.unkeyed[profile.ID]; ok && !a.finalizer.State().Finished() && a.reusableBy(profile) {
			return a.finalizer
		}

		f := newFinalizer()
		r.unkeyed[profile.ID] = checkoutAttempt{finalizer: f, profile: profile, createdAt: r.now()}
		return f
	}

	id := profile.ID + "/" + key
	if a, ok := r.attempts[id]; ok && a.reusableBy(profile) {
		return a.finalizer
	}

	f := newFinalizer()
	r.attempts[id] = checkoutAttempt{finalizer: f, profile: profile, createdAt: r.now()}
	return f
}

// prune must be called with mu held. Attempts still submitting are kept.
// Attempts without a key are dropped once finished, or once expired while
// still IDLE, and are not counted.
func (r *CheckoutRegistry) prune() int {
	cutoff := r.now().Add(-r.retention)
	n := 0
	for id, a := range r.attempts {
		if a.createdAt.After(cutoff) || a.finalizer.State() == StateSubmitting {
			continue
		}

		delete(r.attempts, id)
		n++
	}

	for profileID, a := range r.unkeyed {
		state := a.finalizer.State()
		if state.Finished() || (state == StateIdle && !a.createdAt.After(cutoff)) {
			delete(r.unkeyed, profileID)
		}
	}

	return n
}

// RunBackgroundCleanup prunes expired attempts every minute until ctx is done.
func (r *CheckoutRegistry) RunBackgroundCleanup(ctx context.Context) {
	ticker := time.NewTicker(checkoutCleanupInterval)
	defer ticker.Stop()

	r.log.Info("Checkout cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			r.log.Info("Checkout cleanup worker stopped")
			return
		case <-ticker.C:
			r.Cleanup()
		}
	}
}

// Cleanup drops attempts older than the retention window that are not
// submitting, and returns how many were dropped.
func (r *CheckoutRegistry) Cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.prune()
	if n > 0 {
		r.log.WithField("attempts", n).Debug("Pruned checkout attempts")
	}

	return n
}

func (r *CheckoutRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.attempts)
}
