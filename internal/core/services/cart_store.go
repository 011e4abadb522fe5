package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/ports"
)

const cartSlotPrefix = "cart:"

func CartSlotKey(profileID string) string {
	return cartSlotPrefix + profileID
}

// CartSnapshot is a point-in-time copy of a cart.
type CartSnapshot struct {
	Lines      []domain.CartLine `json:"items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

// CartStore owns the cart of one browser profile. Every mutation is applied
// in memory and then written in full to the profile's cart slot.
type CartStore struct {
	mu   sync.Mutex
	cart *domain.Cart
	slot ports.CartSlot
	key  string
	log  logrus.FieldLogger
}

// NewCartStore rehydrates the profile's cart from its slot. A missing or
// unreadable slot gives an empty cart.
func NewCartStore(ctx context.Context, slot ports.CartSlot, profileID string, logger logrus.FieldLogger) *CartStore {
	s := &CartStore{
		cart: domain.NewCart(nil),
		slot: slot,
		key:  CartSlotKey(profileID),
		log:  logger.WithField("profile_id", profileID),
	}

	data, ok, err := slot.Get(ctx, s.key)
	if err != nil {
		s.log.WithError(err).Warn("Failed to read stored cart, starting empty")
		return s
	}

	if !ok {
		return s
	}

	cart, err := domain.UnmarshalCart([]byte(data))
	if err != nil {
		s.log.WithError(err).Warn("Stored cart is corrupt, starting empty")
		return s
	}

	s.cart = cart
	return s
}

func (s *CartStore) AddItem(ctx context.Context, event domain.Event, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(event, quantity)
	return s.persist(ctx)
}

// SetQuantity reports false, without error, when the event is not in the cart.
func (s *CartStore) SetQuantity(ctx context.Context, eventID string, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(eventID, quantity) {
		return false, nil
	}

	return true, s.persist(ctx)
}

func (s *CartStore) RemoveItem(ctx context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Remove(eventID) {
		return false, nil
	}

	return true, s.persist(ctx)
}

func (s *CartStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	return s.persist(ctx)
}

func (s *CartStore) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Lines()
}

func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.TotalPrice()
}

func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.IsEmpty()
}

func (s *CartStore) Snapshot() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CartSnapshot{
		Lines:      s.cart.Lines(),
		TotalPrice: s.cart.TotalPrice(),
	}
}

// persist must be called with mu held.
func (s *CartStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.cart)
	if err != nil {
		return fmt.Errorf("%w: encoding cart: %v", domain.ErrCartNotPersisted, err)
	}

	if err := s.slot.Set(ctx, s.key, string(data)); err != nil {
		s.log.WithError(err).Error("Failed to persist cart")
		return fmt.Errorf("%w: %v", domain.ErrCartNotPersisted, err)
	}

	return nil
}
