package services

import (
	"sync"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
)

// IdentitySession tracks who is signed in on one browser profile and fans
// changes out to subscribers.
type IdentitySession struct {
	mu          sync.Mutex
	current     *domain.Identity
	subscribers map[int]chan *domain.Identity
	nextID      int
	closed      bool
}

func NewIdentitySession() *IdentitySession {
	return &IdentitySession{
		subscribers: make(map[int]chan *domain.Identity),
	}
}

func (s *IdentitySession) Current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyIdentity(s.current)
}

func (s *IdentitySession) Set(identity domain.Identity) {
	s.publish(&identity)
}

func (s *IdentitySession) Clear() {
	s.publish(nil)
}

// Subscribe returns a channel that first yields the current identity and then
// every change. Slow subscribers only see the latest value. The returned func
// releases the subscription.
func (s *IdentitySession) Subscribe() (<-chan *domain.Identity, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *domain.Identity, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	ch <- copyIdentity(s.current)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if sub, ok := s.subscribers[id]; ok {
				delete(s.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close releases every subscription.
func (s *IdentitySession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *IdentitySession) publish(identity *domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = copyIdentity(identity)
	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- copyIdentity(identity)
	}
}

func copyIdentity(identity *domain.Identity) *domain.Identity {
	if identity == nil {
		return nil
	}

	c := *identity
	return &c
}
