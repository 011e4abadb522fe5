package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_storefront/internal/core/ports"
)

const (
	DefaultProfileIdleTimeout = 30 * time.Minute
	profileCleanupInterval    = time.Minute
)

// Profile is the storefront context of one browser profile.
type Profile struct {
	ID      string
	Cart    *CartStore
	Session *IdentitySession
}

type profileEntry struct {
	profile  *Profile
	lastSeen time.Time
}

// Storefront creates profiles on first use and evicts them once idle. An
// evicted profile's cart comes back from its slot on the next visit; its
// session does not.
type Storefront struct {
	slot        ports.CartSlot
	log         logrus.FieldLogger
	idleTimeout time.Duration
	now         func() time.Time

	mu       sync.Mutex
	profiles map[string]*profileEntry
}

func NewStorefront(slot ports.CartSlot, idleTimeout time.Duration, logger logrus.FieldLogger) *Storefront {
	if idleTimeout <= 0 {
		idleTimeout = DefaultProfileIdleTimeout
	}

	return &Storefront{
		slot:        slot,
		log:         logger,
		idleTimeout: idleTimeout,
		now:         time.Now,
		profiles:    make(map[string]*profileEntry),
	}
}

func (s *Storefront) Profile(ctx context.Context, profileID string) *Profile {
	if p, ok := s.touch(profileID); ok {
		return p
	}

	// The slot read happens without holding mu.
	cart := NewCartStore(ctx, s.slot, profileID, s.log)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.profiles[profileID]; ok {
		e.lastSeen = s.now()
		return e.profile
	}

	p := &Profile{
		ID:      profileID,
		Cart:    cart,
		Session: NewIdentitySession(),
	}
	s.profiles[profileID] = &profileEntry{profile: p, lastSeen: s.now()}

	return p
}

func (s *Storefront) touch(profileID string) (*Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.profiles[profileID]
	if !ok {
		return nil, false
	}

	e.lastSeen = s.now()
	return e.profile, true
}

// RunBackgroundCleanup evicts idle profiles every minute until ctx is done.
func (s *Storefront) RunBackgroundCleanup(ctx context.Context) {
	ticker := time.NewTicker(profileCleanupInterval)
	defer ticker.Stop()

	s.log.Info("Profile cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Profile cleanup worker stopped")
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

// Cleanup evicts profiles not seen within the idle timeout and returns how
// many were evicted.
func (s *Storefront) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTimeout)
	n := 0
	for id, e := range s.profiles {
		if e.lastSeen.After(cutoff) {
			continue
		}

		e.profile.Session.Close()
		delete(s.profiles, id)
		n++
	}

	if n > 0 {
		s.log.WithField("profiles", n).Debug("Evicted idle profiles")
	}

	return n
}

func (s *Storefront) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.profiles)
}

func (s *Storefront) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.profiles {
		e.profile.Session.Close()
		delete(s.profiles, id)
	}
}
