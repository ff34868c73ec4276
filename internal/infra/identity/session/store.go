package session

import (
	"sync"

	"authkit/internal/domain/entity"
	"authkit/internal/domain/service"
)

// Store is the cached session of a gateway. Every change is published to subscribers
// while the lock is held, so subscribers observe changes in the order they were made.
type Store struct {
	mu       sync.RWMutex
	current  *entity.Identity
	notifier *Notifier
}

// NewStore creates an empty (signed out) session.
func NewStore() *Store {
	return &Store{notifier: NewNotifier()}
}

// Current returns a copy of the signed-in identity, nil when signed out.
func (s *Store) Current() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Clone()
}

// SignIn replaces the session identity and notifies subscribers.
func (s *Store) SignIn(identity *entity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = identity.Clone()
	s.notifier.Publish(s.current)
}

// SignOut clears the session. Nothing is published when nobody was signed in.
func (s *Store) SignOut() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.current
	if previous == nil {
		return nil
	}
	s.current = nil
	s.notifier.Publish(nil)

	return previous
}

// Subscribe registers a listener; it first receives the identity current at registration time.
func (s *Store) Subscribe(listener service.AuthStateListener) service.Unsubscribe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.notifier.Subscribe(listener, s.current)
}

// Close stops notification delivery.
func (s *Store) Close() {
	s.notifier.Close()
}
