// Package session holds server-side authentication state keyed by an opaque
// cookie token. Sessions expire after a fixed absolute lifetime with no sliding
// renewal.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token.
const CookieName = "portfolio_session"

// Store issues and validates session tokens.
type Store interface {
	// Create starts a new authenticated session and returns its token.
	Create(ctx context.Context) (string, error)
	// Valid reports whether the token belongs to a live session.
	Valid(ctx context.Context, token string) (bool, error)
	// Destroy ends the session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}

// MemoryStore is the default single-process store.
type MemoryStore struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Create(ctx context.Context) (string, error) {
	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Valid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Sweep drops expired sessions. Valid already prunes lazily; this keeps the map
// from accumulating tokens that are never presented again.
func (s *MemoryStore) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, expiry := range s.sessions {
		if now.After(expiry) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
