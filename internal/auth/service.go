package auth

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Service owns the in-memory credential snapshot. The snapshot is only replaced
// after a successful reload from disk, so a failed password reset leaves the
// previous hash in effect.
type Service struct {
	path string

	mu    sync.RWMutex
	creds Credentials
}

// NewService loads the credential file and fails if it is missing or malformed.
// Callers treat that failure as fatal at startup.
func NewService(path string) (*Service, error) {
	creds, err := LoadCredentials(path)
	if err != nil {
		return nil, err
	}
	return &Service{path: path, creds: creds}, nil
}

func (s *Service) snapshot() Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// Login compares the submitted password against the stored hash. The returned
// error never reveals more than a generic mismatch.
func (s *Service) Login(password string) error {
	creds := s.snapshot()
	if err := bcrypt.CompareHashAndPassword([]byte(creds.AdminPasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// SecretQuestion returns the stored recovery prompt verbatim. Intentionally
// unauthenticated: the question is public, only the answer is secret.
func (s *Service) SecretQuestion() string {
	return s.snapshot().SecretQuestion
}

// ResetPassword validates the secret answer and, on success, rewrites the
// password hash on disk and reloads the snapshot. Nothing is written or mutated
// when the answer does not match.
func (s *Service) ResetPassword(secretAnswer, newPassword string) error {
	if secretAnswer == "" || newPassword == "" {
		return ErrMissingFields
	}

	creds := s.snapshot()
	if err := bcrypt.CompareHashAndPassword([]byte(creds.SecretAnswerHash), []byte(secretAnswer)); err != nil {
		return ErrInvalidSecretAnswer
	}

	newHash, err := HashSecret(newPassword)
	if err != nil {
		return err
	}

	updated := creds
	updated.AdminPasswordHash = newHash
	if err := WriteCredentials(s.path, updated); err != nil {
		return err
	}

	// Reload from disk so the served snapshot always reflects the file.
	reloaded, err := LoadCredentials(s.path)
	if err != nil {
		return fmt.Errorf("reload credentials after reset: %w", err)
	}

	s.mu.Lock()
	s.creds = reloaded
	s.mu.Unlock()

	return nil
}
