package api

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// adminSecret holds the single shared admin credential as a bcrypt hash.
// Rotation replaces the in-process hash only; it is lost on restart, which
// matches the non-durable password-change semantics of the admin panel.
type adminSecret struct {
	mu   sync.RWMutex
	hash []byte
}

func newAdminSecret(password string) (*adminSecret, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &adminSecret{hash: hash}, nil
}

// Verify reports whether password matches the current secret.
func (s *adminSecret) Verify(password string) bool {
	s.mu.RLock()
	hash := s.hash
	s.mu.RUnlock()

	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// Rotate swaps the secret for next if current matches. Returns false and
// leaves the secret untouched when current does not match.
func (s *adminSecret) Rotate(current, next string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bcrypt.CompareHashAndPassword(s.hash, []byte(current)) != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	s.hash = hash
	return true, nil
}
