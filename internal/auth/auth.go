package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	apperrors "placehub/internal/errors"
	"placehub/internal/models"
)

// Service owns the static manager roster and the in-memory session table.
// Sessions never expire and are lost on process restart, so managers log in
// again after a restart.
type Service struct {
	managers []models.Manager

	mu       sync.RWMutex
	sessions map[string]*models.Manager
}

// NewService wraps the given roster. The roster is fixed for the process
// lifetime; usernames are expected unique by construction, not enforced.
func NewService(managers []models.Manager) *Service {
	return &Service{
		managers: managers,
		sessions: make(map[string]*models.Manager),
	}
}

// Login scans the roster for an exact credential match, first match wins.
// Unknown usernames and wrong passwords produce the same error so callers
// cannot enumerate accounts.
func (s *Service) Login(username, password string) (string, *models.Manager, error) {
	for i := range s.managers {
		m := &s.managers[i]
		if m.Username == username && m.Password == password {
			token, err := newToken()
			if err != nil {
				return "", nil, fmt.Errorf("failed to generate session token: %w", err)
			}
			s.mu.Lock()
			s.sessions[token] = m
			s.mu.Unlock()
			return token, m, nil
		}
	}
	return "", nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
}

// Resolve maps a session token back to its manager. A missing token and an
// unknown token both yield false.
func (s *Service) Resolve(token string) (*models.Manager, bool) {
	if token == "" {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.sessions[token]
	return m, ok
}

// Authorize reports whether the manager may act on the given place.
func (s *Service) Authorize(m *models.Manager, placeID int64) bool {
	return m.IsAdmin || m.PlaceID == placeID
}

// newToken returns 128 bits from crypto/rand, hex encoded.
func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
