package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/google/uuid"
)

// TokenStore is a process-local token whitelist with expiry.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

var _ domainRepo.TokenStore = (*TokenStore)(nil)

func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (s *TokenStore) Save(_ context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenKey(kind, userID, tokenID)] = s.now().Add(ttl)
	return nil
}

func (s *TokenStore) Exists(_ context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := tokenKey(kind, userID, tokenID)
	expiresAt, ok := s.tokens[key]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expiresAt) {
		delete(s.tokens, key)
		return false, nil
	}
	return true, nil
}

func (s *TokenStore) Revoke(_ context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenKey(kind, userID, tokenID))
	return nil
}

func tokenKey(kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, userID, tokenID)
}
