package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session is an authenticated principal as established by the external OAuth
// collaborator. The service never issues credentials itself; it only checks
// that a presented cookie maps to a live session.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validator is the read side of the store. The API layer authenticates
// through this interface only; it can never mint or revoke sessions.
type Validator interface {
	// Get returns the session for a token, or false when the token is
	// unknown or expired.
	Get(token string) (*Session, bool)
}

// Store keeps live sessions in an expirable LRU: sessions lapse after the
// configured TTL, and the size bound caps memory on a shared deployment.
//
// Issuance and revocation belong to the OAuth login/logout handlers, which
// share this store with the API server and call Put on login and Delete on
// logout. The API server itself only reads, via Validator.
type Store struct {
	cache *expirable.LRU[string, *Session]
}

var _ Validator = (*Store)(nil)

// NewStore creates an in-memory session store.
// size: maximum number of live sessions
// ttl: session lifetime from issuance
func NewStore(size int, ttl time.Duration) *Store {
	return &Store{
		cache: expirable.NewLRU[string, *Session](size, nil, ttl),
	}
}

// Get returns the session for a token, or false when the token is unknown
// or expired.
func (s *Store) Get(token string) (*Session, bool) {
	return s.cache.Get(token)
}

// Put registers a session under a fresh token and returns the token. Called
// by the OAuth login handler after the provider confirms the identity.
func (s *Store) Put(userID, email string) string {
	token := uuid.NewString()
	s.cache.Add(token, &Session{
		Token:     token,
		UserID:    userID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	})
	return token
}

// Delete revokes a session. Called by the OAuth logout handler.
func (s *Store) Delete(token string) {
	s.cache.Remove(token)
}
