// Package session holds the operator's authentication state: the bearer
// token issued by the backend and the decoded user. It replaces the original
// dashboard's scattered localStorage lookups with one injectable object with
// a defined init (login) and teardown (logout) lifecycle.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pse_restaurant_admin/internal/models"
)

// ErrNotAuthenticated is returned when an operation requires a logged-in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// State is the persisted session payload: the opaque token plus the user
// object the backend returned on login.
type State struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// Store persists session state between runs, the way the browser app kept
// token and user in localStorage.
type Store interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

// Session is the process-wide authentication context. The token is re-read
// from the store on every Token call, so a change made by another process
// (logout elsewhere) takes effect on the next backend request.
type Session struct {
	mu    sync.RWMutex
	store Store
	state State
}

// New creates a session backed by the given store, adopting any persisted state.
func New(store Store) (*Session, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load persisted session: %w", err)
	}
	return &Session{store: store, state: state}, nil
}

// Token returns the current bearer token, empty when logged out. It
// implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, err := s.store.Load(); err == nil {
		s.state = state
	}
	return s.state.Token
}

// User returns the logged-in user, if any.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.User == nil {
		return models.User{}, false
	}
	return *s.state.User, true
}

// SetAuth installs a freshly issued token and user and persists them.
func (s *Session) SetAuth(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{Token: token, User: user}
	return s.store.Save(s.state)
}

// Clear logs out: it wipes both the in-memory state and the store.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	return s.store.Clear()
}

// IsAdmin reports whether the session belongs to an admin user.
func (s *Session) IsAdmin() bool {
	user, ok := s.User()
	return ok && user.IsAdmin()
}

// Claims mirrors the backend token's payload. The client never verifies the
// signature (verification belongs to the backend); it only reads expiry and
// role hints to avoid pointless round trips.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims parses a token's claims without signature verification.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token claims: %w", err)
	}
	return claims, nil
}

// TokenValid reports whether a non-empty token is present and, when the
// token carries an expiry, that it has not passed.
func (s *Session) TokenValid(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		// Opaque (non-JWT) tokens are let through; the backend decides.
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return now.Before(claims.ExpiresAt.Time)
}
