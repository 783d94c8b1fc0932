// Package session implements the opaque session provider: an unguessable
// token travels in a cookie, the authenticated identity lives server-side in
// Redis under that token. Handlers receive the identity as an immutable value
// rather than reaching for ambient state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	CookieName = "hotel_session"
	TTL        = 7 * 24 * time.Hour
)

var ErrNotFound = errors.New("session not found")

// Identity is the session payload established at registration/login.
type Identity struct {
	UserID     uint   `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// Store persists raw session payloads by token.
type Store interface {
	Save(ctx context.Context, token string, payload []byte, ttl time.Duration) error
	Load(ctx context.Context, token string) ([]byte, error)
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Create stores the identity and returns the fresh session token.
func (m *Manager) Create(ctx context.Context, ident Identity) (string, error) {
	ident.IsLoggedIn = true
	payload, err := json.Marshal(ident)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err := m.store.Save(ctx, token, payload, TTL); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token back into an identity. ErrNotFound covers both
// unknown and expired tokens.
func (m *Manager) Get(ctx context.Context, token string) (Identity, error) {
	payload, err := m.store.Load(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	var ident Identity
	if err := json.Unmarshal(payload, &ident); err != nil {
		return Identity{}, err
	}
	return ident, nil
}

func (m *Manager) Destroy(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}
