// Package auth manages the access tokens sent with API requests.
package auth

import (
	"context"
	"errors"
	"sync"
)

// Static errors for err113 compliance.
var ErrNoToken = errors.New("no access token set")

// TokenManager supplies the access token for outgoing requests.
type TokenManager interface {
	// GetToken returns the token to send with the next request.
	GetToken(ctx context.Context) (string, error)

	// SetToken replaces the stored token.
	SetToken(token string)
}

// StaticTokenManager holds a long-lived API token. Tokens are issued per
// account and do not expire, so there is no refresh path.
type StaticTokenManager struct {
	mutex sync.RWMutex
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the stored token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.token == "" {
		return "", ErrNoToken
	}

	return m.token, nil
}

// SetToken replaces the stored token.
func (m *StaticTokenManager) SetToken(token string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = token
}
