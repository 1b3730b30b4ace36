package auth

import (
	"context"
	"time"

	"github.com/brandgate/brandgate/internal/tenant"
)

// DefaultLatency approximates the round trip of a real credential check.
const DefaultLatency = 500 * time.Millisecond

// Mock authenticates against a fixed user directory after a simulated
// network delay. Passwords are not validated; only the username must match
// a known user.
type Mock struct {
	Users   []tenant.User
	Tokens  *TokenIssuer
	Latency time.Duration
}

// SubmitCredentials looks the username up in the directory and mints an
// access token. Returns ErrInvalidCredentials when the user is unknown.
func (m *Mock) SubmitCredentials(ctx context.Context, username, password string) (tenant.User, string, error) {
	if m.Latency > 0 {
		timer := time.NewTimer(m.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return tenant.User{}, "", ctx.Err()
		case <-timer.C:
		}
	}

	for _, user := range m.Users {
		if user.Username != username {
			continue
		}
		token, err := m.Tokens.Issue(user.ID)
		if err != nil {
			return tenant.User{}, "", err
		}
		return user, token, nil
	}
	return tenant.User{}, "", ErrInvalidCredentials
}
