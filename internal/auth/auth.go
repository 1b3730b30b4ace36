// Package auth defines the credential-verification collaborator and the
// access token mint. Credential checking itself is mock-only: the portal
// shell treats verification as an external concern.
package auth

import (
	"context"
	"errors"

	"github.com/brandgate/brandgate/internal/tenant"
)

// ErrInvalidCredentials is returned when a username/password pair does not
// match a known user. It surfaces as an inline form message, never a fault.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator verifies credentials and issues an access token.
type Authenticator interface {
	SubmitCredentials(ctx context.Context, username, password string) (tenant.User, string, error)
}
