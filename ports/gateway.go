package ports

import "context"

// Gateway issues credential operations against the remote authority.
// It never mutates session state; the caller applies results.
type Gateway interface {
	// Login exchanges credentials for a bearer token.
	// Fails with core.ErrInvalidCredentials or core.ErrNetwork.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates an account. It does not return or imply a session.
	// Fails with core.ErrUsernameTaken or core.ErrNetwork.
	Register(ctx context.Context, username, password string) error
}
