package core

import "errors"

var (
	// ErrMalformedToken is returned when a token does not have the three-segment shape
	ErrMalformedToken = errors.New("malformed token")

	// ErrDecodeFailed is returned when the claims segment of a token cannot be decoded
	ErrDecodeFailed = errors.New("token claims decode failed")

	// ErrTokenExpired is returned when a token's exp claim is in the past
	ErrTokenExpired = errors.New("token has expired")

	// ErrNoToken is returned by a vault when no token is persisted
	ErrNoToken = errors.New("no token stored")

	// ErrInvalidCredentials is returned on a rejected login; it is deliberately
	// opaque and does not distinguish a wrong username from a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when registration hits an existing username
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNetwork is returned when the remote authority could not be reached
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized is returned when the remote service rejects the bearer
	// token on an authenticated call
	ErrUnauthorized = errors.New("unauthorized")

	// ErrVaultOperationFailed is returned when a vault operation fails
	ErrVaultOperationFailed = errors.New("vault operation failed")
)
