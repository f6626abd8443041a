package ports

import "github.com/splitwing/splitwing/core"

// Codec inspects bearer tokens without verifying their signature.
// It is pure: no network access, no state.
type Codec interface {
	// StructurallyValid reports whether token has the three-segment shape
	StructurallyValid(token string) bool

	// DecodeClaims parses the claims segment of token. Callers must only
	// invoke it after StructurallyValid succeeds.
	DecodeClaims(token string) (core.Claims, error)

	// Expired reports whether token's exp claim is at or before the current
	// instant. A token whose claims cannot be decoded counts as expired;
	// a token without an exp claim never expires.
	Expired(token string) bool
}
