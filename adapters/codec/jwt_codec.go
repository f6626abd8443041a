// Package codec decodes bearer tokens without verifying their signature.
//
// This is a deliberate trust boundary, not an oversight: the client does not
// (and must not) hold the issuer's signing secret, so it can only check the
// token's shape and expiry claim. Integrity of the token is enforced by the
// remote authority, which rejects tampered tokens on every authenticated
// call. Nothing in this package ever claims cryptographic validity.
package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/splitwing/splitwing/core"
	"github.com/splitwing/splitwing/ports"
)

// JWTCodec implements ports.Codec over the three-segment JWT encoding
type JWTCodec struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTCodec creates a new unverified-claims codec
func NewJWTCodec() *JWTCodec {
	return &JWTCodec{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// NewJWTCodecAt creates a codec that evaluates expiry against the given
// clock instead of time.Now
func NewJWTCodecAt(now func() time.Time) *JWTCodec {
	c := NewJWTCodec()
	c.now = now
	return c
}

var _ ports.Codec = (*JWTCodec)(nil)

// StructurallyValid reports whether token splits into exactly three
// non-empty segments on "."
func (c *JWTCodec) StructurallyValid(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
	}
	return true
}

// DecodeClaims parses the claims segment of token. The signature segment is
// never checked.
func (c *JWTCodec) DecodeClaims(token string) (core.Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := c.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrDecodeFailed, err)
	}
	return core.Claims(claims), nil
}

// Expired reports whether token's exp claim is at or before the current
// instant. Undecodable claims count as expired (fail closed); a missing exp
// claim means the token never expires.
func (c *JWTCodec) Expired(token string) bool {
	claims, err := c.DecodeClaims(token)
	if err != nil {
		return true
	}

	exp, ok := claims.ExpiresAt()
	if !ok {
		return false
	}

	return !c.now().Before(exp)
}
