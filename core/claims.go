package core

import "time"

// Claims is the decoded payload of a bearer token. It is an open mapping;
// the only field the client interprets is "exp". Claims are immutable once
// decoded.
type Claims map[string]any

// Subject returns the sub claim, or an empty string if absent
func (c Claims) Subject() string {
	if sub, ok := c["sub"].(string); ok {
		return sub
	}
	return ""
}

// ExpiresAt returns the exp claim as a time, and whether it was present.
// Issuers encode exp as seconds since epoch; JSON decoding may surface it
// as a float64 or an int64 depending on the decoder.
func (c Claims) ExpiresAt() (time.Time, bool) {
	switch exp := c["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0), true
	case int64:
		return time.Unix(exp, 0), true
	case int:
		return time.Unix(int64(exp), 0), true
	}
	return time.Time{}, false
}
