package core

// Session is a snapshot of the client's belief about who is logged in.
// Identity and RawToken are both set or both empty: the identity is always
// derived from a token that passed validation, never kept on its own.
type Session struct {
	Identity Claims // decoded token payload, nil when anonymous
	RawToken string // the bearer token currently trusted, "" when anonymous
	Loading  bool   // true only until the persisted token is first resolved
}

// Authenticated reports whether the session holds a resolved identity
func (s Session) Authenticated() bool {
	return !s.Loading && s.Identity != nil
}

// Anonymous reports whether resolution finished without an identity
func (s Session) Anonymous() bool {
	return !s.Loading && s.Identity == nil
}
