// Package guard decides whether a navigation target is reachable for a
// given session. It is a pure function of its inputs and keeps no state of
// its own; callers re-evaluate it on every navigation attempt and on every
// session transition.
package guard

import "github.com/splitwing/splitwing/core"

// Decision is the outcome of evaluating a navigation attempt
type Decision int

const (
	// Pending means the session is still resolving; render a waiting
	// indicator and do not decide yet
	Pending Decision = iota

	// Redirect means the target needs an identity the session lacks
	Redirect

	// Allow means the target is reachable
	Allow
)

// DefaultLoginRoute is where unauthenticated navigations are sent
const DefaultLoginRoute = "/login"

// Result is a guard decision plus the redirect target when applicable
type Result struct {
	Decision   Decision
	RedirectTo string
}

// Guard evaluates navigation attempts against a configured login route.
// The login and register routes themselves are always reachable, so an
// anonymous user can actually get to the login screen.
type Guard struct {
	loginRoute string
	public     map[string]struct{}
}

// New creates a guard redirecting to loginRoute, with loginRoute and the
// given public routes exempt from the identity check
func New(loginRoute string, publicRoutes ...string) *Guard {
	public := map[string]struct{}{loginRoute: {}}
	for _, route := range publicRoutes {
		public[route] = struct{}{}
	}
	return &Guard{loginRoute: loginRoute, public: public}
}

// Evaluate decides whether target is reachable under sess
func (g *Guard) Evaluate(target string, sess core.Session) Result {
	if _, ok := g.public[target]; ok {
		return Result{Decision: Allow}
	}

	if sess.Loading {
		return Result{Decision: Pending}
	}

	if sess.Identity == nil {
		return Result{Decision: Redirect, RedirectTo: g.loginRoute}
	}

	return Result{Decision: Allow}
}
