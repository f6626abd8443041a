// Package service owns the client's session state machine:
// Resolving -> Authenticated | Anonymous.
//
// The session starts in Resolving, settles exactly once from the persisted
// token, and after that only moves between Authenticated and Anonymous via
// explicit Login/Logout. Expiry is checked only during resolution; after
// that the remote authority is the one that rejects a stale token on the
// next authenticated call.
package service

import (
	"context"
	"log"
	"sync"

	"github.com/splitwing/splitwing/core"
	"github.com/splitwing/splitwing/ports"
)

// SessionService holds the process-wide session and applies every
// transition. All failure paths settle on Anonymous with the vault cleared;
// the session is never left half-updated.
type SessionService struct {
	codec    ports.Codec
	vault    ports.TokenVault
	gateway  ports.Gateway
	eventPub ports.EventPublisher

	mu       sync.Mutex
	identity core.Claims
	rawToken string
	loading  bool
	resolved bool
}

// NewSessionService creates a session service in the Resolving state
func NewSessionService(
	codec ports.Codec,
	vault ports.TokenVault,
	gateway ports.Gateway,
	eventPub ports.EventPublisher,
) *SessionService {
	return &SessionService{
		codec:    codec,
		vault:    vault,
		gateway:  gateway,
		eventPub: eventPub,
		loading:  true,
	}
}

// Resolve settles the initial session state from the persisted token. It
// runs at most once per service lifetime; later calls return the current
// snapshot unchanged. An absent, malformed or expired token silently lands
// on Anonymous with the vault cleared.
func (s *SessionService) Resolve(ctx context.Context) core.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolved {
		return s.snapshot()
	}

	token, err := s.vault.Load(ctx)
	if err != nil || !s.codec.StructurallyValid(token) || s.codec.Expired(token) {
		s.rejectLocked(ctx)
		return s.snapshot()
	}

	claims, err := s.codec.DecodeClaims(token)
	if err != nil {
		s.rejectLocked(ctx)
		return s.snapshot()
	}

	s.identity = claims
	s.rawToken = token
	s.loading = false
	s.resolved = true
	return s.snapshot()
}

// Login exchanges credentials for a token and, on success, persists it and
// transitions to Authenticated. A gateway failure or a structurally invalid
// returned token leaves the session and the vault untouched. Expiry is not
// re-checked: a freshly issued token is assumed fresh.
func (s *SessionService) Login(ctx context.Context, username, password string) error {
	token, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if !s.codec.StructurallyValid(token) {
		return core.ErrMalformedToken
	}

	claims, err := s.codec.DecodeClaims(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if err := s.vault.Store(ctx, token); err != nil {
		s.mu.Unlock()
		return err
	}
	s.identity = claims
	s.rawToken = token
	s.mu.Unlock()

	if err := s.eventPub.PublishLogin(ctx, claims.Subject()); err != nil {
		log.Printf("warning: failed to publish login event: %v", err)
	}

	return nil
}

// Logout clears the vault and transitions to Anonymous regardless of the
// current state. It is idempotent: logging out twice is not an error.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	subject := ""
	wasAuthenticated := s.identity != nil
	if wasAuthenticated {
		subject = s.identity.Subject()
	}

	err := s.vault.Clear(ctx)
	s.identity = nil
	s.rawToken = ""
	s.mu.Unlock()

	if err != nil {
		return err
	}

	if wasAuthenticated {
		if err := s.eventPub.PublishLogout(ctx, subject); err != nil {
			log.Printf("warning: failed to publish logout event: %v", err)
		}
	}

	return nil
}

// Register creates an account through the gateway. It never touches session
// state: a fresh account still has to log in explicitly.
func (s *SessionService) Register(ctx context.Context, username, password string) error {
	return s.gateway.Register(ctx, username, password)
}

// Current returns a consistent snapshot of the session
func (s *SessionService) Current() core.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Token returns the bearer token currently trusted, or "" when anonymous
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawToken
}

// Reset restores the pristine pre-Resolve state for test harnesses. Unlike
// Logout it has no storage side effects.
func (s *SessionService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.rawToken = ""
	s.loading = true
	s.resolved = false
}

// rejectLocked settles on Anonymous and clears the vault in the same step,
// so storage never holds a token the session has rejected. Callers hold mu.
func (s *SessionService) rejectLocked(ctx context.Context) {
	if err := s.vault.Clear(ctx); err != nil {
		log.Printf("warning: failed to clear rejected token: %v", err)
	}
	s.identity = nil
	s.rawToken = ""
	s.loading = false
	s.resolved = true
}

// snapshot returns the session value; callers hold mu
func (s *SessionService) snapshot() core.Session {
	return core.Session{
		Identity: s.identity,
		RawToken: s.rawToken,
		Loading:  s.loading,
	}
}
