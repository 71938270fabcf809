package identity

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/harborline/portal/principals"
	"github.com/harborline/portal/sessions"
)

// defaultLatency models the round trip to a remote identity directory.
const defaultLatency = 800 * time.Millisecond

// Authenticator resolves submitted credentials against the principal
// directory and installs the result in the session store.
//
// Credential semantics are inherited from the upstream directory: a matching
// email is sufficient, the password is accepted but never verified. A
// deployment with a real directory must add hash verification here.
type Authenticator struct {
	principals principals.Repo
	store      sessions.Store
	latency    time.Duration
	nowTime    func() time.Time
	clientIP   func() string
	log        zerolog.Logger
}

// AuthenticatorOption defines a function type to modify the Authenticator instance.
type AuthenticatorOption func(*Authenticator)

// WithLatency overrides the simulated directory latency (primarily for testing).
func WithLatency(d time.Duration) AuthenticatorOption {
	return func(a *Authenticator) {
		a.latency = d
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) AuthenticatorOption {
	return func(a *Authenticator) {
		a.nowTime = nowFunc
	}
}

// WithClientIP sets the source of the client address stamped into LastLogin.
func WithClientIP(ipFunc func() string) AuthenticatorOption {
	return func(a *Authenticator) {
		a.clientIP = ipFunc
	}
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(log zerolog.Logger) AuthenticatorOption {
	return func(a *Authenticator) {
		a.log = log
	}
}

// NewAuthenticator initializes a new Authenticator with required dependencies.
func NewAuthenticator(repo principals.Repo, store sessions.Store, options ...AuthenticatorOption) (*Authenticator, error) {
	if repo == nil {
		return nil, errors.New("[NewAuthenticator] principals repo is required")
	}
	if store == nil {
		return nil, errors.New("[NewAuthenticator] session store is required")
	}

	authenticator := &Authenticator{
		principals: repo,
		store:      store,
		latency:    defaultLatency,
		nowTime:    time.Now,
		clientIP:   syntheticIP,
		log:        zerolog.Nop(),
	}

	for _, opt := range options {
		opt(authenticator)
	}

	return authenticator, nil
}

// Authenticate looks up the principal by email, stamps a fresh LastLogin onto
// a copy and persists it as the current session.
//
// On failure the session store is left untouched. Directory errors are
// reported as ErrAuthenticationFailed, never propagated.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*principals.Principal, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	_ = password // accepted but not verified, see type comment

	// Simulated directory round trip; does not hold any lock, so readers of
	// the previous session state are never blocked while this is pending.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(a.latency):
	}

	matched, err := a.principals.GetByEmail(email)
	if err != nil {
		a.log.Debug().Str("email", email).Err(err).Msg("authentication lookup failed")
		return nil, ErrAuthenticationFailed
	}

	stamped := matched.Clone()
	stamped.LastLogin = principals.LastLogin{
		Timestamp: a.nowTime(),
		IP:        a.clientIP(),
	}

	if err := a.store.Save(&sessions.StoredSession{Current: stamped}); err != nil {
		// Best-effort persistence; the in-memory session stays authoritative.
		a.log.Warn().Err(err).Msg("failed to persist session")
	}

	return stamped, nil
}

// syntheticIP fabricates an address from the TEST-NET-3 range, standing in
// for the reverse-proxy derived client address a real deployment would pass
// via WithClientIP.
func syntheticIP() string {
	return fmt.Sprintf("203.0.113.%d", rand.IntN(254)+1)
}
