package identity

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/harborline/portal/principals"
	"github.com/harborline/portal/sessions"
)

// Manager owns the single process-wide session: the current effective
// principal plus the one-deep impersonation overlay. It is the only writer
// of session state; consumers read through it.
//
// The manager holds three states: anonymous (no current principal),
// authenticated, and impersonating. Impersonating can only be left via
// Logout - there is no narrower revert-to-original transition.
type Manager struct {
	mu            sync.RWMutex
	auth          *Authenticator
	store         sessions.Store
	current       *principals.Principal
	original      *principals.Principal
	impersonating bool
	log           zerolog.Logger
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger used for persistence warnings.
func WithManagerLogger(log zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager initializes a new Manager with required dependencies.
func NewManager(auth *Authenticator, store sessions.Store, options ...ManagerOption) (*Manager, error) {
	if auth == nil {
		return nil, errors.New("[NewManager] authenticator is required")
	}
	if store == nil {
		return nil, errors.New("[NewManager] session store is required")
	}

	manager := &Manager{
		auth:  auth,
		store: store,
		log:   zerolog.Nop(),
	}

	for _, opt := range options {
		opt(manager)
	}

	return manager, nil
}

// Restore loads the persisted session at process start and reports whether
// one was installed. Absent, malformed or unreadable state leaves the
// manager anonymous; startup never fails here.
func (m *Manager) Restore() bool {
	stored, err := m.store.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("session restore failed, starting anonymous")
		return false
	}
	if stored == nil || stored.Current == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = stored.Current
	if stored.Impersonating && stored.Original != nil {
		m.original = stored.Original
		m.impersonating = true
	}
	return true
}

// Login authenticates and, on success, installs the result as the current
// principal, replacing any previous session wholesale.
func (m *Manager) Login(ctx context.Context, email, password string) (*principals.Principal, error) {
	principal, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.current = principal
	m.original = nil
	m.impersonating = false
	m.mu.Unlock()

	return principal, nil
}

// Logout tears down the whole session: effective principal, impersonation
// overlay and persisted state. This is the only transition that ends an
// impersonation.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.current = nil
	m.original = nil
	m.impersonating = false
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
}

// Impersonate substitutes target as the effective principal. The first call
// captures the true principal; repeated calls swap only the effective
// principal and leave the captured original untouched.
//
// Eligibility (e.g. only master admins may impersonate) is the caller's
// responsibility; the manager enforces no policy here.
func (m *Manager) Impersonate(target *principals.Principal) {
	if target == nil {
		return
	}

	m.mu.Lock()
	if !m.impersonating {
		m.original = m.current
		m.impersonating = true
	}
	m.current = target
	snapshot := &sessions.StoredSession{
		Current:       m.current,
		Original:      m.original,
		Impersonating: m.impersonating,
	}
	m.mu.Unlock()

	if err := m.store.Save(snapshot); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist impersonation")
	}
}

// CurrentPrincipal returns the effective principal, or nil when anonymous.
// Callers must treat the result as read-only.
func (m *Manager) CurrentPrincipal() *principals.Principal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// OriginalPrincipal returns the true principal underneath an active
// impersonation, or nil when not impersonating. Intended for accounting and
// audit surfaces.
func (m *Manager) OriginalPrincipal() *principals.Principal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.impersonating {
		return nil
	}
	return m.original
}

// IsImpersonating reports whether an impersonation overlay is active.
func (m *Manager) IsImpersonating() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.impersonating
}
