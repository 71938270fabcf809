package storefakes

import (
	"sync"

	"github.com/harborline/portal/sessions"
)

var _ sessions.Store = (*FakeSessionStore)(nil)

type FakeSessionStore struct {
	mu      sync.RWMutex
	session *sessions.StoredSession

	SaveCalls  int
	ClearCalls int
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{}
}

func (fs *FakeSessionStore) Load() (*sessions.StoredSession, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.session, nil
}

func (fs *FakeSessionStore) Save(session *sessions.StoredSession) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.session = session
	fs.SaveCalls++
	return nil
}

func (fs *FakeSessionStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.session = nil
	fs.ClearCalls++
	return nil
}

var _ sessions.Store = (*FailingSessionStore)(nil)

// FailingSessionStore errors on every operation, for exercising the
// best-effort persistence paths.
type FailingSessionStore struct {
	Err error
}

func (fs *FailingSessionStore) Load() (*sessions.StoredSession, error) { return nil, fs.Err }
func (fs *FailingSessionStore) Save(*sessions.StoredSession) error     { return fs.Err }
func (fs *FailingSessionStore) Clear() error                           { return fs.Err }
