// Package sessions defines the persisted process session: a single
// overwritable record holding the current principal and, when an
// impersonation is active, the true principal underneath it.
package sessions

import "github.com/harborline/portal/principals"

// StoredSession is the whole persisted session state. Mutations always
// replace the record wholesale; there are no partial updates.
type StoredSession struct {
	Current       *principals.Principal `json:"current"`
	Original      *principals.Principal `json:"original,omitempty"`
	Impersonating bool                  `json:"impersonating,omitempty"`
}

// Store persists at most one session across process restarts.
//
// Persistence is best-effort: Load returns (nil, nil) for an absent or
// malformed record, and callers treat Save/Clear failures as non-fatal -
// the in-memory session remains authoritative for the running process.
type Store interface {
	// Load retrieves the persisted session, or nil if absent or unreadable.
	Load() (*StoredSession, error)

	// Save overwrites the persisted session with the given record.
	Save(session *StoredSession) error

	// Clear removes the persisted session entirely.
	Clear() error
}
