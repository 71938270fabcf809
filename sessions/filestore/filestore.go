// Package filestore persists the session as a single JSON file. Writes go
// through a temp file and rename so a crash never leaves a half-written
// session; a corrupt file reads back as "no session" rather than an error.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/harborline/portal/sessions"
)

var _ sessions.Store = (*Store)(nil)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() (*sessions.StoredSession, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[filestore.Load] read session file")
	}

	var session sessions.StoredSession
	if err := json.Unmarshal(data, &session); err != nil {
		// Corrupt session data degrades to "no session"
		return nil, nil
	}
	if session.Current == nil {
		return nil, nil
	}
	return &session, nil
}

func (s *Store) Save(session *sessions.StoredSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "[filestore.Save] marshal session")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "[filestore.Save] mkdir")
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return errors.Wrap(err, "[filestore.Save] create temp")
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrap(err, "[filestore.Save] write temp")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "[filestore.Save] sync temp")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "[filestore.Save] close temp")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return errors.Wrap(err, "[filestore.Save] rename")
	}
	return nil
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[filestore.Clear] remove session file")
	}
	return nil
}
