// Package filerepo is a JSON-file-backed principal directory. The whole
// directory is held in memory and rewritten atomically on every mutation,
// so a crash mid-write never corrupts the file.
package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/harborline/portal/principals"
	"github.com/pkg/errors"
)

var _ principals.Repo = (*FileRepo)(nil)

var ErrNotFound = errors.New("principal not found")

type FileRepo struct {
	path     string
	records  map[string]*storedPrincipal
	emailIds map[string]string
	lock     sync.RWMutex
}

// storedPrincipal carries the password hash that Principal's JSON tags
// deliberately exclude from API responses.
type storedPrincipal struct {
	principals.Principal
	PasswordHash string `json:"password_hash,omitempty"`
}

// New loads the directory at path, starting empty if the file does not exist.
func New(path string) (*FileRepo, error) {
	fr := &FileRepo{
		path:     path,
		records:  make(map[string]*storedPrincipal),
		emailIds: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fr, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[filerepo.New] read directory file")
	}

	var stored []*storedPrincipal
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "[filerepo.New] unmarshal directory file")
	}
	for _, sp := range stored {
		sp.Principal.PasswordHash = sp.PasswordHash
		fr.records[sp.ID] = sp
		fr.emailIds[sp.Email] = sp.ID
	}
	return fr, nil
}

func (fr *FileRepo) Upsert(principal *principals.Principal) error {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	if principal.ID == "" {
		principal.ID = uuid.New().String()
	}
	sp := &storedPrincipal{Principal: *principal, PasswordHash: principal.PasswordHash}
	fr.records[principal.ID] = sp
	fr.emailIds[principal.Email] = principal.ID
	return fr.persist()
}

func (fr *FileRepo) Delete(email string) error {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	id, ok := fr.emailIds[email]
	if !ok {
		return ErrNotFound
	}
	delete(fr.emailIds, email)
	delete(fr.records, id)
	return fr.persist()
}

func (fr *FileRepo) GetByEmail(email string) (*principals.Principal, error) {
	fr.lock.RLock()
	defer fr.lock.RUnlock()

	id, ok := fr.emailIds[email]
	if !ok {
		return nil, ErrNotFound
	}
	return fr.records[id].Principal.Clone(), nil
}

func (fr *FileRepo) GetByID(id string) (*principals.Principal, error) {
	fr.lock.RLock()
	defer fr.lock.RUnlock()

	sp, ok := fr.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sp.Principal.Clone(), nil
}

func (fr *FileRepo) List(offset, limit int) ([]*principals.Principal, error) {
	fr.lock.RLock()
	defer fr.lock.RUnlock()

	all := make([]*principals.Principal, 0, len(fr.records))
	for _, sp := range fr.records {
		all = append(all, sp.Principal.Clone())
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })

	if offset >= len(all) {
		return []*principals.Principal{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// persist rewrites the directory file. Caller must hold the write lock.
// Write goes to a temp file in the same directory, then renames over the
// target so readers never observe a partial file.
func (fr *FileRepo) persist() error {
	all := make([]*storedPrincipal, 0, len(fr.records))
	for _, sp := range fr.records {
		all = append(all, sp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Email < all[j].Email })

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileRepo.persist] marshal")
	}

	dir := filepath.Dir(fr.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "[FileRepo.persist] mkdir")
	}
	tmp, err := os.CreateTemp(dir, ".principals-*")
	if err != nil {
		return errors.Wrap(err, "[FileRepo.persist] create temp")
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrap(err, "[FileRepo.persist] write temp")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "[FileRepo.persist] sync temp")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "[FileRepo.persist] close temp")
	}
	if err := os.Rename(tmpPath, fr.path); err != nil {
		return errors.Wrap(err, "[FileRepo.persist] rename")
	}
	return nil
}
