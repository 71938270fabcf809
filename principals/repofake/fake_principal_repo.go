package repofake

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/harborline/portal/principals"
)

var _ principals.Repo = (*FakePrincipalRepo)(nil)

type FakePrincipalRepo struct {
	records  map[string]*principals.Principal
	emailIds map[string]string // email to principal id
	lock     sync.RWMutex
}

func NewFakePrincipalRepo() *FakePrincipalRepo {
	return &FakePrincipalRepo{
		records:  make(map[string]*principals.Principal),
		emailIds: make(map[string]string),
	}
}

func (pr *FakePrincipalRepo) Upsert(principal *principals.Principal) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	if principal.ID == "" {
		principal.ID = uuid.New().String()
	}
	pr.records[principal.ID] = principal
	pr.emailIds[principal.Email] = principal.ID
	return nil
}

func (pr *FakePrincipalRepo) Delete(email string) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	id, ok := pr.emailIds[email]
	if !ok {
		return errors.New("not found")
	}
	delete(pr.emailIds, email)
	delete(pr.records, id)
	return nil
}

func (pr *FakePrincipalRepo) GetByEmail(email string) (*principals.Principal, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	id, ok := pr.emailIds[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return pr.records[id], nil
}

func (pr *FakePrincipalRepo) GetByID(id string) (*principals.Principal, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	if _, ok := pr.records[id]; !ok {
		return nil, errors.New("not found")
	}
	return pr.records[id], nil
}

func (pr *FakePrincipalRepo) List(offset, limit int) ([]*principals.Principal, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	all := make([]*principals.Principal, 0, len(pr.records))
	for _, p := range pr.records {
		all = append(all, p)
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
