package repofakes

import (
	"errors"
	"sort"
	"sync"

	"github.com/harborline/portal/organizations"
)

var _ organizations.Repo = (*FakeOrganizationRepo)(nil)

type FakeOrganizationRepo struct {
	orgs map[string]*organizations.Organization
	lock sync.RWMutex
}

func NewFakeOrganizationRepo() *FakeOrganizationRepo {
	return &FakeOrganizationRepo{orgs: make(map[string]*organizations.Organization)}
}

func (or *FakeOrganizationRepo) Upsert(org *organizations.Organization) error {
	or.lock.Lock()
	defer or.lock.Unlock()

	if org.ID == "" {
		return errors.New("organization id is required")
	}
	or.orgs[org.ID] = org
	return nil
}

func (or *FakeOrganizationRepo) Delete(orgID string) error {
	or.lock.Lock()
	defer or.lock.Unlock()

	delete(or.orgs, orgID)
	return nil
}

func (or *FakeOrganizationRepo) Get(orgID string) (*organizations.Organization, error) {
	or.lock.RLock()
	defer or.lock.RUnlock()

	org, ok := or.orgs[orgID]
	if !ok {
		return nil, errors.New("organization not found")
	}
	return org, nil
}

func (or *FakeOrganizationRepo) List(offset, limit int) ([]*organizations.Organization, error) {
	or.lock.RLock()
	defer or.lock.RUnlock()

	all := make([]*organizations.Organization, 0, len(or.orgs))
	for _, org := range or.orgs {
		all = append(all, org)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset >= len(all) {
		return []*organizations.Organization{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
