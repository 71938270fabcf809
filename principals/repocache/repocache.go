// Package repocache wraps a principals.Repo with a TTL read-through cache.
// Principal records are effectively read-only between logins, so a short TTL
// keeps lookup traffic off the backing directory without staleness concerns.
package repocache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/harborline/portal/principals"
)

var _ principals.Repo = (*CachingRepo)(nil)

const (
	emailPrefix = "email:"
	idPrefix    = "id:"
)

type CachingRepo struct {
	next  principals.Repo
	cache *gocache.Cache
}

func New(next principals.Repo, ttl time.Duration) *CachingRepo {
	return &CachingRepo{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (cr *CachingRepo) GetByEmail(email string) (*principals.Principal, error) {
	if v, ok := cr.cache.Get(emailPrefix + email); ok {
		return v.(*principals.Principal), nil
	}
	p, err := cr.next.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	cr.set(p)
	return p, nil
}

func (cr *CachingRepo) GetByID(id string) (*principals.Principal, error) {
	if v, ok := cr.cache.Get(idPrefix + id); ok {
		return v.(*principals.Principal), nil
	}
	p, err := cr.next.GetByID(id)
	if err != nil {
		return nil, err
	}
	cr.set(p)
	return p, nil
}

// Upsert writes through and drops any cached copy so the next read observes
// the new record.
func (cr *CachingRepo) Upsert(principal *principals.Principal) error {
	if err := cr.next.Upsert(principal); err != nil {
		return err
	}
	cr.invalidate(principal)
	return nil
}

func (cr *CachingRepo) Delete(email string) error {
	if v, ok := cr.cache.Get(emailPrefix + email); ok {
		cr.invalidate(v.(*principals.Principal))
	}
	cr.cache.Delete(emailPrefix + email)
	return cr.next.Delete(email)
}

// List always hits the backing repo; admin listings are rare and want fresh data.
func (cr *CachingRepo) List(offset, limit int) ([]*principals.Principal, error) {
	return cr.next.List(offset, limit)
}

func (cr *CachingRepo) set(p *principals.Principal) {
	cr.cache.SetDefault(emailPrefix+p.Email, p)
	cr.cache.SetDefault(idPrefix+p.ID, p)
}

func (cr *CachingRepo) invalidate(p *principals.Principal) {
	cr.cache.Delete(emailPrefix + p.Email)
	cr.cache.Delete(idPrefix + p.ID)
}
