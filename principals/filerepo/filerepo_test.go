package filerepo_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harborline/portal/principals"
	"github.com/harborline/portal/principals/filerepo"
)

func TestUpsertSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "principals.json")

	repo, err := filerepo.New(path)
	require.NoError(t, err)

	hash, err := principals.HashPassword("Harborline1")
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(&principals.Principal{
		ID:               "principal-1",
		Name:             "Alice Chen",
		Email:            "alice@acme.com",
		Role:             principals.RoleClientAdmin,
		OrganizationID:   "org-acme",
		OrganizationName: "Acme Industrial",
		Status:           principals.StatusActive,
		PasswordHash:     hash,
	}))

	reopened, err := filerepo.New(path)
	require.NoError(t, err)

	p, err := reopened.GetByEmail("alice@acme.com")
	require.NoError(t, err)
	require.Equal(t, "principal-1", p.ID)
	require.Equal(t, principals.RoleClientAdmin, p.Role)
	require.Equal(t, hash, p.PasswordHash, "password hash must survive the round trip")
}

func TestGetMissingPrincipal(t *testing.T) {
	repo, err := filerepo.New(filepath.Join(t.TempDir(), "principals.json"))
	require.NoError(t, err)

	_, err = repo.GetByEmail("nobody@nowhere.com")
	require.ErrorIs(t, err, filerepo.ErrNotFound)

	_, err = repo.GetByID("ghost")
	require.ErrorIs(t, err, filerepo.ErrNotFound)
}

func TestDeleteRemovesPrincipal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "principals.json")
	repo, err := filerepo.New(path)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(&principals.Principal{ID: "principal-1", Email: "alice@acme.com"}))
	require.NoError(t, repo.Delete("alice@acme.com"))

	_, err = repo.GetByEmail("alice@acme.com")
	require.ErrorIs(t, err, filerepo.ErrNotFound)

	reopened, err := filerepo.New(path)
	require.NoError(t, err)
	_, err = reopened.GetByEmail("alice@acme.com")
	require.ErrorIs(t, err, filerepo.ErrNotFound)
}

func TestListIsOrderedByEmail(t *testing.T) {
	repo, err := filerepo.New(filepath.Join(t.TempDir(), "principals.json"))
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(&principals.Principal{ID: "2", Email: "zoe@acme.com"}))
	require.NoError(t, repo.Upsert(&principals.Principal{ID: "1", Email: "alice@acme.com"}))

	list, err := repo.List(0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "alice@acme.com", list[0].Email)
	require.Equal(t, "zoe@acme.com", list[1].Email)
}

func TestGetReturnsACopy(t *testing.T) {
	repo, err := filerepo.New(filepath.Join(t.TempDir(), "principals.json"))
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(&principals.Principal{ID: "1", Email: "alice@acme.com", Name: "Alice"}))

	p, err := repo.GetByEmail("alice@acme.com")
	require.NoError(t, err)
	p.Name = "mutated"

	again, err := repo.GetByEmail("alice@acme.com")
	require.NoError(t, err)
	require.Equal(t, "Alice", again.Name)
}
