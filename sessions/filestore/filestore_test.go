package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harborline/portal/principals"
	"github.com/harborline/portal/sessions"
	"github.com/harborline/portal/sessions/filestore"
)

func testPrincipal() *principals.Principal {
	return &principals.Principal{
		ID:               "principal-1",
		Name:             "Alice Chen",
		Email:            "alice@acme.com",
		Role:             principals.RoleClientAdmin,
		OrganizationID:   "org-acme",
		OrganizationName: "Acme Industrial",
		Status:           principals.StatusActive,
	}
}

func TestLoadMissingFileIsNoSession(t *testing.T) {
	store := filestore.New(filepath.Join(t.TempDir(), "session.json"))

	session, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := filestore.New(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Save(&sessions.StoredSession{Current: testPrincipal()}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "principal-1", loaded.Current.ID)
	require.False(t, loaded.Impersonating)
}

func TestSaveLoadRoundTripWithOverlay(t *testing.T) {
	store := filestore.New(filepath.Join(t.TempDir(), "session.json"))

	original := testPrincipal()
	target := testPrincipal()
	target.ID = "principal-2"
	target.Email = "ben@acme.com"

	require.NoError(t, store.Save(&sessions.StoredSession{
		Current:       target,
		Original:      original,
		Impersonating: true,
	}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "principal-2", loaded.Current.ID)
	require.Equal(t, "principal-1", loaded.Original.ID)
	require.True(t, loaded.Impersonating)
}

func TestLoadMalformedFileIsNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	session, err := filestore.New(path).Load()
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestLoadEmptyRecordIsNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	session, err := filestore.New(path).Load()
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestSaveOverwritesPriorSession(t *testing.T) {
	store := filestore.New(filepath.Join(t.TempDir(), "session.json"))

	first := testPrincipal()
	require.NoError(t, store.Save(&sessions.StoredSession{Current: first}))

	second := testPrincipal()
	second.ID = "principal-2"
	require.NoError(t, store.Save(&sessions.StoredSession{Current: second}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "principal-2", loaded.Current.ID)
}

func TestClearRemovesSession(t *testing.T) {
	store := filestore.New(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Save(&sessions.StoredSession{Current: testPrincipal()}))
	require.NoError(t, store.Clear())

	session, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestClearMissingFileIsNotAnError(t *testing.T) {
	store := filestore.New(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Clear())
}
