package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codexx-academy/dto"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data.json"))
}

func TestReadMissingFileYieldsEmptyDataset(t *testing.T) {
	store := newStore(t)

	data, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, data.Portfolios)
	assert.Empty(t, data.Users)
}

func TestSetAndGetPortfolio(t *testing.T) {
	store := newStore(t)

	state := dto.DefaultPortfolioState()
	state.Name = "Maya"
	require.NoError(t, store.SetPortfolio("maya", state))

	loaded, ok, err := store.GetPortfolio("maya")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Maya", loaded.Name)
	assert.Equal(t, "maya", loaded.Username)

	_, ok, err = store.GetPortfolio("nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadMigratesSingleTenantLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	legacy := `{
		"username": "pioneer",
		"name": "Pioneer",
		"skills": [{"name": "HTML", "level": 80}],
		"projects": [],
		"contact": {"email": "p@example.com"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	store := New(path)
	data, err := store.Read()
	require.NoError(t, err)

	state, ok := data.Portfolios["pioneer"]
	require.True(t, ok)
	assert.Equal(t, "Pioneer", state.Name)
	require.Len(t, state.Skills, 1)
	assert.Equal(t, 80, state.Skills[0].Level)
}

func TestReadMigratesAnonymousLegacyFileUnderAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Solo", "skills": []}`), 0o644))

	store := New(path)
	data, err := store.Read()
	require.NoError(t, err)

	state, ok := data.Portfolios["admin"]
	require.True(t, ok)
	assert.Equal(t, "Solo", state.Name)
	assert.Equal(t, "admin", state.Username)
}

func TestDeletePortfolioRemovesStateAndAccount(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.SetPortfolio("maya", dto.DefaultPortfolioState()))
	require.NoError(t, store.Update(func(data *FileData) error {
		data.Users = append(data.Users, UserRecord{Username: "maya"}, UserRecord{Username: "other"})
		return nil
	}))

	require.NoError(t, store.DeletePortfolio("maya"))

	data, err := store.Read()
	require.NoError(t, err)
	_, ok := data.Portfolios["maya"]
	assert.False(t, ok)
	require.Len(t, data.Users, 1)
	assert.Equal(t, "other", data.Users[0].Username)
}

func TestWriteIsAtomicNoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "data.json"))

	require.NoError(t, store.SetPortfolio("maya", dto.DefaultPortfolioState()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}
