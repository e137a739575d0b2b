package services

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackupService(t *testing.T) (*BackupService, string) {
	t.Helper()
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`{"portfolios":{}}`), 0o644))
	return NewBackupService(dataFile, filepath.Join(dir, "backups")), dataFile
}

func TestBackupCreateAndList(t *testing.T) {
	svc, _ := newTestBackupService(t)

	info, err := svc.Create("manual")
	require.NoError(t, err)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, "manual", info.Reason)
	assert.Greater(t, info.SizeBytes, int64(0))

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, info.ID, list[0].ID)
}

func TestBackupRotationKeepsNewestTwenty(t *testing.T) {
	svc, dataFile := newTestBackupService(t)

	// Snapshot filenames have second resolution; vary the content instead of
	// sleeping and lean on index order for rotation.
	var firstID string
	for i := 0; i < backupKeep+5; i++ {
		require.NoError(t, os.WriteFile(dataFile, []byte(fmt.Sprintf(`{"n":%d}`, i)), 0o644))
		info, err := svc.Create("manual")
		require.NoError(t, err)
		if i == 0 {
			firstID = info.ID
		}
		time.Sleep(2 * time.Millisecond)
	}

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, backupKeep)
	for _, b := range list {
		assert.NotEqual(t, firstID, b.ID)
	}
}

func TestBackupRestoreBringsBackOldData(t *testing.T) {
	svc, dataFile := newTestBackupService(t)

	require.NoError(t, os.WriteFile(dataFile, []byte(`{"state":"old"}`), 0o644))
	info, err := svc.Create("manual")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dataFile, []byte(`{"state":"new"}`), 0o644))
	require.NoError(t, svc.Restore(info.ID))

	data, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Equal(t, `{"state":"old"}`, string(data))

	// The restore also snapshotted the replaced state.
	list, err := svc.List()
	require.NoError(t, err)
	found := false
	for _, b := range list {
		if b.Reason == "before restore" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBackupDeleteRemovesSnapshotAndIndexEntry(t *testing.T) {
	svc, _ := newTestBackupService(t)

	info, err := svc.Create("manual")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(info.ID))

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Error(t, svc.Delete(info.ID))
}
