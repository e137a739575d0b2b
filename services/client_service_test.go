package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
)

// configureWorkspaceTelegram gives the workspace its own Telegram channel so
// the notifier has somewhere to deliver.
func configureWorkspaceTelegram(t *testing.T, db *gorm.DB, workspaceID string) {
	t.Helper()
	require.NoError(t, db.Create(&models.NotificationSetting{
		WorkspaceID:      workspaceID,
		TelegramBotToken: "user-token",
		TelegramChatID:   "user-chat",
	}).Error)
}

func TestClientStatusChangeStampsAndNotifiesOnce(t *testing.T) {
	db := newTestDB(t)
	workspace, _ := seedWorkspace(t, db, "maya")
	configureWorkspaceTelegram(t, db, workspace.ID)

	tg := &fakeTelegram{}
	svc := NewClientService(db, newTestNotifier(db, tg, &fakeEmail{}))

	client, err := svc.Create(workspace.ID, dto.ClientRequest{
		Name:   "Acme Corp",
		Status: string(models.ClientStatusLead),
	})
	require.NoError(t, err)
	assert.Nil(t, client.StatusUpdatedAt)
	assert.Empty(t, tg.messages())

	updated, err := svc.Update(workspace.ID, client.ID, dto.ClientRequest{
		Name:   "Acme Corp",
		Status: string(models.ClientStatusNegotiation),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.StatusUpdatedAt)
	sent := tg.messages()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "lead")
	assert.Contains(t, sent[0], "negotiation")
}

func TestClientUpdateWithoutStatusChangeStaysQuiet(t *testing.T) {
	db := newTestDB(t)
	workspace, _ := seedWorkspace(t, db, "maya")
	configureWorkspaceTelegram(t, db, workspace.ID)

	tg := &fakeTelegram{}
	svc := NewClientService(db, newTestNotifier(db, tg, &fakeEmail{}))

	client, err := svc.Create(workspace.ID, dto.ClientRequest{
		Name:   "Acme Corp",
		Status: string(models.ClientStatusLead),
	})
	require.NoError(t, err)

	updated, err := svc.Update(workspace.ID, client.ID, dto.ClientRequest{
		Name:   "Acme Corporation",
		Status: string(models.ClientStatusLead),
		Notes:  "renamed only",
	})
	require.NoError(t, err)

	assert.Nil(t, updated.StatusUpdatedAt)
	assert.Empty(t, tg.messages())
}

func TestClientAccessIsScopedToWorkspace(t *testing.T) {
	db := newTestDB(t)
	mine, _ := seedWorkspace(t, db, "maya")
	other, _ := seedWorkspace(t, db, "rival")

	svc := NewClientService(db, newTestNotifier(db, &fakeTelegram{}, &fakeEmail{}))

	client, err := svc.Create(mine.ID, dto.ClientRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = svc.Get(other.ID, client.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(other.ID, client.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCountActiveCountsPipelineStatuses(t *testing.T) {
	db := newTestDB(t)
	workspace, _ := seedWorkspace(t, db, "maya")
	svc := NewClientService(db, newTestNotifier(db, &fakeTelegram{}, &fakeEmail{}))

	statuses := []models.ClientStatus{
		models.ClientStatusLead,
		models.ClientStatusNegotiation,
		models.ClientStatusInProgress,
		models.ClientStatusDelivered,
	}
	for _, status := range statuses {
		_, err := svc.Create(workspace.ID, dto.ClientRequest{Name: "c", Status: string(status)})
		require.NoError(t, err)
	}

	active, err := svc.CountActive(workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)
}
