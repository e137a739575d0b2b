package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codexx-academy/models"
)

func TestNotifyWorkspaceSkipsAdminLookalikeCredentials(t *testing.T) {
	db := newTestDB(t)
	workspace, _ := seedWorkspace(t, db, "maya")

	// Workspace "configured" with the admin's own credentials: this must be
	// treated as unconfigured, never as a second admin channel.
	require.NoError(t, db.Create(&models.NotificationSetting{
		WorkspaceID:      workspace.ID,
		TelegramBotToken: "admin-token",
		TelegramChatID:   "admin-chat",
		SMTPConfig: models.StringMap{
			"host":     "smtp.admin.example",
			"port":     "587",
			"email":    "admin@example.com",
			"password": "whatever",
		},
	}).Error)

	tg := &fakeTelegram{}
	email := &fakeEmail{}
	notifier := newTestNotifier(db, tg, email)

	notifier.NotifyWorkspace(workspace.ID, "subject", "body")

	assert.Empty(t, tg.messages())
	assert.Empty(t, email.sent)
}

func TestNotifyWorkspaceWithoutSettingsIsSilent(t *testing.T) {
	db := newTestDB(t)
	workspace, _ := seedWorkspace(t, db, "maya")

	tg := &fakeTelegram{}
	notifier := newTestNotifier(db, tg, &fakeEmail{})

	notifier.NotifyWorkspace(workspace.ID, "subject", "body")
	assert.Empty(t, tg.messages())
}

func TestNotifyAdminUsesAdminChannels(t *testing.T) {
	db := newTestDB(t)

	tg := &fakeTelegram{}
	email := &fakeEmail{}
	notifier := newTestNotifier(db, tg, email)

	notifier.NotifyAdmin("New inquiry", "body text")

	require.Len(t, tg.messages(), 1)
	assert.Contains(t, tg.messages()[0], "New inquiry")
	assert.Equal(t, []string{"admin-chat"}, tg.chats)
	require.Len(t, email.sent, 1)
	assert.Equal(t, "New inquiry", email.sent[0])
}

func TestNotifyWorkspaceUsesOwnChannels(t *testing.T) {
	db := newTestDB(t)
	workspace, _ := seedWorkspace(t, db, "maya")
	require.NoError(t, db.Create(&models.NotificationSetting{
		WorkspaceID:      workspace.ID,
		TelegramBotToken: "user-token",
		TelegramChatID:   "user-chat",
	}).Error)

	tg := &fakeTelegram{}
	notifier := newTestNotifier(db, tg, &fakeEmail{})

	notifier.NotifyWorkspace(workspace.ID, "hello", "body")

	require.Len(t, tg.messages(), 1)
	assert.Equal(t, []string{"user-chat"}, tg.chats)
}
