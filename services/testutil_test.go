package services

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/codexx-academy/config"
	"github.com/codexx-academy/database"
	"github.com/codexx-academy/lib/jsonstore"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/utils"
)

// newTestDB opens an isolated in-memory database with the full schema. The
// package-level handle is pointed at it so auth helpers see the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	return db
}

func newTestStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	return jsonstore.New(t.TempDir() + "/data.json")
}

// seedWorkspace creates a workspace plus its owner account.
func seedWorkspace(t *testing.T, db *gorm.DB, username string) (*models.Workspace, *models.User) {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	workspace := &models.Workspace{
		Name:     username,
		Slug:     username,
		Settings: models.StringMap{"theme": models.DefaultTheme},
	}
	require.NoError(t, db.Create(workspace).Error)

	user := &models.User{
		WorkspaceID:  workspace.ID,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)

	return workspace, user
}

// fakeTelegram records sent messages instead of hitting the Bot API.
type fakeTelegram struct {
	mu    sync.Mutex
	sent  []string
	chats []string
}

func (f *fakeTelegram) Send(_ context.Context, _, chatID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	f.chats = append(f.chats, chatID)
	return nil
}

func (f *fakeTelegram) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

// fakeEmail records outgoing mail.
type fakeEmail struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeEmail) Send(_ config.SMTPCredentials, _, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, subject)
	return nil
}

// newTestNotifier wires fakes and inline delivery.
func newTestNotifier(db *gorm.DB, tg *fakeTelegram, email *fakeEmail) *NotificationService {
	admin := config.AdminNotifications{
		Telegram: config.TelegramCredentials{BotToken: "admin-token", ChatID: "admin-chat"},
		SMTP: config.SMTPCredentials{
			Host: "smtp.admin.example", Port: "587",
			Email: "admin@example.com", Password: "adminpass",
		},
		RecipientEmail: "admin@example.com",
	}
	return NewNotificationServiceWithSenders(db, tg, email, admin)
}
