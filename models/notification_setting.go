package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationSetting stores the per-workspace notification credentials.
// Admin credentials never live here; they come from the environment.
type NotificationSetting struct {
	ID                   string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkspaceID          string     `json:"workspaceId" gorm:"type:varchar(36);not null;uniqueIndex"`
	TelegramBotToken     string     `json:"telegramBotToken" gorm:"default:null"`
	TelegramChatID       string     `json:"telegramChatId" gorm:"type:varchar(100)"`
	TelegramConfiguredAt *time.Time `json:"telegramConfiguredAt,omitempty" gorm:"default:null"`
	SMTPConfig           StringMap  `json:"smtpConfig" gorm:"type:jsonb"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func (n *NotificationSetting) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
