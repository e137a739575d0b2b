package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitorLog is one append-only row per public page view.
type VisitorLog struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkspaceID string    `json:"workspaceId" gorm:"type:varchar(36);not null;index:idx_visitor_workspace_date"`
	IPAddress   string    `json:"ipAddress" gorm:"type:varchar(45);not null"`
	UserAgent   string    `json:"userAgent" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index:idx_visitor_workspace_date"`
}

func (v *VisitorLog) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
