package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a named proficiency with a 0-100 level.
type Skill struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkspaceID string    `json:"workspaceId" gorm:"type:varchar(36);not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	// No column default: a level clamped to zero must be stored as zero.
	Level       int       `json:"level"`
	CreatedAt   time.Time `json:"createdAt"`

	Workspace Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ClampLevel maps any out-of-range level to 0. This matches the historical
// behavior: a bad value resets the skill rather than snapping to a bound.
func ClampLevel(level int) int {
	if level < 0 || level > 100 {
		return 0
	}
	return level
}
