package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an authentication identity. Exactly one user owns each
// workspace in the current design.
type User struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkspaceID        string     `json:"workspaceId" gorm:"type:varchar(36);not null;index"`
	Username           string     `json:"username" gorm:"uniqueIndex;not null"`
	Email              string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash       string     `json:"-" gorm:"not null"` // Password hash is not exposed in JSON
	Role               Role       `json:"role" gorm:"type:varchar(10);default:'user'"`
	IsActive           bool       `json:"isActive" gorm:"default:true"`
	IsVerified         bool       `json:"isVerified" gorm:"default:false"`
	IsDemo             bool       `json:"isDemo" gorm:"default:false"`
	Badges             StringList `json:"badges" gorm:"type:jsonb"`
	MustChangePassword bool       `json:"mustChangePassword" gorm:"default:false"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	Workspace Workspace `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
