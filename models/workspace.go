package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTheme is applied to workspaces without an explicit theme setting.
const DefaultTheme = "luxury-gold"

// ValidThemes lists the selectable portfolio themes.
var ValidThemes = []string{
	"luxury-gold", "modern-dark", "clean-light", "terracotta-red",
	"vibrant-green", "silver-grey",
}

// IsValidTheme reports whether the theme is one of the selectable set.
func IsValidTheme(theme string) bool {
	for _, t := range ValidThemes {
		if t == theme {
			return true
		}
	}
	return false
}

// Workspace is the tenant isolation unit: one portfolio owner's data.
// The slug equals the owning user's username.
type Workspace struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"default:null"`
	Plan        string    `json:"plan" gorm:"type:varchar(50);default:'pro'"`
	Title       string    `json:"title" gorm:"default:null"`
	Photo       string    `json:"photo" gorm:"default:null"`
	About       string    `json:"about" gorm:"type:text"`
	Contact     StringMap `json:"contact" gorm:"type:jsonb"`
	Social      StringMap `json:"social" gorm:"type:jsonb"`
	Settings    StringMap `json:"settings" gorm:"type:jsonb"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Users    []User    `json:"users,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Skills   []Skill   `json:"skills,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Clients  []Client  `json:"clients,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Services []Service `json:"services,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Theme returns the configured theme or the platform default.
func (w *Workspace) Theme() string {
	if t, ok := w.Settings["theme"]; ok && t != "" {
		return t
	}
	return DefaultTheme
}
