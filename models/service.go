package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PricingType for service offerings.
type PricingType string

const (
	PricingFixed  PricingType = "fixed"
	PricingHourly PricingType = "hourly"
	PricingCustom PricingType = "custom"
)

// Service is a public offering listed on a portfolio.
type Service struct {
	ID               string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkspaceID      string      `json:"workspaceId" gorm:"type:varchar(36);not null;index"`
	Title            string      `json:"title" gorm:"not null"`
	Description      string      `json:"description" gorm:"type:text"`
	ShortDescription string      `json:"shortDescription" gorm:"type:text"`
	Category         string      `json:"category" gorm:"type:varchar(100)"`
	PricingType      PricingType `json:"pricingType" gorm:"type:varchar(50);default:'custom'"`
	PriceMin         *float64    `json:"priceMin,omitempty" gorm:"default:null"`
	PriceMax         *float64    `json:"priceMax,omitempty" gorm:"default:null"`
	Currency         string      `json:"currency" gorm:"type:varchar(10);default:'USD'"`
	Deliverables     StringList  `json:"deliverables" gorm:"type:jsonb"`
	Duration         string      `json:"duration" gorm:"type:varchar(100)"`
	SkillsRequired   StringList  `json:"skillsRequired" gorm:"type:jsonb"`
	Image            string      `json:"image" gorm:"default:null"`
	Gallery          StringList  `json:"gallery" gorm:"type:jsonb"`
	IsActive         bool        `json:"isActive" gorm:"default:true"`
	IsFeatured       bool        `json:"isFeatured" gorm:"default:false"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`

	Workspace Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
