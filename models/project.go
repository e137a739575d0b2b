package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectType represents the portfolio entry variants
type ProjectType string

const (
	ProjectTypePortfolio       ProjectType = "portfolio"
	ProjectTypeRequest         ProjectType = "request"
	ProjectTypeServiceShowcase ProjectType = "service_showcase"
	ProjectTypeTraining        ProjectType = "training"
)

// Badge labels derived from the project type.
const (
	BadgeCompleted     = "completed"
	BadgeRequest       = "request"
	BadgeServiceResult = "service_result"
	BadgeTraining      = "training"
)

// RequestStatus values for "request" projects.
const (
	RequestStatusOpen       = "open"
	RequestStatusInProgress = "in-progress"
	RequestStatusClosed     = "closed"
)

// Project represents one portfolio entry. The active variant decides which
// optional fields are meaningful; the rest must stay cleared.
type Project struct {
	ID               string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkspaceID      string      `json:"workspaceId" gorm:"type:varchar(36);not null;index"`
	Title            string      `json:"title" gorm:"not null"`
	Description      string      `json:"description" gorm:"type:text"`
	ShortDescription string      `json:"shortDescription" gorm:"type:text"`
	Content          string      `json:"content" gorm:"type:text"`
	Image            string      `json:"image" gorm:"default:null"`
	DemoURL          string      `json:"demoUrl" gorm:"default:null"`
	GithubURL        string      `json:"githubUrl" gorm:"default:null"`
	Technologies     StringList  `json:"technologies" gorm:"type:jsonb"`
	Gallery          StringList  `json:"gallery" gorm:"type:jsonb"`
	ProjectType      ProjectType `json:"projectType" gorm:"type:varchar(50);default:'portfolio'"`
	Badge            string      `json:"badge" gorm:"type:varchar(50)"`

	// Request variant
	RequestBudgetMin *float64   `json:"requestBudgetMin,omitempty" gorm:"default:null"`
	RequestBudgetMax *float64   `json:"requestBudgetMax,omitempty" gorm:"default:null"`
	RequestDeadline  *time.Time `json:"requestDeadline,omitempty" gorm:"default:null"`
	RequestStatus    string     `json:"requestStatus,omitempty" gorm:"type:varchar(50)"`

	// Service showcase variant
	ServiceID string `json:"serviceId,omitempty" gorm:"type:varchar(36);default:null"`

	// Training variant
	SkillRelated StringList `json:"skillRelated,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Workspace Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// BadgeForType maps a project type to its display badge.
func BadgeForType(t ProjectType) string {
	switch t {
	case ProjectTypeRequest:
		return BadgeRequest
	case ProjectTypeServiceShowcase:
		return BadgeServiceResult
	case ProjectTypeTraining:
		return BadgeTraining
	default:
		return BadgeCompleted
	}
}

// ClearVariantFields zeroes every field not belonging to the active variant.
// Invariant: a project only carries the data of its current type.
func (p *Project) ClearVariantFields() {
	if p.ProjectType != ProjectTypeRequest {
		p.RequestBudgetMin = nil
		p.RequestBudgetMax = nil
		p.RequestDeadline = nil
		p.RequestStatus = ""
	}
	if p.ProjectType != ProjectTypeServiceShowcase {
		p.ServiceID = ""
	}
	if p.ProjectType != ProjectTypeTraining {
		p.SkillRelated = nil
	}
}
