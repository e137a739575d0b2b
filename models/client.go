package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientStatus tracks a lead through the pipeline.
type ClientStatus string

const (
	ClientStatusLead        ClientStatus = "lead"
	ClientStatusNegotiation ClientStatus = "negotiation"
	ClientStatusInProgress  ClientStatus = "in-progress"
	ClientStatusDelivered   ClientStatus = "delivered"
	ClientStatusCancelled   ClientStatus = "cancelled"
)

// Client is a CRM lead record owned by one workspace.
type Client struct {
	ID                 string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkspaceID        string       `json:"workspaceId" gorm:"type:varchar(36);not null;index"`
	Name               string       `json:"name" gorm:"not null"`
	Email              string       `json:"email" gorm:"default:null"`
	Phone              string       `json:"phone" gorm:"type:varchar(50)"`
	Company            string       `json:"company" gorm:"default:null"`
	ProjectTitle       string       `json:"projectTitle" gorm:"default:null"`
	ProjectDescription string       `json:"projectDescription" gorm:"type:text"`
	Status             ClientStatus `json:"status" gorm:"type:varchar(50);default:'lead'"`
	Price              string       `json:"price" gorm:"type:varchar(50)"`
	Deadline           *time.Time   `json:"deadline,omitempty" gorm:"default:null"`
	StartDate          *time.Time   `json:"startDate,omitempty" gorm:"default:null"`
	Notes              string       `json:"notes" gorm:"type:text"`
	CreatedAt          time.Time    `json:"createdAt"`
	StatusUpdatedAt    *time.Time   `json:"statusUpdatedAt,omitempty" gorm:"default:null"`
	UpdatedAt          time.Time    `json:"updatedAt"`

	Workspace Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IsActive reports whether the client counts toward active engagements.
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusInProgress || c.Status == ClientStatusNegotiation
}
