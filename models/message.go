package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageCategory selects routing and inbox visibility.
type MessageCategory string

const (
	CategoryPlatform  MessageCategory = "platform"
	CategoryPortfolio MessageCategory = "portfolio"
	CategoryInternal  MessageCategory = "internal"
)

// Sender roles recorded on messages.
const (
	SenderVisitor = "visitor"
	SenderUser    = "user"
	SenderAdmin   = "admin"
)

// AdminReceiverID marks messages addressed to the platform admin rather than
// a workspace user.
const AdminReceiverID = "admin"

// Message is one inbox entry. Root messages have a nil ParentID; replies
// reference their root, one level deep.
type Message struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	WorkspaceID *string         `json:"workspaceId" gorm:"type:varchar(36);index"`
	Name        string          `json:"name" gorm:"not null"`
	Email       string          `json:"email" gorm:"not null"`
	Body        string          `json:"message" gorm:"column:message;type:text;not null"`
	IsRead      bool            `json:"isRead" gorm:"default:false"`
	SenderID    string          `json:"senderId" gorm:"type:varchar(36);default:null"`
	ReceiverID  string          `json:"receiverId" gorm:"type:varchar(36);default:null"`
	ParentID    *string         `json:"parentId" gorm:"type:varchar(36);index;default:null"`
	SenderRole  string          `json:"senderRole" gorm:"type:varchar(20);default:'visitor'"`
	Category    MessageCategory `json:"category" gorm:"type:varchar(30);default:'portfolio'"`

	// Portfolio contact form fields
	RequestType  string `json:"requestType,omitempty" gorm:"type:varchar(100)"`
	InterestArea string `json:"interestArea,omitempty" gorm:"type:varchar(100)"`
	Seriousness  string `json:"seriousness,omitempty" gorm:"type:varchar(50)"`
	ContactPref  string `json:"contactPref,omitempty" gorm:"type:varchar(50)"`
	Company      string `json:"company,omitempty" gorm:"default:null"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// IsRoot reports whether the message starts a thread.
func (m *Message) IsRoot() bool {
	return m.ParentID == nil
}
