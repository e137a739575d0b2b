package dto

// ContactRequest is the public portfolio contact form payload. Website is a
// honeypot field: humans never see it, bots fill it.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
	Website string `json:"website"`
}

// AcademyContactRequest is the platform-level contact form payload.
type AcademyContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Message      string `json:"message" binding:"required"`
	RequestType  string `json:"request_type"`
	InterestArea string `json:"interest_area"`
	Seriousness  string `json:"seriousness"`
	ContactPref  string `json:"contact_pref"`
	Company      string `json:"company"`
	Website      string `json:"website"`
}

// InternalMessageRequest composes a user-to-user or user-to-admin message.
type InternalMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// ReplyRequest replies within an existing thread.
type ReplyRequest struct {
	Message string `json:"message" binding:"required"`
}

// MessageThread is a root message with its replies, as returned to the UI.
type MessageThread struct {
	Root    MessageEntry   `json:"root"`
	Replies []MessageEntry `json:"replies"`
}
