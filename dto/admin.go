package dto

// AddUserRequest provisions a new workspace and owner account.
type AddUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Plan     string `json:"plan"`
}

// ProfileDiagnostics scores how complete a portfolio profile is.
type ProfileDiagnostics struct {
	ProfilePercent int      `json:"profile_percent"`
	ContentPercent int      `json:"content_percent"`
	MissingProfile []string `json:"missing_profile"`
	MissingContent []string `json:"missing_content"`
	Promoted       bool     `json:"promoted"`
	Demoted        bool     `json:"demoted"`
}

// DashboardStats is the summary block on the dashboard index.
type DashboardStats struct {
	Projects       int            `json:"projects"`
	Skills         int            `json:"skills"`
	Clients        int            `json:"clients"`
	ActiveClients  int            `json:"active_clients"`
	Services       int            `json:"services"`
	UnreadMessages int            `json:"unread_messages"`
	Visitors       VisitorSummary `json:"visitors"`
}

// BackupInfo describes one snapshot in the backup index.
type BackupInfo struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	CreatedAt string `json:"created_at"`
	SizeBytes int64  `json:"size_bytes"`
	Reason    string `json:"reason"`
}
