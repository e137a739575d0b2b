package dto

// TimeLayout is the timestamp format used throughout the legacy JSON store.
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is the date-only format used for deadlines and start dates.
const DateLayout = "2006-01-02"

// SkillEntry is one skill inside the portfolio aggregate.
type SkillEntry struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// ProjectEntry is one project inside the portfolio aggregate. Date fields are
// strings because that is what the legacy store holds.
type ProjectEntry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Content          string   `json:"content"`
	Image            string   `json:"image"`
	DemoURL          string   `json:"demo_url"`
	GithubURL        string   `json:"github_url"`
	Technologies     []string `json:"technologies"`
	Gallery          []string `json:"gallery"`
	SkillRelated     []string `json:"skill_related,omitempty"`
	ProjectType      string   `json:"project_type"`
	Badge            string   `json:"badge"`
	ServiceID        string   `json:"service_id,omitempty"`
	RequestBudgetMin *float64 `json:"request_budget_min,omitempty"`
	RequestBudgetMax *float64 `json:"request_budget_max,omitempty"`
	RequestDeadline  string   `json:"request_deadline,omitempty"`
	RequestStatus    string   `json:"request_status,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
}

// ClientEntry is one client record inside the aggregate.
type ClientEntry struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	ProjectTitle       string `json:"project_title"`
	ProjectDescription string `json:"project_description"`
	Status             string `json:"status"`
	Price              string `json:"price"`
	Deadline           string `json:"deadline,omitempty"`
	StartDate          string `json:"start_date,omitempty"`
	Notes              string `json:"notes"`
	CreatedAt          string `json:"created_at,omitempty"`
	StatusUpdatedAt    string `json:"status_updated_at,omitempty"`
}

// MessageEntry is one message inside the aggregate.
type MessageEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	Read       bool   `json:"read"`
	Category   string `json:"category"`
	SenderID   string `json:"sender_id,omitempty"`
	ReceiverID string `json:"receiver_id,omitempty"`
	SenderRole string `json:"sender_role,omitempty"`
	ParentID   string `json:"parent_id,omitempty"`
	Date       string `json:"date,omitempty"`
}

// ServiceEntry is one service offering inside the aggregate.
type ServiceEntry struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Category         string   `json:"category"`
	PricingType      string   `json:"pricing_type"`
	PriceMin         *float64 `json:"price_min"`
	PriceMax         *float64 `json:"price_max"`
	Currency         string   `json:"currency"`
	Deliverables     []string `json:"deliverables"`
	Duration         string   `json:"duration"`
	SkillsRequired   []string `json:"skills_required"`
	Image            string   `json:"image"`
	Gallery          []string `json:"gallery"`
	IsActive         bool     `json:"is_active"`
	IsFeatured       bool     `json:"is_featured"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

// VisitEntry is one page view inside the visitor aggregate.
type VisitEntry struct {
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
}

// VisitorSummary aggregates visitor logs for one workspace.
type VisitorSummary struct {
	Total     int          `json:"total"`
	Today     []VisitEntry `json:"today"`
	UniqueIPs []string     `json:"unique_ips"`
}

// TelegramConfig holds one workspace's Telegram credentials.
type TelegramConfig struct {
	BotToken     string `json:"bot_token"`
	ChatID       string `json:"chat_id"`
	ConfiguredAt string `json:"configured_at,omitempty"`
}

// SMTPConfig holds one workspace's SMTP credentials.
type SMTPConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ConfiguredAt string `json:"configured_at,omitempty"`
}

// NotificationConfig groups the per-workspace notification channels.
type NotificationConfig struct {
	Telegram *TelegramConfig `json:"telegram,omitempty"`
	SMTP     *SMTPConfig     `json:"smtp,omitempty"`
}

// PortfolioState is the denormalized per-tenant aggregate: the unit the
// persistence shim loads and saves, and the value stored per user in the
// legacy JSON file.
type PortfolioState struct {
	Username      string             `json:"username"`
	Name          string             `json:"name"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	About         string             `json:"about"`
	Photo         string             `json:"photo"`
	Skills        []SkillEntry       `json:"skills"`
	Projects      []ProjectEntry     `json:"projects"`
	Clients       []ClientEntry      `json:"clients"`
	Messages      []MessageEntry     `json:"messages"`
	Services      []ServiceEntry     `json:"services"`
	Contact       map[string]string  `json:"contact"`
	Social        map[string]string  `json:"social"`
	Settings      map[string]string  `json:"settings"`
	Visitors      VisitorSummary     `json:"visitors"`
	Notifications NotificationConfig `json:"notifications,omitempty"`
	IsVerified    bool               `json:"is_verified,omitempty"`
}

// DefaultPortfolioState is the template returned for unknown tenants.
func DefaultPortfolioState() PortfolioState {
	return PortfolioState{
		Name:        "",
		Title:       "Web Developer & Designer",
		Description: "Welcome to my professional portfolio.",
		Skills:      []SkillEntry{},
		Projects:    []ProjectEntry{},
		Clients:     []ClientEntry{},
		Messages:    []MessageEntry{},
		Services:    []ServiceEntry{},
		Contact:     map[string]string{},
		Social:      map[string]string{},
		Settings:    map[string]string{"theme": "luxury-gold"},
		Visitors:    VisitorSummary{Today: []VisitEntry{}, UniqueIPs: []string{}},
	}
}

// Theme returns the aggregate's theme setting or the platform default.
func (s *PortfolioState) Theme() string {
	if t, ok := s.Settings["theme"]; ok && t != "" {
		return t
	}
	return "luxury-gold"
}

// Plausible reports whether a legacy record looks like a real portfolio and
// is worth migrating into the relational store.
func (s *PortfolioState) Plausible() bool {
	return s.Username != ""
}
