package dto

// GeneralUpdateRequest updates the workspace identity block.
type GeneralUpdateRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
}

// AboutUpdateRequest updates the about text.
type AboutUpdateRequest struct {
	About string `json:"about"`
}

// SkillInput carries one skill row from the skills form. Level arrives as a
// string and is parsed and clamped server-side.
type SkillInput struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// SkillsUpdateRequest replaces the whole skill list.
type SkillsUpdateRequest struct {
	Skills []SkillInput `json:"skills"`
}

// ProjectRequest creates or updates a project.
type ProjectRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Content          string   `json:"content"`
	Image            string   `json:"image"`
	DemoURL          string   `json:"demo_url"`
	GithubURL        string   `json:"github_url"`
	Technologies     []string `json:"technologies"`
	Gallery          []string `json:"gallery"`
	SkillRelated     []string `json:"skill_related"`
	ProjectType      string   `json:"project_type"`
	ServiceID        string   `json:"service_id"`
	RequestBudgetMin *float64 `json:"request_budget_min"`
	RequestBudgetMax *float64 `json:"request_budget_max"`
	RequestDeadline  string   `json:"request_deadline"`
	RequestStatus    string   `json:"request_status"`
}

// ContactUpdateRequest replaces the contact map.
type ContactUpdateRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// SocialUpdateRequest replaces the social links map.
type SocialUpdateRequest struct {
	Links map[string]string `json:"links"`
}

// SettingsUpdateRequest updates workspace settings (theme etc).
type SettingsUpdateRequest struct {
	Theme string `json:"theme"`
}

// TelegramSettingsRequest saves per-workspace Telegram credentials.
type TelegramSettingsRequest struct {
	BotToken string `json:"bot_token" binding:"required"`
	ChatID   string `json:"chat_id" binding:"required"`
}

// SMTPSettingsRequest saves per-workspace SMTP credentials.
type SMTPSettingsRequest struct {
	Host     string `json:"host" binding:"required"`
	Port     string `json:"port" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ClientRequest creates or updates a client record.
type ClientRequest struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	ProjectTitle       string `json:"project_title"`
	ProjectDescription string `json:"project_description"`
	Status             string `json:"status"`
	Price              string `json:"price"`
	Deadline           string `json:"deadline"`
	StartDate          string `json:"start_date"`
	Notes              string `json:"notes"`
}

// ServiceRequest creates or updates a service offering.
type ServiceRequest struct {
	Title            string   `json:"title" binding:"required"`
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
	IsFeatured       bool     `json:"is_featured"`
}
