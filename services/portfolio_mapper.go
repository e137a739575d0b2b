package services

import (
	"time"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.TimeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.TimeLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.DateLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(dto.TimeLayout, s); err == nil {
		return t
	}
	return time.Time{}
}

func parseTimePtr(s string) *time.Time {
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(dto.DateLayout, s); err == nil {
		return &t
	}
	return nil
}

func projectToEntry(p models.Project) dto.ProjectEntry {
	return dto.ProjectEntry{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		Image:            p.Image,
		DemoURL:          p.DemoURL,
		GithubURL:        p.GithubURL,
		Technologies:     p.Technologies,
		Gallery:          p.Gallery,
		SkillRelated:     p.SkillRelated,
		ProjectType:      string(p.ProjectType),
		Badge:            p.Badge,
		ServiceID:        p.ServiceID,
		RequestBudgetMin: p.RequestBudgetMin,
		RequestBudgetMax: p.RequestBudgetMax,
		RequestDeadline:  formatDatePtr(p.RequestDeadline),
		RequestStatus:    p.RequestStatus,
		CreatedAt:        formatTime(p.CreatedAt),
	}
}

func projectFromEntry(workspaceID string, e dto.ProjectEntry) models.Project {
	projectType := models.ProjectType(e.ProjectType)
	if projectType == "" {
		projectType = models.ProjectTypePortfolio
	}
	p := models.Project{
		ID:               e.ID,
		WorkspaceID:      workspaceID,
		Title:            e.Title,
		Description:      e.Description,
		ShortDescription: e.ShortDescription,
		Content:          e.Content,
		Image:            e.Image,
		DemoURL:          e.DemoURL,
		GithubURL:        e.GithubURL,
		Technologies:     e.Technologies,
		Gallery:          e.Gallery,
		SkillRelated:     e.SkillRelated,
		ProjectType:      projectType,
		Badge:            models.BadgeForType(projectType),
		ServiceID:        e.ServiceID,
		RequestBudgetMin: e.RequestBudgetMin,
		RequestBudgetMax: e.RequestBudgetMax,
		RequestDeadline:  parseDatePtr(e.RequestDeadline),
		RequestStatus:    e.RequestStatus,
		CreatedAt:        parseTime(e.CreatedAt),
	}
	p.ClearVariantFields()
	return p
}

func clientToEntry(c models.Client) dto.ClientEntry {
	return dto.ClientEntry{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Company:            c.Company,
		ProjectTitle:       c.ProjectTitle,
		ProjectDescription: c.ProjectDescription,
		Status:             string(c.Status),
		Price:              c.Price,
		Deadline:           formatDatePtr(c.Deadline),
		StartDate:          formatDatePtr(c.StartDate),
		Notes:              c.Notes,
		CreatedAt:          formatTime(c.CreatedAt),
		StatusUpdatedAt:    formatTimePtr(c.StatusUpdatedAt),
	}
}

func clientFromEntry(workspaceID string, e dto.ClientEntry) models.Client {
	status := models.ClientStatus(e.Status)
	if status == "" {
		status = models.ClientStatusLead
	}
	return models.Client{
		ID:                 e.ID,
		WorkspaceID:        workspaceID,
		Name:               e.Name,
		Email:              e.Email,
		Phone:              e.Phone,
		Company:            e.Company,
		ProjectTitle:       e.ProjectTitle,
		ProjectDescription: e.ProjectDescription,
		Status:             status,
		Price:              e.Price,
		Deadline:           parseDatePtr(e.Deadline),
		StartDate:          parseDatePtr(e.StartDate),
		Notes:              e.Notes,
		CreatedAt:          parseTime(e.CreatedAt),
		StatusUpdatedAt:    parseTimePtr(e.StatusUpdatedAt),
	}
}

func messageToEntry(m models.Message) dto.MessageEntry {
	parentID := ""
	if m.ParentID != nil {
		parentID = *m.ParentID
	}
	return dto.MessageEntry{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Message:    m.Body,
		Read:       m.IsRead,
		Category:   string(m.Category),
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		SenderRole: m.SenderRole,
		ParentID:   parentID,
		Date:       formatTime(m.CreatedAt),
	}
}

func messageFromEntry(workspaceID string, e dto.MessageEntry) models.Message {
	category := models.MessageCategory(e.Category)
	if category == "" {
		category = models.CategoryPortfolio
	}
	var parentID *string
	if e.ParentID != "" {
		pid := e.ParentID
		parentID = &pid
	}
	wsID := workspaceID
	return models.Message{
		ID:          e.ID,
		WorkspaceID: &wsID,
		Name:        e.Name,
		Email:       e.Email,
		Body:        e.Message,
		IsRead:      e.Read,
		Category:    category,
		SenderID:    e.SenderID,
		ReceiverID:  e.ReceiverID,
		SenderRole:  e.SenderRole,
		ParentID:    parentID,
		CreatedAt:   parseTime(e.Date),
	}
}

func serviceToEntry(s models.Service) dto.ServiceEntry {
	return dto.ServiceEntry{
		ID:               s.ID,
		Title:            s.Title,
		Description:      s.Description,
		ShortDescription: s.ShortDescription,
		Category:         s.Category,
		PricingType:      string(s.PricingType),
		PriceMin:         s.PriceMin,
		PriceMax:         s.PriceMax,
		Currency:         s.Currency,
		Deliverables:     s.Deliverables,
		Duration:         s.Duration,
		SkillsRequired:   s.SkillsRequired,
		Image:            s.Image,
		Gallery:          s.Gallery,
		IsActive:         s.IsActive,
		IsFeatured:       s.IsFeatured,
		CreatedAt:        formatTime(s.CreatedAt),
		UpdatedAt:        formatTime(s.UpdatedAt),
	}
}

func serviceFromEntry(workspaceID string, e dto.ServiceEntry) models.Service {
	pricing := models.PricingType(e.PricingType)
	if pricing == "" {
		pricing = models.PricingFixed
	}
	currency := e.Currency
	if currency == "" {
		currency = "USD"
	}
	return models.Service{
		ID:               e.ID,
		WorkspaceID:      workspaceID,
		Title:            e.Title,
		Description:      e.Description,
		ShortDescription: e.ShortDescription,
		Category:         e.Category,
		PricingType:      pricing,
		PriceMin:         e.PriceMin,
		PriceMax:         e.PriceMax,
		Currency:         currency,
		Deliverables:     e.Deliverables,
		Duration:         e.Duration,
		SkillsRequired:   e.SkillsRequired,
		Image:            e.Image,
		Gallery:          e.Gallery,
		IsActive:         e.IsActive,
		IsFeatured:       e.IsFeatured,
		CreatedAt:        parseTime(e.CreatedAt),
	}
}
