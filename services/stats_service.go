package services

import (
	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
)

// StatsService builds the dashboard summary block.
type StatsService struct {
	db       *gorm.DB
	visitors *VisitorTracker
	messages *MessageService
	clients  *ClientService
}

func NewStatsService(db *gorm.DB, messages *MessageService, clients *ClientService) *StatsService {
	return &StatsService{
		db:       db,
		visitors: NewVisitorTracker(db),
		messages: messages,
		clients:  clients,
	}
}

func (s *StatsService) Dashboard(workspaceID string) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var count int64
	if err := s.db.Model(&models.Project{}).Where("workspace_id = ?", workspaceID).Count(&count).Error; err != nil {
		return nil, err
	}
	stats.Projects = int(count)

	if err := s.db.Model(&models.Skill{}).Where("workspace_id = ?", workspaceID).Count(&count).Error; err != nil {
		return nil, err
	}
	stats.Skills = int(count)

	if err := s.db.Model(&models.Client{}).Where("workspace_id = ?", workspaceID).Count(&count).Error; err != nil {
		return nil, err
	}
	stats.Clients = int(count)

	active, err := s.clients.CountActive(workspaceID)
	if err != nil {
		return nil, err
	}
	stats.ActiveClients = int(active)

	if err := s.db.Model(&models.Service{}).Where("workspace_id = ?", workspaceID).Count(&count).Error; err != nil {
		return nil, err
	}
	stats.Services = int(count)

	unread, err := s.messages.UnreadCount(workspaceID)
	if err != nil {
		return nil, err
	}
	stats.UnreadMessages = int(unread)

	visitors, err := s.visitors.Summary(workspaceID)
	if err != nil {
		return nil, err
	}
	stats.Visitors = *visitors

	return stats, nil
}
