package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/repositories"
)

// ClientService manages the per-workspace client pipeline. Status changes
// stamp StatusUpdatedAt and emit exactly one notification naming the old and
// new status.
type ClientService struct {
	clients  *repositories.ClientRepository
	notifier *NotificationService
}

func NewClientService(db *gorm.DB, notifier *NotificationService) *ClientService {
	return &ClientService{
		clients:  repositories.NewClientRepository(db),
		notifier: notifier,
	}
}

func (s *ClientService) List(workspaceID string) ([]models.Client, error) {
	return s.clients.FindByWorkspaceID(workspaceID)
}

func (s *ClientService) Get(workspaceID, id string) (*models.Client, error) {
	client, err := s.clients.FindByID(id)
	if err != nil {
		return nil, err
	}
	if client.WorkspaceID != workspaceID {
		return nil, gorm.ErrRecordNotFound
	}
	return client, nil
}

func (s *ClientService) Create(workspaceID string, req dto.ClientRequest) (*models.Client, error) {
	status := models.ClientStatus(req.Status)
	if status == "" {
		status = models.ClientStatusLead
	}

	client := &models.Client{
		WorkspaceID:        workspaceID,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Company:            req.Company,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		Status:             status,
		Price:              req.Price,
		Deadline:           parseDatePtr(req.Deadline),
		StartDate:          parseDatePtr(req.StartDate),
		Notes:              req.Notes,
	}
	if err := s.clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update applies the request to an existing client. A status transition
// stamps StatusUpdatedAt and notifies the workspace once; saving the same
// status is not a transition.
func (s *ClientService) Update(workspaceID, id string, req dto.ClientRequest) (*models.Client, error) {
	client, err := s.Get(workspaceID, id)
	if err != nil {
		return nil, err
	}

	oldStatus := client.Status
	newStatus := models.ClientStatus(req.Status)
	if newStatus == "" {
		newStatus = oldStatus
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Company = req.Company
	client.ProjectTitle = req.ProjectTitle
	client.ProjectDescription = req.ProjectDescription
	client.Price = req.Price
	client.Deadline = parseDatePtr(req.Deadline)
	client.StartDate = parseDatePtr(req.StartDate)
	client.Notes = req.Notes
	client.Status = newStatus

	statusChanged := newStatus != oldStatus
	if statusChanged {
		now := time.Now()
		client.StatusUpdatedAt = &now
	}

	if err := s.clients.Update(client); err != nil {
		return nil, err
	}

	if statusChanged {
		s.notifier.NotifyWorkspace(workspaceID,
			fmt.Sprintf("Client status updated: %s", client.Name),
			fmt.Sprintf("%s moved from %s to %s", client.Name, oldStatus, newStatus))
	}

	return client, nil
}

func (s *ClientService) Delete(workspaceID, id string) error {
	client, err := s.Get(workspaceID, id)
	if err != nil {
		return err
	}
	return s.clients.Delete(client.ID)
}

func (s *ClientService) CountActive(workspaceID string) (int64, error) {
	return s.clients.CountActive(workspaceID)
}
