package services

import (
	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/repositories"
)

// ServiceCatalog manages a workspace's public service offerings.
type ServiceCatalog struct {
	services *repositories.ServiceRepository
}

func NewServiceCatalog(db *gorm.DB) *ServiceCatalog {
	return &ServiceCatalog{services: repositories.NewServiceRepository(db)}
}

func (s *ServiceCatalog) List(workspaceID string) ([]models.Service, error) {
	return s.services.FindByWorkspaceID(workspaceID)
}

func (s *ServiceCatalog) ListActive(workspaceID string) ([]models.Service, error) {
	return s.services.FindActiveByWorkspaceID(workspaceID)
}

func (s *ServiceCatalog) Get(workspaceID, id string) (*models.Service, error) {
	service, err := s.services.FindByID(id)
	if err != nil {
		return nil, err
	}
	if service.WorkspaceID != workspaceID {
		return nil, gorm.ErrRecordNotFound
	}
	return service, nil
}

// GetActive returns a service only when it is publicly visible.
func (s *ServiceCatalog) GetActive(workspaceID, id string) (*models.Service, error) {
	service, err := s.Get(workspaceID, id)
	if err != nil {
		return nil, err
	}
	if !service.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return service, nil
}

func (s *ServiceCatalog) Create(workspaceID string, req dto.ServiceRequest) (*models.Service, error) {
	service := &models.Service{
		WorkspaceID:      workspaceID,
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		PricingType:      pricingTypeOrDefault(req.PricingType),
		PriceMin:         req.PriceMin,
		PriceMax:         req.PriceMax,
		Currency:         currencyOrDefault(req.Currency),
		Deliverables:     req.Deliverables,
		Duration:         req.Duration,
		SkillsRequired:   req.SkillsRequired,
		Image:            req.Image,
		Gallery:          req.Gallery,
		IsActive:         true,
		IsFeatured:       req.IsFeatured,
	}
	if err := s.services.Create(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceCatalog) Update(workspaceID, id string, req dto.ServiceRequest) (*models.Service, error) {
	service, err := s.Get(workspaceID, id)
	if err != nil {
		return nil, err
	}

	service.Title = req.Title
	service.Description = req.Description
	service.ShortDescription = req.ShortDescription
	service.Category = req.Category
	service.PricingType = pricingTypeOrDefault(req.PricingType)
	service.PriceMin = req.PriceMin
	service.PriceMax = req.PriceMax
	service.Currency = currencyOrDefault(req.Currency)
	service.Deliverables = req.Deliverables
	service.Duration = req.Duration
	service.SkillsRequired = req.SkillsRequired
	service.Image = req.Image
	service.Gallery = req.Gallery
	service.IsFeatured = req.IsFeatured

	if err := s.services.Update(service); err != nil {
		return nil, err
	}
	return service, nil
}

// ToggleActive flips public visibility and returns the new state.
func (s *ServiceCatalog) ToggleActive(workspaceID, id string) (*models.Service, error) {
	service, err := s.Get(workspaceID, id)
	if err != nil {
		return nil, err
	}
	service.IsActive = !service.IsActive
	if err := s.services.Update(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceCatalog) Delete(workspaceID, id string) error {
	service, err := s.Get(workspaceID, id)
	if err != nil {
		return err
	}
	return s.services.Delete(service.ID)
}

func pricingTypeOrDefault(t string) models.PricingType {
	switch models.PricingType(t) {
	case models.PricingFixed, models.PricingHourly, models.PricingCustom:
		return models.PricingType(t)
	default:
		return models.PricingCustom
	}
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "USD"
	}
	return c
}
