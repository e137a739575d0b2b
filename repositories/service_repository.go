package repositories

import (
	"gorm.io/gorm"

	"github.com/codexx-academy/models"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) FindByID(id string) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) FindByWorkspaceID(workspaceID string) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// FindActiveByWorkspaceID returns only publicly visible services, featured
// ones first.
func (r *ServiceRepository) FindActiveByWorkspaceID(workspaceID string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.
		Where("workspace_id = ? AND is_active = ?", workspaceID, true).
		Order("is_featured desc, created_at asc").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) CountByWorkspaceID(workspaceID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Where("workspace_id = ?", workspaceID).Count(&count).Error
	return count, err
}

func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepository) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

func (r *ServiceRepository) Delete(id string) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}

func (r *ServiceRepository) DeleteByWorkspaceID(workspaceID string) error {
	return r.db.Delete(&models.Service{}, "workspace_id = ?", workspaceID).Error
}
