package repositories

import (
	"gorm.io/gorm"

	"github.com/codexx-academy/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) FindByID(id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) FindByWorkspaceID(workspaceID string) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at asc").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) CountActive(workspaceID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).
		Where("workspace_id = ? AND status IN ?", workspaceID, []string{string(models.ClientStatusInProgress), string(models.ClientStatusNegotiation)}).
		Count(&count).Error
	return count, err
}

func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *ClientRepository) Delete(id string) error {
	return r.db.Delete(&models.Client{}, "id = ?", id).Error
}

func (r *ClientRepository) DeleteByWorkspaceID(workspaceID string) error {
	return r.db.Delete(&models.Client{}, "workspace_id = ?", workspaceID).Error
}
