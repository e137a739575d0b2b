package repositories

import (
	"gorm.io/gorm"

	"github.com/codexx-academy/models"
)

type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func (r *WorkspaceRepository) FindByID(id string) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := r.db.First(&workspace, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *WorkspaceRepository) FindBySlug(slug string) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := r.db.First(&workspace, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *WorkspaceRepository) FindAll() ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if err := r.db.Order("created_at asc").Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *WorkspaceRepository) Create(workspace *models.Workspace) error {
	return r.db.Create(workspace).Error
}

func (r *WorkspaceRepository) Update(workspace *models.Workspace) error {
	return r.db.Save(workspace).Error
}

func (r *WorkspaceRepository) Delete(id string) error {
	return r.db.Delete(&models.Workspace{}, "id = ?", id).Error
}
