package repositories

import (
	"gorm.io/gorm"

	"github.com/codexx-academy/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) FindByWorkspaceID(workspaceID string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) CountByWorkspaceID(workspaceID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("workspace_id = ?", workspaceID).Count(&count).Error
	return count, err
}

func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *ProjectRepository) Delete(id string) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

func (r *ProjectRepository) DeleteByWorkspaceID(workspaceID string) error {
	return r.db.Delete(&models.Project{}, "workspace_id = ?", workspaceID).Error
}
