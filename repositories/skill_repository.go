package repositories

import (
	"gorm.io/gorm"

	"github.com/codexx-academy/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) FindByWorkspaceID(workspaceID string) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *SkillRepository) CountByWorkspaceID(workspaceID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Where("workspace_id = ?", workspaceID).Count(&count).Error
	return count, err
}

func (r *SkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *SkillRepository) DeleteByWorkspaceID(workspaceID string) error {
	return r.db.Delete(&models.Skill{}, "workspace_id = ?", workspaceID).Error
}
