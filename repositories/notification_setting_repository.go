package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/codexx-academy/models"
)

type NotificationSettingRepository struct {
	db *gorm.DB
}

func NewNotificationSettingRepository(db *gorm.DB) *NotificationSettingRepository {
	return &NotificationSettingRepository{db: db}
}

func (r *NotificationSettingRepository) FindByWorkspaceID(workspaceID string) (*models.NotificationSetting, error) {
	var setting models.NotificationSetting
	if err := r.db.First(&setting, "workspace_id = ?", workspaceID).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert creates or replaces the workspace's notification settings row.
func (r *NotificationSettingRepository) Upsert(setting *models.NotificationSetting) error {
	var existing models.NotificationSetting
	err := r.db.First(&existing, "workspace_id = ?", setting.WorkspaceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(setting).Error
	}
	if err != nil {
		return err
	}
	setting.ID = existing.ID
	return r.db.Save(setting).Error
}

func (r *NotificationSettingRepository) DeleteByWorkspaceID(workspaceID string) error {
	return r.db.Delete(&models.NotificationSetting{}, "workspace_id = ?", workspaceID).Error
}
