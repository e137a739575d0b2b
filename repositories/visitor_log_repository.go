package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/codexx-academy/models"
)

type VisitorLogRepository struct {
	db *gorm.DB
}

func NewVisitorLogRepository(db *gorm.DB) *VisitorLogRepository {
	return &VisitorLogRepository{db: db}
}

func (r *VisitorLogRepository) Create(log *models.VisitorLog) error {
	return r.db.Create(log).Error
}

func (r *VisitorLogRepository) CountByWorkspaceID(workspaceID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.VisitorLog{}).Where("workspace_id = ?", workspaceID).Count(&count).Error
	return count, err
}

// FindToday returns today's visits for a workspace, oldest first.
func (r *VisitorLogRepository) FindToday(workspaceID string) ([]models.VisitorLog, error) {
	start := time.Now().Truncate(24 * time.Hour)
	var logs []models.VisitorLog
	err := r.db.
		Where("workspace_id = ? AND created_at >= ?", workspaceID, start).
		Order("created_at asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// DistinctIPs returns the unique visitor addresses seen for a workspace.
func (r *VisitorLogRepository) DistinctIPs(workspaceID string) ([]string, error) {
	var ips []string
	err := r.db.Model(&models.VisitorLog{}).
		Where("workspace_id = ?", workspaceID).
		Distinct().
		Order("ip_address asc").
		Pluck("ip_address", &ips).Error
	if err != nil {
		return nil, err
	}
	return ips, nil
}

func (r *VisitorLogRepository) DeleteByWorkspaceID(workspaceID string) error {
	return r.db.Delete(&models.VisitorLog{}, "workspace_id = ?", workspaceID).Error
}
