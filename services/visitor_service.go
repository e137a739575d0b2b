package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/repositories"
)

// VisitorTracker records public page views and summarizes them per tenant.
type VisitorTracker struct {
	repo *repositories.VisitorLogRepository
}

func NewVisitorTracker(db *gorm.DB) *VisitorTracker {
	return &VisitorTracker{repo: repositories.NewVisitorLogRepository(db)}
}

// Record appends one page view. Tracking failures are logged but never
// surface to the visitor.
func (t *VisitorTracker) Record(workspaceID, ip, userAgent string) {
	log := models.VisitorLog{
		WorkspaceID: workspaceID,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}
	if err := t.repo.Create(&log); err != nil {
		zap.L().Warn("visitor log write failed", zap.String("workspaceId", workspaceID), zap.Error(err))
	}
}

// Summary aggregates total views, today's views and unique addresses.
func (t *VisitorTracker) Summary(workspaceID string) (*dto.VisitorSummary, error) {
	total, err := t.repo.CountByWorkspaceID(workspaceID)
	if err != nil {
		return nil, err
	}

	todayLogs, err := t.repo.FindToday(workspaceID)
	if err != nil {
		return nil, err
	}
	today := make([]dto.VisitEntry, 0, len(todayLogs))
	for _, l := range todayLogs {
		today = append(today, dto.VisitEntry{
			IP:        l.IPAddress,
			Timestamp: l.CreatedAt.Format(dto.TimeLayout),
			Date:      l.CreatedAt.Format(dto.DateLayout),
		})
	}

	ips, err := t.repo.DistinctIPs(workspaceID)
	if err != nil {
		return nil, err
	}
	if ips == nil {
		ips = []string{}
	}

	return &dto.VisitorSummary{
		Total:     int(total),
		Today:     today,
		UniqueIPs: ips,
	}, nil
}

// Reset removes every visitor log for a workspace.
func (t *VisitorTracker) Reset(workspaceID string) error {
	return t.repo.DeleteByWorkspaceID(workspaceID)
}
