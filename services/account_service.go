package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
)

// AccountService scores profile completeness and moves accounts between the
// demo and verified tiers based on the score.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Diagnose computes the profile and content completeness for a workspace.
func (s *AccountService) Diagnose(workspace *models.Workspace) (*dto.ProfileDiagnostics, error) {
	report := &dto.ProfileDiagnostics{
		MissingProfile: []string{},
		MissingContent: []string{},
	}

	profileItems := 0
	if workspace.Name != "" && workspace.Title != "" && workspace.Photo != "" {
		profileItems++
	} else {
		report.MissingProfile = append(report.MissingProfile, "basic info (name, title, photo)")
	}
	if len(workspace.About) > 50 {
		profileItems++
	} else {
		report.MissingProfile = append(report.MissingProfile, "about section (at least 50 characters)")
	}
	if workspace.Contact["email"] != "" && workspace.Contact["phone"] != "" && workspace.Contact["location"] != "" {
		profileItems++
	} else {
		report.MissingProfile = append(report.MissingProfile, "contact details (email, phone, location)")
	}
	report.ProfilePercent = profileItems * 100 / 3

	var projectCount, serviceCount, skillCount int64
	if err := s.db.Model(&models.Project{}).Where("workspace_id = ?", workspace.ID).Count(&projectCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Service{}).Where("workspace_id = ?", workspace.ID).Count(&serviceCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Skill{}).Where("workspace_id = ?", workspace.ID).Count(&skillCount).Error; err != nil {
		return nil, err
	}

	contentItems := 0
	if projectCount >= 3 {
		contentItems++
	} else {
		report.MissingContent = append(report.MissingContent, "at least 3 projects")
	}
	if serviceCount >= 1 {
		contentItems++
	} else {
		report.MissingContent = append(report.MissingContent, "at least 1 service")
	}
	if skillCount >= 1 {
		contentItems++
	} else {
		report.MissingContent = append(report.MissingContent, "at least 1 skill")
	}
	report.ContentPercent = contentItems * 100 / 3

	return report, nil
}

// Evaluate runs diagnostics for a user and applies tier transitions: a demo
// account with a complete profile becomes verified; a verified account that
// falls below the content threshold drops back to demo.
func (s *AccountService) Evaluate(user *models.User) (*dto.ProfileDiagnostics, error) {
	var workspace models.Workspace
	if err := s.db.First(&workspace, "id = ?", user.WorkspaceID).Error; err != nil {
		return nil, err
	}

	report, err := s.Diagnose(&workspace)
	if err != nil {
		return nil, err
	}

	complete := report.ProfilePercent == 100 && report.ContentPercent == 100

	if user.IsDemo && complete {
		updates := map[string]interface{}{
			"is_demo":     false,
			"is_verified": true,
		}
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
		user.IsDemo = false
		user.IsVerified = true
		report.Promoted = true
		zap.L().Info("account promoted to verified", zap.String("username", user.Username))
	} else if user.IsVerified && !user.IsAdmin() && report.ContentPercent < 100 {
		updates := map[string]interface{}{
			"is_demo":     true,
			"is_verified": false,
		}
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
		user.IsDemo = true
		user.IsVerified = false
		report.Demoted = true
		zap.L().Info("account demoted to demo", zap.String("username", user.Username))
	}

	return report, nil
}
