package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codexx-academy/models"
	"gorm.io/gorm"
)

func completeWorkspace(t *testing.T, db *gorm.DB, workspace *models.Workspace) {
	t.Helper()

	workspace.Name = "Maya"
	workspace.Title = "Backend developer"
	workspace.Photo = "/img/maya.png"
	workspace.About = "More than fifty characters of text about building backend systems in Go."
	workspace.Contact = models.StringMap{
		"email":    "maya@example.com",
		"phone":    "+55 11 99999-0000",
		"location": "Sao Paulo",
	}
	require.NoError(t, db.Save(workspace).Error)

	for _, title := range []string{"One", "Two", "Three"} {
		require.NoError(t, db.Create(&models.Project{WorkspaceID: workspace.ID, Title: title}).Error)
	}
	require.NoError(t, db.Create(&models.Service{WorkspaceID: workspace.ID, Title: "Consulting", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Skill{WorkspaceID: workspace.ID, Name: "Go", Level: 90}).Error)
}

func TestDiagnoseReportsMissingPieces(t *testing.T) {
	db := newTestDB(t)
	workspace, _ := seedWorkspace(t, db, "maya")
	svc := NewAccountService(db)

	report, err := svc.Diagnose(workspace)
	require.NoError(t, err)

	assert.Less(t, report.ProfilePercent, 100)
	assert.Less(t, report.ContentPercent, 100)
	assert.NotEmpty(t, report.MissingProfile)
	assert.Contains(t, report.MissingContent, "at least 3 projects")
}

func TestEvaluatePromotesCompleteDemoAccount(t *testing.T) {
	db := newTestDB(t)
	workspace, user := seedWorkspace(t, db, "maya")
	user.IsDemo = true
	require.NoError(t, db.Save(user).Error)

	completeWorkspace(t, db, workspace)

	svc := NewAccountService(db)
	report, err := svc.Evaluate(user)
	require.NoError(t, err)

	assert.Equal(t, 100, report.ProfilePercent)
	assert.Equal(t, 100, report.ContentPercent)
	assert.True(t, report.Promoted)
	assert.False(t, report.Demoted)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.False(t, fresh.IsDemo)
	assert.True(t, fresh.IsVerified)
}

func TestEvaluateDemotesVerifiedAccountBelowContentThreshold(t *testing.T) {
	db := newTestDB(t)
	_, user := seedWorkspace(t, db, "maya")
	user.IsVerified = true
	require.NoError(t, db.Save(user).Error)

	// No projects, services or skills: content score is zero.
	svc := NewAccountService(db)
	report, err := svc.Evaluate(user)
	require.NoError(t, err)

	assert.True(t, report.Demoted)
	assert.False(t, report.Promoted)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.IsDemo)
	assert.False(t, fresh.IsVerified)
}

func TestEvaluateLeavesIncompleteDemoAccountAlone(t *testing.T) {
	db := newTestDB(t)
	_, user := seedWorkspace(t, db, "maya")
	user.IsDemo = true
	require.NoError(t, db.Save(user).Error)

	svc := NewAccountService(db)
	report, err := svc.Evaluate(user)
	require.NoError(t, err)

	assert.False(t, report.Promoted)
	assert.False(t, report.Demoted)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.IsDemo)
}

func TestEvaluateNeverDemotesAdmin(t *testing.T) {
	db := newTestDB(t)
	_, user := seedWorkspace(t, db, "admin")
	user.Role = models.RoleAdmin
	user.IsVerified = true
	require.NoError(t, db.Save(user).Error)

	svc := NewAccountService(db)
	report, err := svc.Evaluate(user)
	require.NoError(t, err)

	assert.False(t, report.Demoted)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.IsVerified)
	assert.False(t, fresh.IsDemo)
}
