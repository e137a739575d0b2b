package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
)

func TestCreateUserProvisionsWorkspaceAndDemoAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestStore(t))

	user, err := svc.Create(dto.AddUserRequest{
		Username: "newbie",
		Email:    "newbie@example.com",
		Password: "password123",
		Name:     "New Person",
	})
	require.NoError(t, err)

	assert.True(t, user.IsDemo)
	assert.True(t, user.MustChangePassword)
	assert.False(t, user.IsVerified)
	assert.Equal(t, models.RoleUser, user.Role)

	var workspace models.Workspace
	require.NoError(t, db.First(&workspace, "slug = ?", "newbie").Error)
	assert.Equal(t, "New Person", workspace.Name)
	assert.Equal(t, models.DefaultTheme, workspace.Theme())
	assert.Equal(t, workspace.ID, user.WorkspaceID)
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestStore(t))
	seedWorkspace(t, db, "taken")

	_, err := svc.Create(dto.AddUserRequest{
		Username: "taken",
		Email:    "fresh@example.com",
		Password: "password123",
	})
	assert.Error(t, err)

	_, err = svc.Create(dto.AddUserRequest{
		Username: "fresh",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.Error(t, err)
}

func TestDeleteUserRemovesWorkspaceData(t *testing.T) {
	db := newTestDB(t)
	store := newTestStore(t)
	svc := NewUserService(db, store)
	workspace, user := seedWorkspace(t, db, "maya")

	require.NoError(t, db.Create(&models.Project{WorkspaceID: workspace.ID, Title: "P"}).Error)
	require.NoError(t, db.Create(&models.Skill{WorkspaceID: workspace.ID, Name: "Go"}).Error)
	require.NoError(t, store.SetPortfolio("maya", dto.DefaultPortfolioState()))

	require.NoError(t, svc.Delete(user.ID))

	var count int64
	require.NoError(t, db.Model(&models.Workspace{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	_, ok, err := store.GetPortfolio("maya")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteUserRefusesAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestStore(t))
	_, user := seedWorkspace(t, db, "boss")
	user.Role = models.RoleAdmin
	require.NoError(t, db.Save(user).Error)

	assert.Error(t, svc.Delete(user.ID))
}

func TestToggleFlagsFlipAndPersist(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestStore(t))
	workspace, user := seedWorkspace(t, db, "maya")
	for _, title := range []string{"Shop", "Blog", "API"} {
		require.NoError(t, db.Create(&models.Project{WorkspaceID: workspace.ID, Title: title}).Error)
	}

	toggled, err := svc.ToggleVerification(user.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsVerified)

	toggled, err = svc.ToggleDemo(user.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsDemo)

	toggled, err = svc.ToggleActive(user.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.IsDemo)
	assert.True(t, fresh.IsVerified)
	assert.False(t, fresh.IsActive)
}

func TestToggleVerificationEnforcesCriteria(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestStore(t))
	workspace, user := seedWorkspace(t, db, "maya")

	// Full access but no projects yet.
	_, err := svc.ToggleVerification(user.ID)
	assert.ErrorContains(t, err, "3 projects required")

	for _, title := range []string{"Shop", "Blog", "API"} {
		require.NoError(t, db.Create(&models.Project{WorkspaceID: workspace.ID, Title: title}).Error)
	}

	// Enough projects, but demo accounts cannot be verified.
	user.IsDemo = true
	require.NoError(t, db.Save(user).Error)
	_, err = svc.ToggleVerification(user.ID)
	assert.ErrorContains(t, err, "full access required")

	user.IsDemo = false
	require.NoError(t, db.Save(user).Error)
	toggled, err := svc.ToggleVerification(user.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsVerified)

	// Disabling needs no criteria, even after the projects are gone.
	require.NoError(t, db.Delete(&models.Project{}, "workspace_id = ?", workspace.ID).Error)
	toggled, err = svc.ToggleVerification(user.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsVerified)
}
