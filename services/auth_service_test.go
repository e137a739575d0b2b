package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
)

func TestLoginIssuesTokenWithAccountFlags(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	_, user := seedWorkspace(t, db, "maya")
	user.IsDemo = true
	user.MustChangePassword = true
	require.NoError(t, db.Save(user).Error)

	resp, err := Login(dto.LoginRequest{Username: "maya", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := ValidateToken(resp.Token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "maya", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.True(t, claims.IsDemo)
	assert.False(t, claims.IsVerified)
	assert.True(t, claims.MustChangePassword)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	seedWorkspace(t, db, "maya")

	_, err := Login(dto.LoginRequest{Username: "maya", Password: "wrong"})
	assert.Error(t, err)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	_, user := seedWorkspace(t, db, "maya")
	user.IsActive = false
	require.NoError(t, db.Save(user).Error)

	_, err := Login(dto.LoginRequest{Username: "maya", Password: "secret123"})
	assert.Error(t, err)
}

func TestLoginProvisionsEnvironmentAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "overlord")
	t.Setenv("ADMIN_PASSWORD", "super-secret")
	db := newTestDB(t)

	resp, err := Login(dto.LoginRequest{Username: "overlord", Password: "super-secret"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Role)

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "overlord").Error)
	assert.True(t, user.IsAdmin())

	var workspace models.Workspace
	require.NoError(t, db.First(&workspace, "slug = ?", "overlord").Error)
	assert.Equal(t, workspace.ID, user.WorkspaceID)

	// A second login reuses the provisioned account.
	resp2, err := Login(dto.LoginRequest{Username: "overlord", Password: "super-secret"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, resp2.User.ID)
}

func TestChangePasswordClearsForcedFlag(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	_, user := seedWorkspace(t, db, "maya")
	user.MustChangePassword = true
	require.NoError(t, db.Save(user).Error)

	// Forced change: current password not required.
	err := ChangePassword(user.ID, dto.ChangePasswordRequest{
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	require.NoError(t, err)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.False(t, fresh.MustChangePassword)

	_, err = Login(dto.LoginRequest{Username: "maya", Password: "brand-new-pass"})
	assert.NoError(t, err)
}

func TestChangePasswordRequiresCurrentWhenNotForced(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	_, user := seedWorkspace(t, db, "maya")

	err := ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	assert.Error(t, err)

	err = ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	assert.NoError(t, err)
}

func TestChangePasswordRejectsReusedPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	_, user := seedWorkspace(t, db, "maya")

	err := ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "secret123",
		ConfirmPassword: "secret123",
	})
	assert.Error(t, err)
}
