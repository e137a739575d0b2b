package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/lib/jsonstore"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/repositories"
	"github.com/codexx-academy/utils"
)

// UserService handles admin-side account provisioning and lifecycle.
type UserService struct {
	db    *gorm.DB
	users *repositories.UserRepository
	store *jsonstore.Store
}

func NewUserService(db *gorm.DB, store *jsonstore.Store) *UserService {
	return &UserService{
		db:    db,
		users: repositories.NewUserRepository(db),
		store: store,
	}
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.FindAll()
}

func (s *UserService) Get(id string) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	return s.users.FindByUsername(username)
}

// Create provisions a workspace and its owner account. New accounts start as
// demo and must change their password on first login.
func (s *UserService) Create(req dto.AddUserRequest) (*models.User, error) {
	if _, err := s.users.FindByUsername(req.Username); err == nil {
		return nil, errors.New("username already taken")
	}
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, errors.New("email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	plan := req.Plan
	if plan == "" {
		plan = "pro"
	}
	name := req.Name
	if name == "" {
		name = req.Username
	}

	var user models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		workspace := models.Workspace{
			Name:     name,
			Slug:     req.Username,
			Plan:     plan,
			Settings: models.StringMap{"theme": models.DefaultTheme},
		}
		if err := tx.Create(&workspace).Error; err != nil {
			return err
		}
		user = models.User{
			WorkspaceID:        workspace.ID,
			Username:           req.Username,
			Email:              req.Email,
			PasswordHash:       hashed,
			Role:               models.RoleUser,
			IsActive:           true,
			IsDemo:             true,
			MustChangePassword: true,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes an account together with its workspace and everything the
// workspace owns, plus its slice of the JSON data file.
func (s *UserService) Delete(id string) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return errors.New("the admin account cannot be deleted")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		workspaceID := user.WorkspaceID
		for _, model := range []interface{}{
			&models.Skill{}, &models.Project{}, &models.Client{},
			&models.Message{}, &models.Service{}, &models.VisitorLog{},
			&models.NotificationSetting{},
		} {
			if err := tx.Delete(model, "workspace_id = ?", workspaceID).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.User{}, "id = ?", user.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Workspace{}, "id = ?", workspaceID).Error
	})
	if err != nil {
		return err
	}

	return s.store.DeletePortfolio(user.Username)
}

// ToggleDemo flips the demo flag and returns the updated user.
func (s *UserService) ToggleDemo(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.IsDemo = !user.IsDemo
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleVerification flips the verified flag and returns the updated user.
// Enabling requires full access and at least three projects; disabling is
// always allowed.
func (s *UserService) ToggleVerification(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !user.IsVerified {
		if user.IsDemo {
			return nil, errors.New("criteria not met: full access required before verification")
		}
		var projects int64
		if err := s.db.Model(&models.Project{}).
			Where("workspace_id = ?", user.WorkspaceID).
			Count(&projects).Error; err != nil {
			return nil, err
		}
		if projects < 3 {
			return nil, fmt.Errorf("criteria not met: 3 projects required, currently %d", projects)
		}
	}
	user.IsVerified = !user.IsVerified
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleActive enables or disables login for an account.
func (s *UserService) ToggleActive(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return nil, errors.New("the admin account cannot be disabled")
	}
	user.IsActive = !user.IsActive
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
