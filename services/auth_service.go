package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/codexx-academy/config"
	"github.com/codexx-academy/database"
	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/utils"
)

// This file uses dto.TokenClaims, dto.LoginRequest and dto.AuthResponse
// which are defined in the dto/auth.go file

// Login authenticates a user and returns a token. The environment-provided
// admin account is provisioned in the database on its first login.
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	result := database.DB.Where("username = ?", req.Username).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		admin := config.GetAdminCredentials()
		if admin.Username != "" && req.Username == admin.Username && req.Password == admin.Password {
			provisioned, err := provisionAdminUser(admin)
			if err != nil {
				return nil, err
			}
			user = *provisioned
		} else {
			return nil, errors.New("invalid username or password")
		}
	} else if result.Error != nil {
		return nil, result.Error
	} else {
		if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
			return nil, errors.New("invalid username or password")
		}
	}

	if !user.IsActive {
		return nil, errors.New("account is disabled")
	}

	token, expiresAt, err := GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		User:      UserToResponse(&user),
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// provisionAdminUser creates the platform admin workspace and account from
// the environment credentials.
func provisionAdminUser(admin config.AdminCredentials) (*models.User, error) {
	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		workspace := models.Workspace{
			Name:     admin.Username,
			Slug:     admin.Username,
			Settings: models.StringMap{"theme": models.DefaultTheme},
		}
		if err := tx.Create(&workspace).Error; err != nil {
			return err
		}
		user = models.User{
			WorkspaceID:  workspace.ID,
			Username:     admin.Username,
			Email:        admin.Username + "@codexx.local",
			PasswordHash: hashed,
			Role:         models.RoleAdmin,
			IsActive:     true,
			IsVerified:   true,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(user *models.User) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID:             user.ID,
		Username:           user.Username,
		Role:               string(user.Role),
		IsDemo:             user.IsDemo,
		IsVerified:         user.IsVerified,
		MustChangePassword: user.MustChangePassword,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ChangePassword updates a user's password. The current password is required
// unless the account is in the forced-change state.
func ChangePassword(userID string, req dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return errors.New("passwords do not match")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	if !user.MustChangePassword {
		if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
			return errors.New("current password is incorrect")
		}
	}
	if utils.CheckPasswordHash(req.NewPassword, user.PasswordHash) {
		return errors.New("new password must differ from the current one")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return database.DB.Model(&user).Updates(map[string]interface{}{
		"password_hash":        hashed,
		"must_change_password": false,
	}).Error
}

// GetUser retrieves a user by ID
func GetUser(id string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// UserToResponse strips credentials from a user for API responses.
func UserToResponse(user *models.User) dto.UserResponse {
	badges := []string(user.Badges)
	if badges == nil {
		badges = []string{}
	}
	return dto.UserResponse{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Role:               string(user.Role),
		IsActive:           user.IsActive,
		IsVerified:         user.IsVerified,
		IsDemo:             user.IsDemo,
		Badges:             badges,
		MustChangePassword: user.MustChangePassword,
		CreatedAt:          formatTime(user.CreatedAt),
	}
}
