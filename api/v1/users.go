package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/database"
	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/services"
	"github.com/codexx-academy/utils"
)

// UserController is the admin account management surface.
type UserController struct {
	users    *services.UserService
	accounts *services.AccountService
	notifier *services.NotificationService
}

func NewUserController(users *services.UserService, notifier *services.NotificationService) *UserController {
	return &UserController{
		users:    users,
		accounts: services.NewAccountService(database.DB),
		notifier: notifier,
	}
}

func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load users",
			"error":   err.Error(),
		})
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, services.UserToResponse(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   responses,
	})
}

func (ctrl *UserController) Get(c *gin.Context) {
	user, err := ctrl.users.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   services.UserToResponse(user),
	})
}

// Create provisions a workspace and owner account.
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	user, err := ctrl.users.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	admin := currentUser(c)
	utils.RecordAudit(admin.Username, "user_created", user.Username, utils.ClientIP(c))

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   services.UserToResponse(user),
	})
}

// Delete removes an account and its workspace.
func (ctrl *UserController) Delete(c *gin.Context) {
	target, err := ctrl.users.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	if err := ctrl.users.Delete(target.ID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   err.Error(),
		})
		return
	}

	admin := currentUser(c)
	utils.RecordAudit(admin.Username, "user_deleted", target.Username, utils.ClientIP(c))

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted",
	})
}

// ToggleDemo flips the demo flag on an account and tells the owner.
func (ctrl *UserController) ToggleDemo(c *gin.Context) {
	user, err := ctrl.users.ToggleDemo(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	if user.IsDemo {
		ctrl.notifier.NotifyWorkspace(user.WorkspaceID,
			"Account mode changed",
			"Your account has been switched to demo mode. Editing is disabled until it is restored.")
	} else {
		ctrl.notifier.NotifyWorkspace(user.WorkspaceID,
			"Account mode changed",
			"Your account now has full access. Happy editing!")
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   services.UserToResponse(user),
	})
}

// ToggleVerification flips the verified flag on an account and tells the owner.
func (ctrl *UserController) ToggleVerification(c *gin.Context) {
	user, err := ctrl.users.ToggleVerification(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to update verification",
			"error":   err.Error(),
		})
		return
	}

	if user.IsVerified {
		ctrl.notifier.NotifyWorkspace(user.WorkspaceID,
			"Portfolio verified",
			"Your portfolio has been verified and is now listed in the public catalog.")
	} else {
		ctrl.notifier.NotifyWorkspace(user.WorkspaceID,
			"Verification removed",
			"Your portfolio verification has been removed. It is no longer listed in the catalog.")
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   services.UserToResponse(user),
	})
}

// ToggleActive enables or disables login for an account.
func (ctrl *UserController) ToggleActive(c *gin.Context) {
	user, err := ctrl.users.ToggleActive(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   services.UserToResponse(user),
	})
}

// TestNotifications sends a probe through the target workspace's channels.
func (ctrl *UserController) TestNotifications(c *gin.Context) {
	user, err := ctrl.users.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	ctrl.notifier.NotifyWorkspace(user.WorkspaceID,
		"Notification test",
		"This is a test notification from the Codexx Academy admin.")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Test notification dispatched",
	})
}

// Diagnostics returns the completeness report for a user's workspace.
func (ctrl *UserController) Diagnostics(c *gin.Context) {
	user, err := ctrl.users.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}

	report, err := ctrl.accounts.Evaluate(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to run diagnostics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   report,
	})
}
