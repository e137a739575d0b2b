package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/services"
	"github.com/codexx-academy/utils"
)

// BackupController manages data file snapshots. Admin only.
type BackupController struct {
	backups *services.BackupService
}

func NewBackupController(backups *services.BackupService) *BackupController {
	return &BackupController{backups: backups}
}

func (ctrl *BackupController) List(c *gin.Context) {
	backups, err := ctrl.backups.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list backups",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   backups,
	})
}

func (ctrl *BackupController) Create(c *gin.Context) {
	info, err := ctrl.backups.Create("manual")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create backup",
			"error":   err.Error(),
		})
		return
	}

	admin := currentUser(c)
	utils.RecordAudit(admin.Username, "backup_created", info.Filename, utils.ClientIP(c))

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   info,
	})
}

func (ctrl *BackupController) Restore(c *gin.Context) {
	if err := ctrl.backups.Restore(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to restore backup",
			"error":   err.Error(),
		})
		return
	}

	admin := currentUser(c)
	utils.RecordAudit(admin.Username, "backup_restored", c.Param("id"), utils.ClientIP(c))

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Backup restored",
	})
}

func (ctrl *BackupController) Delete(c *gin.Context) {
	if err := ctrl.backups.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Backup not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Backup deleted",
	})
}
