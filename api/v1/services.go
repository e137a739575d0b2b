package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/database"
	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/services"
)

// ServiceController manages the caller's service offerings.
type ServiceController struct {
	catalog *services.ServiceCatalog
}

func NewServiceController() *ServiceController {
	return &ServiceController{catalog: services.NewServiceCatalog(database.DB)}
}

func (ctrl *ServiceController) List(c *gin.Context) {
	user := currentUser(c)

	all, err := ctrl.catalog.List(user.WorkspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load services",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   all,
	})
}

func (ctrl *ServiceController) Get(c *gin.Context) {
	user := currentUser(c)

	service, err := ctrl.catalog.Get(user.WorkspaceID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Service not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   service,
	})
}

func (ctrl *ServiceController) Create(c *gin.Context) {
	user := currentUser(c)

	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	service, err := ctrl.catalog.Create(user.WorkspaceID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create service",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   service,
	})
}

func (ctrl *ServiceController) Update(c *gin.Context) {
	user := currentUser(c)

	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	service, err := ctrl.catalog.Update(user.WorkspaceID, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Service not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   service,
	})
}

// ToggleActive flips a service's public visibility.
func (ctrl *ServiceController) ToggleActive(c *gin.Context) {
	user := currentUser(c)

	service, err := ctrl.catalog.ToggleActive(user.WorkspaceID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Service not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   service,
	})
}

func (ctrl *ServiceController) Delete(c *gin.Context) {
	user := currentUser(c)

	if err := ctrl.catalog.Delete(user.WorkspaceID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Service not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Service deleted",
	})
}
