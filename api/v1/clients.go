package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/services"
)

// ClientController manages the workspace client pipeline.
type ClientController struct {
	clients  *services.ClientService
	messages *services.MessageService
}

func NewClientController(clients *services.ClientService, messages *services.MessageService) *ClientController {
	return &ClientController{clients: clients, messages: messages}
}

// Prefill returns contact details from an inbox message so a new client
// record can be started from it.
func (ctrl *ClientController) Prefill(c *gin.Context) {
	user := currentUser(c)

	messageID := c.Query("message_id")
	if messageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "message_id is required",
		})
		return
	}

	thread, err := ctrl.messages.Peek(user, messageID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Message not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"name":                thread.Root.Name,
			"email":               thread.Root.Email,
			"project_description": thread.Root.Message,
		},
	})
}

func (ctrl *ClientController) List(c *gin.Context) {
	user := currentUser(c)

	clients, err := ctrl.clients.List(user.WorkspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load clients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   clients,
	})
}

func (ctrl *ClientController) Get(c *gin.Context) {
	user := currentUser(c)

	client, err := ctrl.clients.Get(user.WorkspaceID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Client not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   client,
	})
}

func (ctrl *ClientController) Create(c *gin.Context) {
	user := currentUser(c)

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	client, err := ctrl.clients.Create(user.WorkspaceID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create client",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   client,
	})
}

func (ctrl *ClientController) Update(c *gin.Context) {
	user := currentUser(c)

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	client, err := ctrl.clients.Update(user.WorkspaceID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Client not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update client",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   client,
	})
}

func (ctrl *ClientController) Delete(c *gin.Context) {
	user := currentUser(c)

	if err := ctrl.clients.Delete(user.WorkspaceID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Client not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client deleted",
	})
}
