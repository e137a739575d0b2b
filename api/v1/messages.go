package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/services"
)

// MessageController serves the three inboxes and thread operations.
type MessageController struct {
	messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{messages: messages}
}

// Inbox lists root portfolio messages for the caller's workspace.
func (ctrl *MessageController) Inbox(c *gin.Context) {
	user := currentUser(c)

	inbox, err := ctrl.messages.PortfolioInbox(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load inbox",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   inbox,
	})
}

// InternalInbox lists threads between accounts.
func (ctrl *MessageController) InternalInbox(c *gin.Context) {
	user := currentUser(c)

	inbox, err := ctrl.messages.InternalInbox(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load inbox",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   inbox,
	})
}

// PlatformInbox lists academy inquiries. Admin only.
func (ctrl *MessageController) PlatformInbox(c *gin.Context) {
	inbox, err := ctrl.messages.PlatformInbox()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load inbox",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   inbox,
	})
}

// Send composes an internal message to another account or the admin.
func (ctrl *MessageController) Send(c *gin.Context) {
	user := currentUser(c)

	var req dto.InternalMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	message, err := ctrl.messages.SendInternal(user, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to send message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   message,
	})
}

// View returns a thread; viewing marks the root read for its receiver.
func (ctrl *MessageController) View(c *gin.Context) {
	user := currentUser(c)

	thread, err := ctrl.messages.View(user, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMessageForbidden) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Not allowed to view this message",
			})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Message not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   thread,
	})
}

// Reply posts into an existing thread.
func (ctrl *MessageController) Reply(c *gin.Context) {
	user := currentUser(c)

	var req dto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	message, err := ctrl.messages.Reply(user, c.Param("id"), req.Message)
	if err != nil {
		if errors.Is(err, services.ErrMessageForbidden) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Not allowed to reply to this message",
			})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Message not found",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   message,
	})
}

// Delete removes a thread.
func (ctrl *MessageController) Delete(c *gin.Context) {
	user := currentUser(c)

	if err := ctrl.messages.Delete(user, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrMessageForbidden) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Not allowed to delete this message",
			})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Message not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message deleted",
	})
}
