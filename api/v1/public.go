package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/database"
	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/middleware"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/repositories"
	"github.com/codexx-academy/services"
	"github.com/codexx-academy/utils"
)

// PublicController serves the unauthenticated surface: the catalog, the
// per-tenant portfolio pages and the contact forms.
type PublicController struct {
	portfolios *services.PortfolioService
	catalog    *services.ServiceCatalog
	messages   *services.MessageService
	visitors   *services.VisitorTracker
	workspaces *repositories.WorkspaceRepository
	users      *repositories.UserRepository
}

func NewPublicController(portfolios *services.PortfolioService, messages *services.MessageService) *PublicController {
	return &PublicController{
		portfolios: portfolios,
		catalog:    services.NewServiceCatalog(database.DB),
		messages:   messages,
		visitors:   services.NewVisitorTracker(database.DB),
		workspaces: repositories.NewWorkspaceRepository(database.DB),
		users:      repositories.NewUserRepository(database.DB),
	}
}

// Home serves the platform landing payload.
func (ctrl *PublicController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"name":        "Codexx Academy",
			"description": "Portfolio platform for developers and trainees",
			"catalog":     "/api/v1/catalog",
		},
	})
}

// adminViewer reports whether the request carries a valid admin token. The
// catalog is public, so this is best-effort: any failure means no.
func adminViewer(c *gin.Context) bool {
	token := middleware.ExtractToken(c)
	if token == "" {
		return false
	}
	claims, err := services.ValidateToken(token)
	if err != nil {
		return false
	}
	return claims.Role == string(models.RoleAdmin)
}

// Catalog lists the publicly visible portfolios: active, verified accounts.
// A logged-in admin sees unverified and demo portfolios too.
func (ctrl *PublicController) Catalog(c *gin.Context) {
	users, err := ctrl.users.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load catalog",
			"error":   err.Error(),
		})
		return
	}

	showAll := adminViewer(c)
	entries := make([]gin.H, 0, len(users))
	for i := range users {
		user := &users[i]
		if user.IsAdmin() {
			continue
		}
		if !showAll && (!user.IsActive || !user.IsVerified || user.IsDemo) {
			continue
		}
		workspace, err := ctrl.workspaces.FindByID(user.WorkspaceID)
		if err != nil {
			continue
		}
		entries = append(entries, gin.H{
			"username":    user.Username,
			"name":        workspace.Name,
			"title":       workspace.Title,
			"description": workspace.Description,
			"photo":       workspace.Photo,
			"theme":       workspace.Theme(),
			"url":         "/api/v1/portfolio/" + user.Username,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   entries,
	})
}

// publicView strips tenant-private collections from an aggregate before it
// leaves the building.
func publicView(state *dto.PortfolioState) gin.H {
	return gin.H{
		"username":    state.Username,
		"name":        state.Name,
		"title":       state.Title,
		"description": state.Description,
		"about":       state.About,
		"photo":       state.Photo,
		"skills":      state.Skills,
		"projects":    state.Projects,
		"services":    activeServices(state.Services),
		"contact":     state.Contact,
		"social":      state.Social,
		"theme":       state.Theme(),
	}
}

func activeServices(all []dto.ServiceEntry) []dto.ServiceEntry {
	active := make([]dto.ServiceEntry, 0, len(all))
	for _, s := range all {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active
}

// Portfolio serves one tenant's public page and records the visit.
func (ctrl *PublicController) Portfolio(c *gin.Context) {
	username := c.Param("username")
	state, err := ctrl.portfolios.Load(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load portfolio",
			"error":   err.Error(),
		})
		return
	}

	if workspace, err := ctrl.workspaces.FindBySlug(username); err == nil {
		ctrl.visitors.Record(workspace.ID, utils.ClientIP(c), c.Request.UserAgent())
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   publicView(state),
	})
}

// ProjectDetail serves one public project.
func (ctrl *PublicController) ProjectDetail(c *gin.Context) {
	username := c.Param("username")
	projectID := c.Param("id")

	state, err := ctrl.portfolios.Load(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load portfolio",
			"error":   err.Error(),
		})
		return
	}

	for _, project := range state.Projects {
		if project.ID == projectID {
			c.JSON(http.StatusOK, gin.H{
				"status": "success",
				"data":   project,
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": "Project not found",
	})
}

// ServicesList serves a tenant's active services.
func (ctrl *PublicController) ServicesList(c *gin.Context) {
	username := c.Param("username")
	workspace, err := ctrl.workspaces.FindBySlug(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Portfolio not found",
		})
		return
	}

	active, err := ctrl.catalog.ListActive(workspace.ID)
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
		"data":   active,
	})
}

// ServiceDetail serves one active service.
func (ctrl *PublicController) ServiceDetail(c *gin.Context) {
	username := c.Param("username")
	workspace, err := ctrl.workspaces.FindBySlug(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Portfolio not found",
		})
		return
	}

	service, err := ctrl.catalog.GetActive(workspace.ID, c.Param("id"))
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

// Contact receives a visitor message for a portfolio owner.
func (ctrl *PublicController) Contact(c *gin.Context) {
	username := c.Param("username")
	workspace, err := ctrl.workspaces.FindBySlug(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Portfolio not found",
		})
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	// Honeypot tripped: claim success, store nothing.
	if req.Website != "" {
		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Message sent",
		})
		return
	}

	if _, err := ctrl.messages.SubmitPortfolioContact(workspace, req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message sent",
	})
}

// AcademyContact receives a platform-level inquiry.
func (ctrl *PublicController) AcademyContact(c *gin.Context) {
	var req dto.AcademyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	if req.Website != "" {
		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Message sent",
		})
		return
	}

	if _, err := ctrl.messages.SubmitAcademyContact(req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message sent",
	})
}

// Sitemap lists the public portfolio URLs for crawlers.
func (ctrl *PublicController) Sitemap(c *gin.Context) {
	users, err := ctrl.users.FindAll()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	base := "https://" + c.Request.Host
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	b.WriteString(fmt.Sprintf("  <url><loc>%s/</loc></url>\n", base))
	for i := range users {
		user := &users[i]
		if !user.IsActive || !user.IsVerified || user.IsDemo {
			continue
		}
		b.WriteString(fmt.Sprintf("  <url><loc>%s/portfolio/%s</loc></url>\n", base, user.Username))
		b.WriteString(fmt.Sprintf("  <url><loc>%s/services/%s</loc></url>\n", base, user.Username))
	}
	b.WriteString("</urlset>\n")

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(b.String()))
}

// Robots serves the crawler policy: public pages open, dashboard closed.
func (ctrl *PublicController) Robots(c *gin.Context) {
	body := "User-agent: *\nDisallow: /dashboard\nDisallow: /api/v1/dashboard\nSitemap: https://" +
		c.Request.Host + "/sitemap.xml\n"
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	status := "ok"
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"service":  "codexx-academy",
			"database": status,
		},
	})
}
