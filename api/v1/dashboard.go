package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/config"
	"github.com/codexx-academy/database"
	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/repositories"
	"github.com/codexx-academy/services"
	"github.com/codexx-academy/utils"
)

var errProjectNotFound = errors.New("project not found")

// DashboardController drives the authenticated editing surface. Mutations go
// through the portfolio aggregate: load, modify, save.
type DashboardController struct {
	portfolios *services.PortfolioService
	accounts   *services.AccountService
	stats      *services.StatsService
	messages   *services.MessageService
	notifier   *services.NotificationService
	settings   *repositories.NotificationSettingRepository
}

func NewDashboardController(
	portfolios *services.PortfolioService,
	stats *services.StatsService,
	messages *services.MessageService,
	notifier *services.NotificationService,
) *DashboardController {
	return &DashboardController{
		portfolios: portfolios,
		accounts:   services.NewAccountService(database.DB),
		stats:      stats,
		messages:   messages,
		notifier:   notifier,
		settings:   repositories.NewNotificationSettingRepository(database.DB),
	}
}

// Index serves the dashboard summary. Viewing it runs the account
// diagnostics, which may promote or demote the account.
func (ctrl *DashboardController) Index(c *gin.Context) {
	user := currentUser(c)

	report, err := ctrl.accounts.Evaluate(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to evaluate account",
			"error":   err.Error(),
		})
		return
	}

	stats, err := ctrl.stats.Dashboard(user.WorkspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load dashboard stats",
			"error":   err.Error(),
		})
		return
	}

	state, err := ctrl.portfolios.Load(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load portfolio",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"user":        services.UserToResponse(user),
			"stats":       stats,
			"diagnostics": report,
			"portfolio":   state,
		},
	})
}

// mutate loads the caller's aggregate, applies fn and saves the result.
func (ctrl *DashboardController) mutate(c *gin.Context, fn func(*dto.PortfolioState) error) {
	user := currentUser(c)

	state, err := ctrl.portfolios.Load(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load portfolio",
			"error":   err.Error(),
		})
		return
	}

	if err := fn(state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	if err := ctrl.portfolios.Save(user.Username, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save portfolio",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   state,
	})
}

// UpdateGeneral updates the identity block.
func (ctrl *DashboardController) UpdateGeneral(c *gin.Context) {
	var req dto.GeneralUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		state.Name = req.Name
		state.Title = req.Title
		state.Description = req.Description
		if req.Photo != "" {
			state.Photo = req.Photo
		}
		return nil
	})
}

// UpdateAbout replaces the about text.
func (ctrl *DashboardController) UpdateAbout(c *gin.Context) {
	var req dto.AboutUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		state.About = req.About
		return nil
	})
}

// UpdateSkills replaces the skill list. Levels arrive as strings; anything
// unparseable or out of range resets to zero.
func (ctrl *DashboardController) UpdateSkills(c *gin.Context) {
	var req dto.SkillsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		skills := make([]dto.SkillEntry, 0, len(req.Skills))
		for _, input := range req.Skills {
			if input.Name == "" {
				continue
			}
			level, err := strconv.Atoi(input.Level)
			if err != nil {
				level = 0
			}
			skills = append(skills, dto.SkillEntry{
				Name:  input.Name,
				Level: models.ClampLevel(level),
			})
		}
		state.Skills = skills
		return nil
	})
}

// ListProjects returns the caller's projects.
func (ctrl *DashboardController) ListProjects(c *gin.Context) {
	user := currentUser(c)
	state, err := ctrl.portfolios.Load(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load portfolio",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   state.Projects,
	})
}

func projectEntryFromRequest(req dto.ProjectRequest) dto.ProjectEntry {
	projectType := req.ProjectType
	if projectType == "" {
		projectType = string(models.ProjectTypePortfolio)
	}
	return dto.ProjectEntry{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		Image:            req.Image,
		DemoURL:          req.DemoURL,
		GithubURL:        req.GithubURL,
		Technologies:     req.Technologies,
		Gallery:          req.Gallery,
		SkillRelated:     req.SkillRelated,
		ProjectType:      projectType,
		Badge:            models.BadgeForType(models.ProjectType(projectType)),
		ServiceID:        req.ServiceID,
		RequestBudgetMin: req.RequestBudgetMin,
		RequestBudgetMax: req.RequestBudgetMax,
		RequestDeadline:  req.RequestDeadline,
		RequestStatus:    req.RequestStatus,
	}
}

// CreateProject appends a project to the aggregate.
func (ctrl *DashboardController) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	entry := projectEntryFromRequest(req)
	entry.CreatedAt = time.Now().Format(dto.TimeLayout)

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		state.Projects = append(state.Projects, entry)
		return nil
	})
}

// UpdateProject replaces one project in place, keeping its id and creation
// time. Changing the type clears the fields of the previous variant.
func (ctrl *DashboardController) UpdateProject(c *gin.Context) {
	projectID := c.Param("id")

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		for i := range state.Projects {
			if state.Projects[i].ID == projectID {
				entry := projectEntryFromRequest(req)
				entry.ID = projectID
				entry.CreatedAt = state.Projects[i].CreatedAt
				state.Projects[i] = entry
				return nil
			}
		}
		return errProjectNotFound
	})
}

// DeleteProject removes one project.
func (ctrl *DashboardController) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		for i := range state.Projects {
			if state.Projects[i].ID == projectID {
				state.Projects = append(state.Projects[:i], state.Projects[i+1:]...)
				return nil
			}
		}
		return errProjectNotFound
	})
}

// UpdateContact replaces the contact map.
func (ctrl *DashboardController) UpdateContact(c *gin.Context) {
	var req dto.ContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		state.Contact = map[string]string{
			"email":    req.Email,
			"phone":    req.Phone,
			"location": req.Location,
		}
		return nil
	})
}

// UpdateSocial replaces the social links map.
func (ctrl *DashboardController) UpdateSocial(c *gin.Context) {
	var req dto.SocialUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		if req.Links == nil {
			req.Links = map[string]string{}
		}
		state.Social = req.Links
		return nil
	})
}

// UpdateSettings updates workspace settings, currently the theme.
func (ctrl *DashboardController) UpdateSettings(c *gin.Context) {
	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	ctrl.mutate(c, func(state *dto.PortfolioState) error {
		if state.Settings == nil {
			state.Settings = map[string]string{}
		}
		theme := req.Theme
		if theme == "" {
			theme = models.DefaultTheme
		}
		if !models.IsValidTheme(theme) {
			return errors.New("invalid theme selected")
		}
		state.Settings["theme"] = theme
		return nil
	})
}

// UpdateTelegramSettings saves the workspace's Telegram credentials.
func (ctrl *DashboardController) UpdateTelegramSettings(c *gin.Context) {
	user := currentUser(c)

	var req dto.TelegramSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	now := time.Now()
	setting := &models.NotificationSetting{
		WorkspaceID:          user.WorkspaceID,
		TelegramBotToken:     req.BotToken,
		TelegramChatID:       req.ChatID,
		TelegramConfiguredAt: &now,
	}
	if existing, err := ctrl.settings.FindByWorkspaceID(user.WorkspaceID); err == nil {
		setting.SMTPConfig = existing.SMTPConfig
	}
	if err := ctrl.settings.Upsert(setting); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save settings",
			"error":   err.Error(),
		})
		return
	}

	utils.RecordAudit(user.Username, "telegram_configured", "", utils.ClientIP(c))
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Telegram notifications configured",
	})
}

// DeleteTelegramSettings removes the workspace's Telegram credentials.
func (ctrl *DashboardController) DeleteTelegramSettings(c *gin.Context) {
	user := currentUser(c)

	existing, err := ctrl.settings.FindByWorkspaceID(user.WorkspaceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No Telegram settings to remove",
		})
		return
	}

	existing.TelegramBotToken = ""
	existing.TelegramChatID = ""
	existing.TelegramConfiguredAt = nil
	if err := ctrl.settings.Upsert(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Telegram notifications removed",
	})
}

// TestTelegramSettings validates the saved credentials with a probe message.
func (ctrl *DashboardController) TestTelegramSettings(c *gin.Context) {
	user := currentUser(c)

	setting, err := ctrl.settings.FindByWorkspaceID(user.WorkspaceID)
	if err != nil || setting.TelegramBotToken == "" || setting.TelegramChatID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Telegram is not configured",
		})
		return
	}

	if err := ctrl.notifier.TestTelegram(c.Request.Context(), setting.TelegramBotToken, setting.TelegramChatID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Telegram test failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Test message sent",
	})
}

// UpdateSMTPSettings saves the workspace's SMTP credentials.
func (ctrl *DashboardController) UpdateSMTPSettings(c *gin.Context) {
	user := currentUser(c)

	var req dto.SMTPSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	setting := &models.NotificationSetting{
		WorkspaceID: user.WorkspaceID,
		SMTPConfig: models.StringMap{
			"host":          req.Host,
			"port":          req.Port,
			"email":         req.Email,
			"password":      req.Password,
			"configured_at": time.Now().Format(dto.TimeLayout),
		},
	}
	if existing, err := ctrl.settings.FindByWorkspaceID(user.WorkspaceID); err == nil {
		setting.TelegramBotToken = existing.TelegramBotToken
		setting.TelegramChatID = existing.TelegramChatID
		setting.TelegramConfiguredAt = existing.TelegramConfiguredAt
	}
	if err := ctrl.settings.Upsert(setting); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save settings",
			"error":   err.Error(),
		})
		return
	}

	utils.RecordAudit(user.Username, "smtp_configured", "", utils.ClientIP(c))
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "SMTP notifications configured",
	})
}

// DeleteSMTPSettings removes the workspace's SMTP credentials.
func (ctrl *DashboardController) DeleteSMTPSettings(c *gin.Context) {
	user := currentUser(c)

	existing, err := ctrl.settings.FindByWorkspaceID(user.WorkspaceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No SMTP settings to remove",
		})
		return
	}

	existing.SMTPConfig = nil
	if err := ctrl.settings.Upsert(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "SMTP notifications removed",
	})
}

// TestSMTPSettings sends a probe email through the saved account.
func (ctrl *DashboardController) TestSMTPSettings(c *gin.Context) {
	user := currentUser(c)

	setting, err := ctrl.settings.FindByWorkspaceID(user.WorkspaceID)
	if err != nil || len(setting.SMTPConfig) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "SMTP is not configured",
		})
		return
	}

	creds := config.SMTPCredentials{
		Host:     setting.SMTPConfig["host"],
		Port:     setting.SMTPConfig["port"],
		Email:    setting.SMTPConfig["email"],
		Password: setting.SMTPConfig["password"],
	}
	if err := ctrl.notifier.TestSMTP(creds); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "SMTP test failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Test email sent",
	})
}

// LatestNotifications serves the unread messages for the notification bell.
func (ctrl *DashboardController) LatestNotifications(c *gin.Context) {
	user := currentUser(c)

	latest, err := ctrl.messages.LatestUnread(user.WorkspaceID, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load notifications",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   latest,
	})
}
