package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/lib/jsonstore"
	"github.com/codexx-academy/models"
)

// PortfolioService loads and saves whole portfolio aggregates. The database
// is the source of truth; the JSON data file is kept as a derived export and
// as the migration source for pre-database installs.
type PortfolioService struct {
	db    *gorm.DB
	store *jsonstore.Store
}

func NewPortfolioService(db *gorm.DB, store *jsonstore.Store) *PortfolioService {
	return &PortfolioService{db: db, store: store}
}

// Load assembles the full aggregate for a tenant slug. Unknown tenants that
// exist in the legacy JSON file are migrated into the database first; truly
// unknown tenants get the default template.
func (s *PortfolioService) Load(slug string) (*dto.PortfolioState, error) {
	var workspace models.Workspace
	err := s.db.First(&workspace, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		migrated, migErr := s.migrateFromFile(slug)
		if migErr != nil {
			zap.L().Warn("legacy migration failed", zap.String("slug", slug), zap.Error(migErr))
		}
		if migrated == nil {
			state := dto.DefaultPortfolioState()
			state.Username = slug
			return &state, nil
		}
		workspace = *migrated
	} else if err != nil {
		return nil, err
	}

	return s.assemble(&workspace)
}

func (s *PortfolioService) assemble(workspace *models.Workspace) (*dto.PortfolioState, error) {
	state := dto.DefaultPortfolioState()
	state.Username = workspace.Slug
	state.Name = workspace.Name
	state.Title = workspace.Title
	state.Description = workspace.Description
	state.About = workspace.About
	state.Photo = workspace.Photo
	if workspace.Contact != nil {
		state.Contact = workspace.Contact
	}
	if workspace.Social != nil {
		state.Social = workspace.Social
	}
	if workspace.Settings != nil {
		state.Settings = workspace.Settings
	}

	var skills []models.Skill
	if err := s.db.Where("workspace_id = ?", workspace.ID).Order("created_at asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	for _, sk := range skills {
		state.Skills = append(state.Skills, dto.SkillEntry{Name: sk.Name, Level: sk.Level})
	}

	var projects []models.Project
	if err := s.db.Where("workspace_id = ?", workspace.ID).Order("created_at asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	for _, p := range projects {
		state.Projects = append(state.Projects, projectToEntry(p))
	}

	var clients []models.Client
	if err := s.db.Where("workspace_id = ?", workspace.ID).Order("created_at asc").Find(&clients).Error; err != nil {
		return nil, err
	}
	for _, c := range clients {
		state.Clients = append(state.Clients, clientToEntry(c))
	}

	var messages []models.Message
	if err := s.db.Where("workspace_id = ?", workspace.ID).Order("created_at asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	for _, m := range messages {
		state.Messages = append(state.Messages, messageToEntry(m))
	}

	var services []models.Service
	if err := s.db.Where("workspace_id = ?", workspace.ID).Order("created_at asc").Find(&services).Error; err != nil {
		return nil, err
	}
	for _, sv := range services {
		state.Services = append(state.Services, serviceToEntry(sv))
	}

	visitors, err := s.visitorSummary(workspace.ID)
	if err != nil {
		return nil, err
	}
	state.Visitors = *visitors

	var setting models.NotificationSetting
	err = s.db.First(&setting, "workspace_id = ?", workspace.ID).Error
	if err == nil {
		state.Notifications = notificationConfigFromSetting(&setting)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var owner models.User
	if err := s.db.First(&owner, "workspace_id = ?", workspace.ID).Error; err == nil {
		state.IsVerified = owner.IsVerified
	}

	return &state, nil
}

func (s *PortfolioService) visitorSummary(workspaceID string) (*dto.VisitorSummary, error) {
	repo := NewVisitorTracker(s.db)
	return repo.Summary(workspaceID)
}

// Save writes the aggregate back: workspace fields are updated and every
// child collection is replaced inside one transaction. On success the JSON
// export is refreshed; on failure the aggregate is written to the JSON file
// so no data is silently lost.
func (s *PortfolioService) Save(slug string, state *dto.PortfolioState) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var workspace models.Workspace
		lookupErr := tx.First(&workspace, "slug = ?", slug).Error
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			workspace = models.Workspace{Slug: slug}
		} else if lookupErr != nil {
			return lookupErr
		}

		workspace.Name = state.Name
		workspace.Title = state.Title
		workspace.Description = state.Description
		workspace.About = state.About
		workspace.Photo = state.Photo
		workspace.Contact = state.Contact
		workspace.Social = state.Social
		workspace.Settings = state.Settings
		if err := tx.Save(&workspace).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Skill{}, "workspace_id = ?", workspace.ID).Error; err != nil {
			return err
		}
		for _, sk := range state.Skills {
			skill := models.Skill{
				WorkspaceID: workspace.ID,
				Name:        sk.Name,
				Level:       models.ClampLevel(sk.Level),
			}
			if err := tx.Create(&skill).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Project{}, "workspace_id = ?", workspace.ID).Error; err != nil {
			return err
		}
		for _, e := range state.Projects {
			project := projectFromEntry(workspace.ID, e)
			if err := tx.Create(&project).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Client{}, "workspace_id = ?", workspace.ID).Error; err != nil {
			return err
		}
		for _, e := range state.Clients {
			client := clientFromEntry(workspace.ID, e)
			if err := tx.Create(&client).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Message{}, "workspace_id = ?", workspace.ID).Error; err != nil {
			return err
		}
		// Roots first so replies never reference a missing parent.
		for _, e := range state.Messages {
			if e.ParentID != "" {
				continue
			}
			message := messageFromEntry(workspace.ID, e)
			if err := tx.Create(&message).Error; err != nil {
				return err
			}
		}
		for _, e := range state.Messages {
			if e.ParentID == "" {
				continue
			}
			message := messageFromEntry(workspace.ID, e)
			if err := tx.Create(&message).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Service{}, "workspace_id = ?", workspace.ID).Error; err != nil {
			return err
		}
		for _, e := range state.Services {
			service := serviceFromEntry(workspace.ID, e)
			if err := tx.Create(&service).Error; err != nil {
				return err
			}
		}

		if state.Notifications.Telegram != nil || state.Notifications.SMTP != nil {
			setting := settingFromNotificationConfig(workspace.ID, state.Notifications)
			var existing models.NotificationSetting
			lookupErr := tx.First(&existing, "workspace_id = ?", workspace.ID).Error
			if lookupErr == nil {
				setting.ID = existing.ID
				if err := tx.Save(setting).Error; err != nil {
					return err
				}
			} else if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
				if err := tx.Create(setting).Error; err != nil {
					return err
				}
			} else {
				return lookupErr
			}
		}

		return nil
	})

	if err != nil {
		zap.L().Error("portfolio save failed, falling back to data file",
			zap.String("slug", slug), zap.Error(err))
		if fileErr := s.store.SetPortfolio(slug, *state); fileErr != nil {
			zap.L().Error("data file fallback also failed", zap.String("slug", slug), zap.Error(fileErr))
			return fmt.Errorf("failed to save portfolio: %v", err)
		}
		// The aggregate landed in the data file, so the caller's work is
		// not lost; degrade without surfacing an error.
		return nil
	}

	if exportErr := s.ExportToFile(slug); exportErr != nil {
		zap.L().Warn("data file export failed", zap.String("slug", slug), zap.Error(exportErr))
	}
	return nil
}

// ExportToFile refreshes the JSON export for one tenant from the database.
func (s *PortfolioService) ExportToFile(slug string) error {
	state, err := s.Load(slug)
	if err != nil {
		return err
	}
	return s.store.SetPortfolio(slug, *state)
}

// migrateFromFile promotes a legacy JSON portfolio into the database. It
// returns nil without error when the file holds nothing usable for the slug.
func (s *PortfolioService) migrateFromFile(slug string) (*models.Workspace, error) {
	state, ok, err := s.store.GetPortfolio(slug)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	state.Username = slug
	if !state.Plausible() {
		return nil, nil
	}

	workspace := models.Workspace{
		Name:        state.Name,
		Slug:        slug,
		Description: state.Description,
		Title:       state.Title,
		Photo:       state.Photo,
		About:       state.About,
		Contact:     state.Contact,
		Social:      state.Social,
		Settings:    state.Settings,
	}
	if err := s.db.Create(&workspace).Error; err != nil {
		return nil, err
	}
	if err := s.Save(slug, &state); err != nil {
		return nil, err
	}
	zap.L().Info("migrated legacy portfolio into database", zap.String("slug", slug))
	return &workspace, nil
}

func notificationConfigFromSetting(setting *models.NotificationSetting) dto.NotificationConfig {
	config := dto.NotificationConfig{}
	if setting.TelegramBotToken != "" && setting.TelegramChatID != "" {
		config.Telegram = &dto.TelegramConfig{
			BotToken:     setting.TelegramBotToken,
			ChatID:       setting.TelegramChatID,
			ConfiguredAt: formatTimePtr(setting.TelegramConfiguredAt),
		}
	}
	if len(setting.SMTPConfig) > 0 {
		config.SMTP = &dto.SMTPConfig{
			Host:         setting.SMTPConfig["host"],
			Port:         setting.SMTPConfig["port"],
			Email:        setting.SMTPConfig["email"],
			Password:     setting.SMTPConfig["password"],
			ConfiguredAt: setting.SMTPConfig["configured_at"],
		}
	}
	return config
}

func settingFromNotificationConfig(workspaceID string, config dto.NotificationConfig) *models.NotificationSetting {
	setting := &models.NotificationSetting{WorkspaceID: workspaceID}
	if config.Telegram != nil {
		setting.TelegramBotToken = config.Telegram.BotToken
		setting.TelegramChatID = config.Telegram.ChatID
		setting.TelegramConfiguredAt = parseTimePtr(config.Telegram.ConfiguredAt)
	}
	if config.SMTP != nil {
		setting.SMTPConfig = models.StringMap{
			"host":          config.SMTP.Host,
			"port":          config.SMTP.Port,
			"email":         config.SMTP.Email,
			"password":      config.SMTP.Password,
			"configured_at": config.SMTP.ConfiguredAt,
		}
	}
	return setting
}
