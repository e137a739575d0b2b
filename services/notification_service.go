package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/codexx-academy/config"
	"github.com/codexx-academy/lib/telegram"
	"github.com/codexx-academy/models"
	"github.com/codexx-academy/repositories"
)

// TelegramSender delivers one Telegram message. Implemented by the Bot API
// client; tests swap in a recorder.
type TelegramSender interface {
	Send(ctx context.Context, botToken, chatID, text string) error
}

// EmailSender delivers one email through an SMTP account.
type EmailSender interface {
	Send(creds config.SMTPCredentials, to, subject, body string) error
}

type botAPISender struct{}

func (botAPISender) Send(ctx context.Context, botToken, chatID, text string) error {
	return telegram.NewClient(botToken).SendMessage(ctx, chatID, text)
}

type gomailSender struct{}

func (gomailSender) Send(creds config.SMTPCredentials, to, subject, body string) error {
	port, err := strconv.Atoi(creds.Port)
	if err != nil {
		return fmt.Errorf("invalid smtp port %q: %v", creds.Port, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", creds.Email)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return gomail.NewDialer(creds.Host, port, creds.Email, creds.Password).DialAndSend(m)
}

// NotificationService fans events out to Telegram and email. Admin
// credentials come from the environment; workspace credentials come from the
// notification settings table. The two sets are never mixed: a workspace
// channel that matches the admin configuration is treated as unconfigured.
type NotificationService struct {
	settingRepo *repositories.NotificationSettingRepository
	telegram    TelegramSender
	email       EmailSender
	admin       config.AdminNotifications
	async       bool
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{
		settingRepo: repositories.NewNotificationSettingRepository(db),
		telegram:    botAPISender{},
		email:       gomailSender{},
		admin:       config.GetAdminNotifications(),
		async:       true,
	}
}

// NewNotificationServiceWithSenders wires explicit senders and admin
// credentials; sends run inline.
func NewNotificationServiceWithSenders(db *gorm.DB, tg TelegramSender, email EmailSender, admin config.AdminNotifications) *NotificationService {
	return &NotificationService{
		settingRepo: repositories.NewNotificationSettingRepository(db),
		telegram:    tg,
		email:       email,
		admin:       admin,
	}
}

func (s *NotificationService) dispatch(name string, fn func() error) {
	run := func() {
		if err := fn(); err != nil {
			zap.L().Warn("notification delivery failed", zap.String("channel", name), zap.Error(err))
		}
	}
	if s.async {
		go run()
		return
	}
	run()
}

// NotifyAdmin sends a platform-level event to the administrator over every
// configured admin channel. Delivery is at-most-once and fire-and-forget.
func (s *NotificationService) NotifyAdmin(subject, body string) {
	if s.admin.Telegram.Configured() {
		creds := s.admin.Telegram
		s.dispatch("admin-telegram", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return s.telegram.Send(ctx, creds.BotToken, creds.ChatID, subject+"\n\n"+body)
		})
	}
	if s.admin.SMTP.Configured() && s.admin.RecipientEmail != "" {
		creds := s.admin.SMTP
		to := s.admin.RecipientEmail
		s.dispatch("admin-email", func() error {
			return s.email.Send(creds, to, subject, body)
		})
	}
}

// NotifyWorkspace sends a tenant-level event using the workspace's own
// channels. Unconfigured channels are skipped silently.
func (s *NotificationService) NotifyWorkspace(workspaceID, subject, body string) {
	setting, err := s.settingRepo.FindByWorkspaceID(workspaceID)
	if err != nil {
		return
	}

	if token, chatID, ok := s.workspaceTelegram(setting); ok {
		s.dispatch("workspace-telegram", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return s.telegram.Send(ctx, token, chatID, subject+"\n\n"+body)
		})
	}

	if creds, ok := s.workspaceSMTP(setting); ok {
		to := creds.Email
		s.dispatch("workspace-email", func() error {
			return s.email.Send(creds, to, subject, body)
		})
	}
}

// workspaceTelegram returns the workspace's Telegram credentials unless they
// are missing or identical to the admin's.
func (s *NotificationService) workspaceTelegram(setting *models.NotificationSetting) (string, string, bool) {
	if setting.TelegramBotToken == "" || setting.TelegramChatID == "" {
		return "", "", false
	}
	if setting.TelegramBotToken == s.admin.Telegram.BotToken && setting.TelegramChatID == s.admin.Telegram.ChatID {
		return "", "", false
	}
	return setting.TelegramBotToken, setting.TelegramChatID, true
}

func (s *NotificationService) workspaceSMTP(setting *models.NotificationSetting) (config.SMTPCredentials, bool) {
	creds := config.SMTPCredentials{
		Host:     setting.SMTPConfig["host"],
		Port:     setting.SMTPConfig["port"],
		Email:    setting.SMTPConfig["email"],
		Password: setting.SMTPConfig["password"],
	}
	if !creds.Configured() {
		return config.SMTPCredentials{}, false
	}
	if creds.Host == s.admin.SMTP.Host && creds.Email == s.admin.SMTP.Email {
		return config.SMTPCredentials{}, false
	}
	return creds, true
}

// TestTelegram validates a bot token and sends a probe message to the chat.
func (s *NotificationService) TestTelegram(ctx context.Context, botToken, chatID string) error {
	client := telegram.NewClient(botToken)
	if _, err := client.GetMe(ctx); err != nil {
		return err
	}
	return s.telegram.Send(ctx, botToken, chatID, "Codexx Academy: Telegram notifications are working.")
}

// TestSMTP sends a probe email to the account's own address.
func (s *NotificationService) TestSMTP(creds config.SMTPCredentials) error {
	return s.email.Send(creds, creds.Email,
		"Codexx Academy test email",
		"SMTP notifications are configured correctly.")
}
