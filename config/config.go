package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		zap.L().Info("no .env file found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// DataFile is the path of the legacy JSON mirror.
func DataFile() string {
	return GetEnv("DATA_FILE", "data.json")
}

// BackupDir is where data.json snapshots and their metadata index live.
func BackupDir() string {
	return GetEnv("BACKUP_DIR", "backups")
}

// SecurityDir holds the append-only audit and IP activity logs.
func SecurityDir() string {
	return GetEnv("SECURITY_DIR", "security")
}

// AdminCredentials holds the environment-provisioned platform admin account.
type AdminCredentials struct {
	Username string
	Password string
}

// GetAdminCredentials loads the admin account from the environment. Both
// fields empty means no environment admin is configured.
func GetAdminCredentials() AdminCredentials {
	return AdminCredentials{
		Username: os.Getenv("ADMIN_USERNAME"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}
}

// TelegramCredentials is a bot token / chat id pair.
type TelegramCredentials struct {
	BotToken string
	ChatID   string
}

// Configured reports whether both halves of the pair are present.
func (c TelegramCredentials) Configured() bool {
	return c.BotToken != "" && c.ChatID != ""
}

// SMTPCredentials describes one SMTP account.
type SMTPCredentials struct {
	Host     string
	Port     string
	Email    string
	Password string
}

// Configured reports whether the account is usable for sending.
func (c SMTPCredentials) Configured() bool {
	return c.Host != "" && c.Email != "" && c.Password != ""
}

// AdminNotifications holds the admin-only notification credential sets.
// These are loaded strictly from the environment and must never be served
// to per-user notification paths.
type AdminNotifications struct {
	Telegram       TelegramCredentials
	SMTP           SMTPCredentials
	RecipientEmail string
}

// GetAdminNotifications loads admin notification settings from the environment.
func GetAdminNotifications() AdminNotifications {
	smtp := SMTPCredentials{
		Host:     os.Getenv("ADMIN_SMTP_HOST"),
		Port:     GetEnv("ADMIN_SMTP_PORT", "587"),
		Email:    os.Getenv("ADMIN_SMTP_EMAIL"),
		Password: os.Getenv("ADMIN_SMTP_PASSWORD"),
	}
	return AdminNotifications{
		Telegram: TelegramCredentials{
			BotToken: os.Getenv("ADMIN_TELEGRAM_BOT_TOKEN"),
			ChatID:   os.Getenv("ADMIN_TELEGRAM_CHAT_ID"),
		},
		SMTP:           smtp,
		RecipientEmail: GetEnv("ADMIN_RECIPIENT_EMAIL", smtp.Email),
	}
}
