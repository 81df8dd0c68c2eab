package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env       string
	Port      string
	SecretKey []byte
	UploadDir string
	BaseURL   string
	DB        DBConfig
	Mail      MailConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	SiteAdmin string
}

// Load reads configuration from the environment with development defaults.
// The secret key signs both admin session tokens and preview/moderation
// links.
func Load() *Config {
	return &Config{
		Env:       getenv("APP_ENV", "development"),
		Port:      getenv("PORT", "8080"),
		SecretKey: []byte(getenv("SECRET_KEY", "change-this-in-production")),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
		BaseURL:   getenv("BASE_URL", "http://localhost:8080"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "inkwell"),
			Password: getenv("DB_PASSWORD", "inkwell"),
			Name:     getenv("DB_NAME", "inkwell"),
		},
		Mail: MailConfig{
			Host:      getenv("MAIL_SERVER", "smtp.googlemail.com"),
			Port:      getenvInt("MAIL_PORT", 587),
			Username:  os.Getenv("MAIL_USERNAME"),
			Password:  os.Getenv("MAIL_PASSWORD"),
			SiteAdmin: os.Getenv("SITE_ADMIN"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
