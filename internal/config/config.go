package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	DatabaseURL    string
	MigrationsPath string
	AdminToken     string

	// CategoryCapacity is the per-category registration ceiling.
	CategoryCapacity int

	// CatalogPath optionally points to a TOML file overriding the
	// built-in event catalog.
	CatalogPath string

	UploadDir       string
	DownloadLinkTTL time.Duration

	// NATSURL enables the post-commit notification pipeline when set.
	NATSURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// DiscordWebhookURL optionally announces registrations to organizers.
	DiscordWebhookURL string

	DefaultLocale string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		ListenAddr:        envOr("LISTEN_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    envOr("MIGRATIONS_PATH", "migrations"),
		AdminToken:        os.Getenv("ADMIN_TOKEN"),
		CatalogPath:       os.Getenv("CATALOG_PATH"),
		UploadDir:         envOr("UPLOAD_DIR", "uploads"),
		NATSURL:           os.Getenv("NATS_URL"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		MailFrom:          envOr("MAIL_FROM", "registrations@localhost"),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		DefaultLocale:     envOr("DEFAULT_LOCALE", "en"),
	}

	var err error
	if cfg.CategoryCapacity, err = envIntOr("CATEGORY_CAPACITY", 50); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = envIntOr("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	ttl := envOr("DOWNLOAD_LINK_TTL", "15m")
	if cfg.DownloadLinkTTL, err = time.ParseDuration(ttl); err != nil {
		return nil, fmt.Errorf("config: DOWNLOAD_LINK_TTL invalid (%q): %w", ttl, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all business rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.AdminToken) == "" {
		return fmt.Errorf("config: ADMIN_TOKEN is required and cannot be empty")
	}

	if c.CategoryCapacity <= 0 {
		return fmt.Errorf("config: CATEGORY_CAPACITY must be positive, got %d", c.CategoryCapacity)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/regportal?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer, got %q", key, v)
	}
	return n, nil
}
