package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	LogLevel string
	LogDir   string
	APIKey   string // API key for authentication

	// Proxies whose X-Forwarded-For header is trusted for client IPs
	TrustedProxies []string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Result poller
	PollInterval time.Duration
	FeedBaseURL  string
	FeedTimeout  time.Duration

	// Resolution engine fan-out width
	ResolveParallelism int

	// Discord webhook for auto-resolution notifications; notifications
	// are disabled when either part is empty
	DiscordWebhookID    string
	DiscordWebhookToken string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv("LOG_LEVEL", "INFO"),
		LogDir:              getEnv("LOG_DIR", "logs"),
		APIKey:              getEnv("API_KEY", ""),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "fightcred"),
		FeedBaseURL:         getEnv("FEED_BASE_URL", ""),
		DiscordWebhookID:    getEnv("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: getEnv("DISCORD_WEBHOOK_TOKEN", ""),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.PollInterval, err = getEnvDuration("POLL_INTERVAL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg.FeedTimeout, err = getEnvDuration("FEED_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	parallelismStr := getEnv("RESOLVE_PARALLELISM", "8")
	cfg.ResolveParallelism, err = strconv.Atoi(parallelismStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RESOLVE_PARALLELISM value: %w", err)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable ("5m", "15s")
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// NotificationsEnabled reports whether a Discord webhook is configured
func (c *Config) NotificationsEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
