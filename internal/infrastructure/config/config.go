package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// Config holds application configuration values loaded from the
// environment.
type Config struct {
	Port       string
	AppVersion string

	// DirectoryDriver selects the identity directory backing: "gotrue"
	// for the hosted provider, "mongo" for the embedded store.
	DirectoryDriver  string
	DirectoryTimeout time.Duration

	GoTrueURL        string
	GoTrueServiceKey string

	MongoURI    string
	MongoDBName string

	SessionSecret string
	SessionTTL    time.Duration

	RedisURL string

	RateLimitPerSecond float64

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		AppVersion:         getEnv("APP_VERSION", "1.0.0"),
		DirectoryDriver:    getEnv("DIRECTORY_DRIVER", "gotrue"),
		DirectoryTimeout:   time.Second * time.Duration(getEnvAsInt("DIRECTORY_TIMEOUT_SECONDS", 5)),
		GoTrueURL:          getEnv("GOTRUE_URL", ""),
		GoTrueServiceKey:   getEnv("GOTRUE_SERVICE_KEY", ""),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "cowry"),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		SessionTTL:         time.Hour * time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)),
		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		SMTPHost:           getEnv("EMAIL_HOST", ""),
		SMTPPort:           getEnv("EMAIL_PORT", "587"),
		SMTPUsername:       getEnv("EMAIL_USERNAME", ""),
		SMTPPassword:       getEnv("EMAIL_APP_PASSWORD", ""),
		SMTPFrom:           getEnv("EMAIL_FROM", ""),
	}
}

// GetAppVersion returns the reported application version.
func (c *Config) GetAppVersion() string {
	return c.AppVersion
}

// GetDirectoryTimeout returns the per-call deadline for directory requests.
func (c *Config) GetDirectoryTimeout() time.Duration {
	return c.DirectoryTimeout
}

// GetRateLimitPerSecond returns the per-IP request budget.
func (c *Config) GetRateLimitPerSecond() float64 {
	return c.RateLimitPerSecond
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a float or return a
// default value.
func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}
