// internal/config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const insecureDefaultSecret = "minimart_happy"

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Session     SessionConfig
	Web         WebConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type SessionConfig struct {
	Secret     string
	CookieName string
	TTLHours   int
}

type WebConfig struct {
	TemplateGlob string
	PublicDir    string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MINIMART_DB_HOST", "localhost"),
			Port:         getEnv("MINIMART_DB_PORT", "3306"),
			User:         getEnv("MINIMART_DB_USER", "minimart"),
			Password:     getEnv("MINIMART_DB_PASSWORD", "minimart"),
			Database:     getEnv("MINIMART_DB_NAME", "minimart"),
			MaxOpenConns: getEnvAsInt("MINIMART_DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("MINIMART_DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("MINIMART_DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("MINIMART_DB_LOG_LEVEL", "silent"),
		},
		Session: SessionConfig{
			Secret:     getEnv("MINIMART_SESSION_SECRET", insecureDefaultSecret),
			CookieName: getEnv("MINIMART_SESSION_COOKIE", "minimart_session"),
			TTLHours:   getEnvAsInt("MINIMART_SESSION_TTL", 24),
		},
		Web: WebConfig{
			TemplateGlob: getEnv("MINIMART_TEMPLATE_GLOB", "web/templates/*.html"),
			PublicDir:    getEnv("MINIMART_PUBLIC_DIR", "./public"),
		},
	}

	return config, config.Validate()
}

// Validate surfaces known insecure defaults instead of silently running
// with them. Plaintext password comparison and the open /initialize
// endpoint are kept for compatibility with the seeded dataset and its
// load tester, so they are warnings rather than errors.
func (c *Config) Validate() error {
	if c.Session.Secret == insecureDefaultSecret {
		logrus.Warn("session secret is the built-in default; set MINIMART_SESSION_SECRET")
	}
	logrus.Warn("user passwords are stored and compared in plaintext (legacy dataset compatibility)")
	logrus.Warn("GET /initialize resets the dataset and is unauthenticated")
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
