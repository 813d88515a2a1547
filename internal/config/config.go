// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MinimumSecretLength is the minimum length of the JWT signing secret.
const MinimumSecretLength = 32

type Config struct {
	// HTTP
	APIURL  string
	Port    string
	GinMode string

	// Logging
	LogFormat string

	// Database
	DataDir     string
	DatabaseURL string // PostgreSQL connection string. SQLite in DataDir is used when it is empty

	// Authentication
	JWTSecret string
}

// Load reads the configuration from the environment. Call godotenv.Load
// before to read a .env file.
func Load() *Config {
	return &Config{
		APIURL:      getEnv("API_URL", ""),
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", gin.ReleaseMode),
		LogFormat:   getEnv("LOG_FORMAT", ""),
		DataDir:     getEnv("DATA_DIR", filepath.Join(".", "data")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}
}

// Validate checks the configuration and returns all problems found at once.
func (c *Config) Validate() error {
	var errs []error

	if c.APIURL == "" {
		errs = append(errs, errors.New("API_URL must be set"))
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("API_URL '%s' must be an absolute URL", c.APIURL))
	}

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT '%s' must be a number between 1 and 65535", c.Port))
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE '%s' must be one of debug, release or test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT '%s' must be either human or json", c.LogFormat))
	}

	if c.DatabaseURL == "" && strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, errors.New("DATA_DIR must not be empty when DATABASE_URL is not set"))
	}

	if len(c.JWTSecret) < MinimumSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters long", MinimumSecretLength))
	}

	return errors.Join(errs...)
}

// BaseURL returns the parsed API_URL. Only call it on a validated configuration.
func (c *Config) BaseURL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// UsePostgres reports if the database is PostgreSQL.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// SQLitePath is the path of the SQLite database file.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "gorm.db")
}

// HumanLogs reports if logs are written for humans instead of as JSON.
// Without an explicit LOG_FORMAT, debug mode logs for humans.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == gin.DebugMode
	}
	return c.LogFormat == "human"
}

// LogLevel is debug in gin's debug mode and info otherwise. It does not
// depend on gin's global mode so that logging works before the
// configuration is validated.
func (c *Config) LogLevel() zerolog.Level {
	if c.GinMode == gin.DebugMode {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
