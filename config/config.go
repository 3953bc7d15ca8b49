package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvDevelopment enables verbose error bodies (internal details echoed to clients).
	EnvDevelopment = "development"
	// EnvProduction hides internal error details from HTTP responses.
	EnvProduction = "production"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, rate limiting and Postgres database connection details.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	APP_ENV=production
//	REQUEST_TIMEOUT=10s
//	RATE_LIMIT_REQUESTS=60
//	RATE_LIMIT_WINDOW=1m
//	CONTACT_RATE_LIMIT_REQUESTS=5
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=sharedesk
//	POSTGRES_SSLMODE=disable
//	POSTGRES_CONNECT_TIMEOUT=30s
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	RateLimit RateLimitConfig // Per-IP request budgets
	Postgres  PostgresConfig  // PostgreSQL connection settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	Env            string        // Deployment mode: "development" or "production"
	RequestTimeout time.Duration // Deadline attached to every request context
}

// RateLimitConfig defines the in-memory per-IP limiter budgets.
type RateLimitConfig struct {
	Requests        int           // Requests allowed per window on read endpoints
	ContactRequests int           // Requests allowed per window on lead-capture endpoints
	Window          time.Duration // Length of the fixed window
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - ConnectTimeout: how long startup keeps retrying the initial connection.
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSLMode        string
	ConnectTimeout time.Duration
	URL            string
}

// IsDevelopment reports whether internal error details may be echoed to clients.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Env, EnvDevelopment)
}

// DSN builds the PostgreSQL connection string for database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("APP_ENV", EnvProduction)
	viper.SetDefault("REQUEST_TIMEOUT", "10s")

	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)
	viper.SetDefault("CONTACT_RATE_LIMIT_REQUESTS", 5)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "sharedesk")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
	viper.SetDefault("POSTGRES_CONNECT_TIMEOUT", "30s")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            strings.ToLower(viper.GetString("APP_ENV")),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			Requests:        viper.GetInt("RATE_LIMIT_REQUESTS"),
			ContactRequests: viper.GetInt("CONTACT_RATE_LIMIT_REQUESTS"),
			Window:          viper.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Postgres: PostgresConfig{
			Host:           viper.GetString("POSTGRES_HOST"),
			Port:           viper.GetInt("POSTGRES_PORT"),
			User:           viper.GetString("POSTGRES_USER"),
			Password:       viper.GetString("POSTGRES_PASSWORD"),
			DBName:         viper.GetString("POSTGRES_DB"),
			SSLMode:        viper.GetString("POSTGRES_SSLMODE"),
			ConnectTimeout: viper.GetDuration("POSTGRES_CONNECT_TIMEOUT"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or malformed.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.Env != EnvDevelopment && AppConfig.Server.Env != EnvProduction {
		missing = append(missing, "APP_ENV (development|production)")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if AppConfig.RateLimit.Requests <= 0 || AppConfig.RateLimit.ContactRequests <= 0 || AppConfig.RateLimit.Window <= 0 {
		missing = append(missing, "RATE_LIMIT_*")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
