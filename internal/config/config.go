package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server        ServerConfig
	App           AppConfig
	State         StateConfig
	GenAI         GenAIConfig
	Notifications NotificationConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"itexe-marketplace-api"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// StateConfig holds state persistence settings. The marketplace keeps its
// whole state under a handful of keys in a pluggable key/value backend.
type StateConfig struct {
	Type string `envconfig:"STATE_BACKEND" default:"sqlite"` // sqlite, mysql, redis, or memory
	Path string `envconfig:"STATE_SQLITE_PATH" default:"./data/marketplace.db"`
	// MySQL settings
	MySQLHost     string `envconfig:"STATE_MYSQL_HOST" default:"localhost"`
	MySQLPort     int    `envconfig:"STATE_MYSQL_PORT" default:"3306"`
	MySQLName     string `envconfig:"STATE_MYSQL_NAME" default:"itexe"`
	MySQLUser     string `envconfig:"STATE_MYSQL_USER" default:"root"`
	MySQLPassword string `envconfig:"STATE_MYSQL_PASS" default:""`
	// Redis settings
	RedisHost     string `envconfig:"STATE_REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"STATE_REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"STATE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"STATE_REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"STATE_REDIS_PREFIX" default:"itexe:"`
}

// GenAIConfig holds settings for the description-drafting service.
// An empty APIKey disables the feature; drafting requests then fail
// immediately with a configuration error and no network call is made.
type GenAIConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY" default:""`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	Timeout time.Duration `envconfig:"GENAI_TIMEOUT" default:"15s"`
}

// NotificationConfig holds notification queue settings.
type NotificationConfig struct {
	TTL time.Duration `envconfig:"NOTIFICATION_TTL" default:"4s"`
}

// MySQLDSN returns the MySQL data source name for the state backend.
func (s *StateConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		s.MySQLUser, s.MySQLPassword, s.MySQLHost, s.MySQLPort, s.MySQLName)
}

// RedisAddress returns the Redis address in host:port format.
func (s *StateConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", s.RedisHost, s.RedisPort)
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
