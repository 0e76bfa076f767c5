package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageLocal    = "local"
	StoragePostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Storage  StorageConfig
	Employee EmployeeConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// StorageConfig selects where the employee master lives
type StorageConfig struct {
	Type     string
	BasePath string
}

type EmployeeConfig struct {
	MasterFile    string
	ArchiveImport bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "employee_master"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	config.Storage = StorageConfig{
		Type:     strings.ToLower(getEnv("STORAGE_TYPE", StorageLocal)),
		BasePath: getEnv("STORAGE_BASE_PATH", "./data"),
	}

	archive, err := strconv.ParseBool(getEnv("IMPORT_ARCHIVE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_ARCHIVE: %w", err)
	}

	config.Employee = EmployeeConfig{
		MasterFile:    getEnv("EMPLOYEE_MASTER_FILE", "employee_master_data.csv"),
		ArchiveImport: archive,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageLocal:
		if !strings.HasSuffix(strings.ToLower(c.Employee.MasterFile), ".csv") {
			return fmt.Errorf("EMPLOYEE_MASTER_FILE must be a .csv file")
		}
	case StoragePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE %q", c.Storage.Type)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
