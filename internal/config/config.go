package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`
	BasePath    string `json:"base_path"`

	// CORSAllowedOrigins lists the browser origins allowed to call the API, "*" allows any
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`

	// Database configuration
	DBDriver     string `json:"db_driver"`
	DBHost       string `json:"db_host"`
	DBPort       string `json:"db_port"`
	DBName       string `json:"db_name"`
	DBUser       string `json:"db_user"`
	DBPassword   string `json:"db_password"`
	DBSSLMode    string `json:"db_ssl_mode"`
	DBPath       string `json:"db_path"`
	DBMaxRetries int    `json:"db_max_retries"`
	SeedCatalog  bool   `json:"seed_catalog"`

	// Pricing configuration
	BaseFee decimal.Decimal `json:"base_fee"`

	// LogLevel overrides the APP_ENV log level preset when set
	LogLevel string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, BasePath: %s, CORSAllowedOrigins: %v, DBDriver: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBSSLMode: %s, DBPath: %s, DBMaxRetries: %d, SeedCatalog: %t, BaseFee: %s, LogLevel: %s}",
		c.Environment, c.Port, c.Host, c.BasePath, c.CORSAllowedOrigins, c.DBDriver, c.DBHost, c.DBPort, c.DBName,
		c.DBUser, c.DBSSLMode, c.DBPath, c.DBMaxRetries, c.SeedCatalog, c.BaseFee.StringFixed(2), c.LogLevel)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any variable has an invalid value
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5001"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d out of range", port)
	}

	baseFee, err := decimal.NewFromString(GetEnvWithDefault("BASE_FEE", "5.00"))
	if err != nil {
		return nil, fmt.Errorf("invalid BASE_FEE: %w", err)
	}
	if baseFee.IsNegative() {
		return nil, fmt.Errorf("invalid BASE_FEE: %s must not be negative", baseFee)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "postgres", "postgresql", "sqlite":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER: %s (supported: postgres, sqlite)", driver)
	}

	config := &Config{
		Environment:        GetEnvWithDefault("APP_ENV", "development"),
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		BasePath:           normalizeBasePath(GetEnvWithDefault("API_BASE_PATH", "/api")),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		DBDriver:           driver,
		DBHost:             GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             GetEnvWithDefault("DB_PORT", "5432"),
		DBName:             GetEnvWithDefault("DB_NAME", "pizzeria"),
		DBUser:             GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:         GetEnvWithDefault("DB_PASSWORD", "postgres"),
		DBSSLMode:          GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:             GetEnvWithDefault("DB_PATH", "pizza.sqlite"),
		DBMaxRetries:       GetEnvAsType("DB_MAX_RETRIES", 5),
		SeedCatalog:        GetEnvAsType("SEED_CATALOG", true),
		BaseFee:            baseFee,
		LogLevel:           GetEnvWithDefault("LOG_LEVEL", ""),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// normalizeBasePath makes sure the path starts with a slash and has no trailing one
func normalizeBasePath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimRight(path, "/")
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// splitList splits a comma separated value, dropping blank entries
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Warnf("Environment variable %s is not an int, using default value", key)
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			log.Warnf("Environment variable %s is not a bool, using default value", key)
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
