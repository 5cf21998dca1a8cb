package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

// InitConfig loads configuration from the environment, reading an env file
// first when running locally. The returned config is validated; missing
// required settings are a startup failure, never a silently empty string.
func InitConfig(configPath string) (*models.Config, error) {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	cfg := loadConfigFromEnv()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "admin-gateway")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9980)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Upstream marketplace API
	configs.Marketplace.BaseURL = GetEnv("MARKETPLACE_API_URL", "")
	configs.Marketplace.APIKey = GetEnv("MARKETPLACE_API_KEY", "")
	configs.Marketplace.Timeout = GetEnvAsInt("MARKETPLACE_TIMEOUT", 10)

	// Identity provider
	configs.Identity.BaseURL = GetEnv("IDENTITY_API_URL", "")
	configs.Identity.APIKey = GetEnv("IDENTITY_API_KEY", "")
	configs.Identity.Timeout = GetEnvAsInt("IDENTITY_TIMEOUT", 10)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "karhabty-admin")

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Validate checks the settings without which the gateway cannot function
func Validate(cfg *models.Config) error {
	var missing []string

	if cfg.Marketplace.BaseURL == "" {
		missing = append(missing, "MARKETPLACE_API_URL")
	}
	if cfg.Marketplace.APIKey == "" {
		missing = append(missing, "MARKETPLACE_API_KEY")
	}
	if cfg.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if !strings.HasPrefix(cfg.Marketplace.BaseURL, "http://") && !strings.HasPrefix(cfg.Marketplace.BaseURL, "https://") {
		return fmt.Errorf("MARKETPLACE_API_URL must be an absolute http(s) URL, got %q", cfg.Marketplace.BaseURL)
	}

	return nil
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
