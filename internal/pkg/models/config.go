package models

// Config holds all configuration for the admin gateway
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Marketplace MarketplaceConfig
	Identity    IdentityConfig
	JWT         JWTConfig
	Redis       RedisConfig
	Logger      LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MarketplaceConfig holds the upstream marketplace API configuration.
// BaseURL and APIKey are required; startup fails without them.
type MarketplaceConfig struct {
	BaseURL string
	APIKey  string
	Timeout int // seconds
}

// IdentityConfig holds the identity provider configuration used for
// two-phase user registration
type IdentityConfig struct {
	BaseURL string
	APIKey  string
	Timeout int // seconds
}

// JWTConfig holds JWT authentication configuration for dashboard sessions
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
