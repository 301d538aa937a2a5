package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration (platform user tokens)
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Control plane configuration
	CloudflareAccountID  string  `mapstructure:"CLOUDFLARE_ACCOUNT_ID"`
	CloudflareAPIToken   string  `mapstructure:"CLOUDFLARE_API_TOKEN"`
	CloudflareAPIBaseURL string  `mapstructure:"CLOUDFLARE_API_BASE_URL"`
	DispatchNamespace    string  `mapstructure:"DISPATCH_NAMESPACE"`
	CodeBucket           string  `mapstructure:"CODE_BUCKET"`
	PlatformTimeoutSec   int     `mapstructure:"PLATFORM_TIMEOUT_SEC"`
	PlatformRateLimitRPS float64 `mapstructure:"PLATFORM_RATE_LIMIT_RPS"`
	PlatformRateBurst    int     `mapstructure:"PLATFORM_RATE_LIMIT_BURST"`

	// Generation configuration
	AIModel      string `mapstructure:"AI_MODEL"`
	AITimeoutSec int    `mapstructure:"AI_TIMEOUT_SEC"`

	// Build pipeline
	BuildTimeoutSec     int    `mapstructure:"BUILD_TIMEOUT_SEC"`
	BuildReaperSchedule string `mapstructure:"BUILD_REAPER_SCHEDULE"`

	// Artifact storage
	StorageBackend         string `mapstructure:"STORAGE_BACKEND"`
	R2Endpoint             string `mapstructure:"R2_ENDPOINT"`
	R2AccessKeyID          string `mapstructure:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey      string `mapstructure:"R2_SECRET_ACCESS_KEY"`
	R2Region               string `mapstructure:"R2_REGION"`
	SupabaseURL            string `mapstructure:"SUPABASE_URL"`
	SupabaseServiceRoleKey string `mapstructure:"SUPABASE_SERVICE_ROLE_KEY"`

	// Redis is optional; when empty project locks are process-local
	RedisURL string `mapstructure:"REDIS_URL"`
}

const (
	StorageBackendS3       = "s3"
	StorageBackendSupabase = "supabase"
)

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "app_builder")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Missing control-plane credentials fail builds, not startup.
	viper.SetDefault("CLOUDFLARE_ACCOUNT_ID", "")
	viper.SetDefault("CLOUDFLARE_API_TOKEN", "")
	viper.SetDefault("CLOUDFLARE_API_BASE_URL", "https://api.cloudflare.com/client/v4")
	viper.SetDefault("DISPATCH_NAMESPACE", "user-apps")
	viper.SetDefault("CODE_BUCKET", "user-code")
	viper.SetDefault("PLATFORM_TIMEOUT_SEC", 30)
	viper.SetDefault("PLATFORM_RATE_LIMIT_RPS", 4)
	viper.SetDefault("PLATFORM_RATE_LIMIT_BURST", 8)

	viper.SetDefault("AI_MODEL", "@cf/zai-org/glm-4.7-flash")
	viper.SetDefault("AI_TIMEOUT_SEC", 120)

	viper.SetDefault("BUILD_TIMEOUT_SEC", 600)
	viper.SetDefault("BUILD_REAPER_SCHEDULE", "@every 1m")

	viper.SetDefault("STORAGE_BACKEND", StorageBackendS3)
	viper.SetDefault("R2_ENDPOINT", "")
	viper.SetDefault("R2_ACCESS_KEY_ID", "")
	viper.SetDefault("R2_SECRET_ACCESS_KEY", "")
	viper.SetDefault("R2_REGION", "auto")
	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")

	viper.SetDefault("REDIS_URL", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.StorageBackend {
	case StorageBackendS3, StorageBackendSupabase:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", config.StorageBackend)
	}

	if config.PlatformTimeoutSec <= 0 || config.AITimeoutSec <= 0 || config.BuildTimeoutSec <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// PlatformTimeout is the bound applied to every single control-plane call.
func (c *Config) PlatformTimeout() time.Duration {
	return time.Duration(c.PlatformTimeoutSec) * time.Second
}

// AITimeout bounds one generation request.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSec) * time.Second
}

// BuildTimeout bounds a whole orchestration run.
func (c *Config) BuildTimeout() time.Duration {
	return time.Duration(c.BuildTimeoutSec) * time.Second
}
