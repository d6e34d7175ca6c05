package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Deals     DealsConfig     `mapstructure:"deals"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	LogLevel  string          `mapstructure:"log_level"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// RedisConfig holds deal index store settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DatabaseConfig holds the sqlite settings for pantry and history
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DealsConfig holds deal import and pricing fallbacks
type DealsConfig struct {
	FeedURL        string        `mapstructure:"feed_url"`
	ImportEnabled  bool          `mapstructure:"import_enabled"`
	ImportInterval time.Duration `mapstructure:"import_interval"`
	FeedTimeout    time.Duration `mapstructure:"feed_timeout"`
	DefaultPrice   float64       `mapstructure:"default_price"`
	DefaultStore   string        `mapstructure:"default_store"`
}

// RateLimitConfig holds rate limiting settings
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig loads configuration from .env and the environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional outside development
		fmt.Println("Warning: .env file not found")
	}

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("deals.feed_url", "DEALS_FEED_URL")
	viper.BindEnv("deals.import_enabled", "DEALS_IMPORT_ENABLED")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "smartcart")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("database.path", "data/smartcart.db")

	viper.SetDefault("deals.feed_url", "")
	viper.SetDefault("deals.import_enabled", false)
	viper.SetDefault("deals.import_interval", "24h")
	viper.SetDefault("deals.feed_timeout", "30s")
	viper.SetDefault("deals.default_price", 5.0)
	viper.SetDefault("deals.default_store", "Walmart")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	viper.SetDefault("log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required")
	}

	if config.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if config.Deals.DefaultPrice <= 0 {
		return fmt.Errorf("invalid default price")
	}
	if config.Deals.DefaultStore == "" {
		return fmt.Errorf("default store is required")
	}
	if config.Deals.ImportEnabled {
		if config.Deals.FeedURL == "" {
			return fmt.Errorf("deals feed url is required when import is enabled")
		}
		if config.Deals.ImportInterval <= 0 {
			return fmt.Errorf("invalid deals import interval")
		}
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.Requests <= 0 {
			return fmt.Errorf("invalid rate limit requests")
		}
		if config.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit window")
		}
	}

	return nil
}
