package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Admin     AdminConfig
	JWT       JWTConfig
	Recommend RecommendConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// StorageConfig selects the persistence provider backend.
// Driver is "file", "redis" or "memory".
type StorageConfig struct {
	Driver  string
	DataDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AdminConfig holds the single credential pair that grants the admin role.
// This is a development placeholder, never a real identity provider.
type AdminConfig struct {
	Email    string
	Password string
}

type JWTConfig struct {
	Secret      string
	TokenExpiry int // in minutes
}

// RecommendConfig points at an OpenAI-compatible completion endpoint. When
// disabled, product recommendations use the deterministic fallback only.
type RecommendConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerWindow int
	WindowSeconds     int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("STORAGE_DATA_DIR", "data")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ADMIN_EMAIL", "admin@sama.local")
	viper.SetDefault("ADMIN_PASSWORD", "change-me-now")
	viper.SetDefault("JWT_TOKEN_EXPIRY", 60)
	viper.SetDefault("RECOMMEND_ENABLED", false)
	viper.SetDefault("RECOMMEND_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("RECOMMEND_MODEL", "gpt-4o-mini")
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Storage: StorageConfig{
			Driver:  viper.GetString("STORAGE_DRIVER"),
			DataDir: viper.GetString("STORAGE_DATA_DIR"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			TokenExpiry: viper.GetInt("JWT_TOKEN_EXPIRY"),
		},
		Recommend: RecommendConfig{
			Enabled: viper.GetBool("RECOMMEND_ENABLED"),
			BaseURL: viper.GetString("RECOMMEND_BASE_URL"),
			APIKey:  viper.GetString("RECOMMEND_API_KEY"),
			Model:   viper.GetString("RECOMMEND_MODEL"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
			RequestsPerWindow: viper.GetInt("RATE_LIMIT_REQUESTS"),
			WindowSeconds:     viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}
}
