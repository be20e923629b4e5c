package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	Server ServerConfig
	JWT    JWTConfig
	Admin  AdminConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

// AdminConfig holds the single built-in principal the access gate
// authenticates against.
type AdminConfig struct {
	Login    string
	Password string
}

type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults so the service can boot in any environment.
func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Server: ServerConfig{
			Port: getString("SERVER_PORT", "8008"),
		},
		JWT: JWTConfig{
			Secret:   getString("JWT_SECRET", "development-insecure-secret-change-me"),
			Issuer:   getString("JWT_ISSUER", "project-tracker-api"),
			Audience: getString("JWT_AUDIENCE", "project-tracker-clients"),
			TokenTTL: getDuration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Admin: AdminConfig{
			Login:    getString("ADMIN_LOGIN", "admin"),
			Password: getString("ADMIN_PASSWORD", "admin"),
		},
		Log: LogConfig{
			Level: getString("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
