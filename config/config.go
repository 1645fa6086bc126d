package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	HolidayBaseURL  string
	UpstreamTimeout time.Duration

	CORSAllowedOrigins []string
	RequireAuth        bool

	JWTSecret    string
	JWTExpiresIn time.Duration

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// AuthEnabled báo có đủ cấu hình để bật các route /auth hay không
func (c *Config) AuthEnabled() bool {
	return c.DatabaseURL != "" && c.JWTSecret != ""
}

// Load đọc file .env (nếu có) rồi lấy cấu hình từ biến môi trường
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8083"),
		GinMode:            getEnv("GIN_MODE", "release"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		HolidayBaseURL:     getEnv("HOLIDAY_API_BASE_URL", "https://date.nager.at/api/v3"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
	}

	var err error
	if cfg.UpstreamTimeout, err = time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s")); err != nil {
		return nil, errors.Wrap(err, "invalid UPSTREAM_TIMEOUT")
	}
	if cfg.UpstreamTimeout <= 0 {
		return nil, errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	if cfg.JWTExpiresIn, err = time.ParseDuration(getEnv("JWT_EXPIRES_IN", "24h")); err != nil {
		return nil, errors.Wrap(err, "invalid JWT_EXPIRES_IN")
	}
	if cfg.RequireAuth, err = strconv.ParseBool(getEnv("REQUIRE_AUTH", "false")); err != nil {
		return nil, errors.Wrap(err, "invalid REQUIRE_AUTH")
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, errors.Wrap(err, "invalid REDIS_DB")
	}

	if cfg.RequireAuth && !cfg.AuthEnabled() {
		return nil, errors.New("REQUIRE_AUTH needs DATABASE_URL and JWT_SECRET")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
