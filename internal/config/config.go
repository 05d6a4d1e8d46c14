package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerPort string
	AppEnv     string

	APIURL     string
	MediaURL   string
	APITimeout time.Duration

	SessionBackend      string
	SessionTTL          time.Duration
	SessionCookieSecure bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AlertPollInterval time.Duration
	ShopTimezone      string
	CORSOrigins       []string
}

func Load() *Config {
	apiURL := strings.TrimRight(getEnv("API_URL", "https://barberrock.es"), "/")

	return &Config{
		ServerPort: getEnv("WEB_PORT", "3000"),
		AppEnv:     getEnv("APP_ENV", "production"),

		APIURL:     apiURL,
		MediaURL:   strings.TrimRight(getEnv("MEDIA_URL", apiURL), "/"),
		APITimeout: getEnvAsDuration("API_TIMEOUT", 10*time.Second),

		SessionBackend:      strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
		SessionTTL:          getEnvAsDuration("SESSION_TTL", 7*24*time.Hour),
		SessionCookieSecure: getEnvAsBool("SESSION_COOKIE_SECURE", false),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		AlertPollInterval: getEnvAsDuration("ALERT_POLL_INTERVAL", 30*time.Second),
		ShopTimezone:      getEnv("SHOP_TIMEZONE", "Europe/Madrid"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvAsBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvAsDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
