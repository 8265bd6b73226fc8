package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	API    APIConfig
	Site   SiteConfig
	Cache  CacheConfig
	Upload UploadConfig
	Env    string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// APIConfig holds settings for the remote content API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SiteConfig holds the public site identity used for canonical URLs.
type SiteConfig struct {
	URL string
}

// CacheConfig holds the rendered-page cache settings. An empty RedisURL
// disables caching entirely.
type CacheConfig struct {
	RedisURL string
	PageTTL  time.Duration
}

// UploadConfig holds image upload settings.
type UploadConfig struct {
	Dir           string
	MaxUploadSize int64
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3001"), "/"),
			Timeout: getDurationEnv("API_TIMEOUT", 20*time.Second),
		},
		Site: SiteConfig{
			URL: strings.TrimRight(getEnv("SITE_URL", "https://news-blog-ui.vercel.app"), "/"),
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
			PageTTL:  getDurationEnv("PAGE_CACHE_TTL", 5*time.Minute),
		},
		Upload: UploadConfig{
			Dir:           getEnv("UPLOAD_DIR", "web/static/news-images"),
			MaxUploadSize: 10 << 20,
		},
		Env: getEnv("ENV", "development"),
	}
}

// Production reports whether the app runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
