// Package config loads deployment configuration from the environment. A
// .env file is honored for local development; real deployments provide env
// vars directly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr           string
	CORSAllowedOrigins []string

	// "memory" or "postgres".
	StorageBackend string
	DatabaseURL    string

	// "memory" or "s3".
	ResumeBackend string
	S3            S3Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NotionAPIKey     string
	NotionDatabaseID string
	FAQCacheTTL      time.Duration

	// "jwt" (default) or "dev". Dev mode bypasses token verification and
	// takes the subject from X-Debug-Subject.
	AuthMode   string
	DevSubject string
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

func Load() (Config, error) {
	// Missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		StorageBackend:     getenv("STORAGE_BACKEND", "memory"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ResumeBackend:      getenv("RESUME_BACKEND", "memory"),
		S3: S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Bucket:    getenv("S3_BUCKET", "resumes"),
		},
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		NotionAPIKey:     os.Getenv("NOTION_API_KEY"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		FAQCacheTTL:      10 * time.Minute,
		AuthMode:         getenv("AUTH_MODE", "jwt"),
		DevSubject:       os.Getenv("DEV_SUBJECT"),
	}

	if v := os.Getenv("S3_USE_SSL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("S3_USE_SSL must be a boolean: %w", err)
		}
		cfg.S3.UseSSL = b
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB must be an integer: %w", err)
		}
		cfg.RedisDB = n
	}
	if v := os.Getenv("FAQ_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("FAQ_CACHE_TTL must be a duration (e.g. 10m): %w", err)
		}
		cfg.FAQCacheTTL = d
	}

	if cfg.StorageBackend == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("STORAGE_BACKEND=postgres requires DATABASE_URL")
	}
	if cfg.ResumeBackend == "s3" && cfg.S3.Endpoint == "" {
		return Config{}, fmt.Errorf("RESUME_BACKEND=s3 requires S3_ENDPOINT")
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
