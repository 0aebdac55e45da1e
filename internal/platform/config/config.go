package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment        string
	APIURL             string
	PortalOrigin       string
	Addr               string
	FrontendDir        string
	RequestTimeout     time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int
	CancelSuperseded   bool
	TokenFile          string
	TokenKey           string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
	MetricsEnabled     bool
	StorageDriver      string
	StorageDir         string
	StorageBaseURL     string
	S3Bucket           string
	S3Region           string
	S3Endpoint         string
	S3AccessKey        string
	S3SecretKey        string
	S3PublicURL        string
	BatchWorkers       int
	PortalRateLimit    float64
	PortalRateBurst    int
}

// Load reads the process environment, after merging an optional .env file.
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		Environment:        getEnv("APP_ENV", EnvDevelopment),
		APIURL:             strings.TrimRight(getEnv("HRM_API_URL", ""), "/"),
		PortalOrigin:       strings.TrimRight(getEnv("HRM_PORTAL_ORIGIN", "http://localhost:8080"), "/"),
		Addr:               getEnv("APP_ADDR", ":8080"),
		FrontendDir:        getEnv("FRONTEND_DIR", "frontend/dist"),
		RequestTimeout:     getEnvDuration("HRM_REQUEST_TIMEOUT", 0),
		RateLimitPerSecond: getEnvFloat("HRM_RATE_LIMIT_PER_SECOND", 0),
		RateLimitBurst:     getEnvInt("HRM_RATE_LIMIT_BURST", 1),
		CancelSuperseded:   getEnvBool("HRM_CANCEL_SUPERSEDED", false),
		TokenFile:          getEnv("HRM_TOKEN_FILE", defaultTokenFile()),
		TokenKey:           getEnv("HRM_TOKEN_KEY", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 10<<20)),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		StorageDriver:      getEnv("STORAGE_DRIVER", "local"),
		StorageDir:         getEnv("STORAGE_DIR", "downloads"),
		StorageBaseURL:     getEnv("STORAGE_BASE_URL", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Region:           getEnv("S3_REGION", "auto"),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		S3AccessKey:        getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:        getEnv("S3_SECRET_KEY", ""),
		S3PublicURL:        getEnv("S3_PUBLIC_URL", ""),
		BatchWorkers:       getEnvInt("HRM_BATCH_WORKERS", 4),
		PortalRateLimit:    getEnvFloat("PORTAL_RATE_LIMIT_PER_SECOND", 20),
		PortalRateBurst:    getEnvInt("PORTAL_RATE_LIMIT_BURST", 40),
	}
}

func (c Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// BaseURL is the root every resource path is appended to. Development builds
// talk to the relative /api path of the portal, which proxies to HRM_API_URL.
func (c Config) BaseURL() string {
	if c.IsDevelopment() {
		return c.PortalOrigin + "/api"
	}
	return c.APIURL
}

func (c Config) Validate() error {
	if !c.IsDevelopment() && strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("HRM_API_URL is required outside development")
	}
	if c.IsDevelopment() && strings.TrimSpace(c.PortalOrigin) == "" {
		return fmt.Errorf("HRM_PORTAL_ORIGIN is required in development")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("HRM_REQUEST_TIMEOUT must not be negative")
	}
	if c.RateLimitPerSecond < 0 {
		return fmt.Errorf("HRM_RATE_LIMIT_PER_SECOND must not be negative")
	}
	if c.RateLimitPerSecond > 0 && c.RateLimitBurst <= 0 {
		return fmt.Errorf("HRM_RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.PortalRateLimit < 0 {
		return fmt.Errorf("PORTAL_RATE_LIMIT_PER_SECOND must not be negative")
	}
	if c.BatchWorkers <= 0 {
		return fmt.Errorf("HRM_BATCH_WORKERS must be positive")
	}
	switch c.StorageDriver {
	case "local":
	case "s3":
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET must be set when STORAGE_DRIVER is s3")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be local or s3, got %q", c.StorageDriver)
	}
	if c.Environment == EnvProduction && c.TokenKey == "" {
		return fmt.Errorf("HRM_TOKEN_KEY must be set in production so stored tokens are encrypted")
	}
	return nil
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".hrmportal-token"
	}
	return filepath.Join(dir, "hrmportal", "token")
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
