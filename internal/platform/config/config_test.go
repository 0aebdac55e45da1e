package config

import (
	"testing"
	"time"
)

func TestBaseURLByEnvironment(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "development uses the portal api path",
			cfg:  Config{Environment: EnvDevelopment, PortalOrigin: "http://localhost:5173", APIURL: "https://hr.example.com"},
			want: "http://localhost:5173/api",
		},
		{
			name: "production uses the configured backend",
			cfg:  Config{Environment: EnvProduction, PortalOrigin: "http://localhost:5173", APIURL: "https://hr.example.com"},
			want: "https://hr.example.com",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.BaseURL(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("HRM_API_URL", "https://hr.example.com/")
	t.Setenv("HRM_REQUEST_TIMEOUT", "15s")
	t.Setenv("HRM_RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("HRM_CANCEL_SUPERSEDED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()
	if cfg.APIURL != "https://hr.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.RequestTimeout)
	}
	if cfg.RateLimitPerSecond != 2.5 {
		t.Fatalf("unexpected rate: %v", cfg.RateLimitPerSecond)
	}
	if !cfg.CancelSuperseded {
		t.Fatal("expected cancel superseded enabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.BaseURL() != "https://hr.example.com" {
		t.Fatalf("unexpected base url: %q", cfg.BaseURL())
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Environment:    EnvDevelopment,
		PortalOrigin:   "http://localhost:8080",
		MaxBodyBytes:   1 << 20,
		StorageDriver:  "local",
		BatchWorkers:   2,
		RateLimitBurst: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing api url outside development", mutate: func(c *Config) { c.Environment = "staging" }},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }},
		{name: "rate limit without burst", mutate: func(c *Config) { c.RateLimitPerSecond = 1; c.RateLimitBurst = 0 }},
		{name: "unknown storage driver", mutate: func(c *Config) { c.StorageDriver = "ftp" }},
		{name: "s3 without bucket", mutate: func(c *Config) { c.StorageDriver = "s3" }},
		{name: "production without token key", mutate: func(c *Config) { c.Environment = EnvProduction; c.APIURL = "https://hr.example.com" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
