package hrmapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrmportal/internal/platform/config"
	"hrmportal/internal/platform/metrics"
	"hrmportal/internal/platform/session"
)

func TestNewSharesOneClient(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"roles":[{"id":"r1","name":"HR"}]}`))
	}))
	defer server.Close()

	collector := metrics.New()
	api, err := New(config.Config{RateLimitBurst: 1}, server.URL, Deps{
		Tokens:  session.Static("abc"),
		Metrics: collector,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if api.Core.Client != api.Client || api.Payroll.Client != api.Client || api.Reports.Leave != api.Leave {
		t.Fatal("services must share the configured client")
	}

	roles, err := api.Auth.ListRoles(context.Background())
	if err != nil || len(roles) != 1 {
		t.Fatalf("list roles: %+v, %v", roles, err)
	}
	if auth != "Bearer abc" {
		t.Fatalf("unexpected authorization %q", auth)
	}
	if collector.Snapshot()["requestsTotal"].(uint64) != 1 {
		t.Fatalf("expected one recorded request, got %v", collector.Snapshot())
	}
}

func TestNewRejectsRelativeBase(t *testing.T) {
	if _, err := New(config.Config{}, "/api", Deps{}); err == nil {
		t.Fatal("expected error for relative base url")
	}
}
