package proxy

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrmportal/internal/transport/http/middleware"
)

func TestProxyStripsPrefix(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotReqID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer backend.Close()

	handler, err := New(backend.URL+"/v1/", "/api", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new proxy: %v", err)
	}
	handler = middleware.RequestID(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/employees?page=2&limit=10", nil)
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("X-Request-ID", "req-9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated || rec.Body.String() != `{"ok":true}` {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
	if gotPath != "/v1/employees" || gotQuery != "page=2&limit=10" {
		t.Fatalf("unexpected upstream url %q ? %q", gotPath, gotQuery)
	}
	if gotAuth != "Bearer tok" || gotReqID != "req-9" {
		t.Fatalf("headers not forwarded: auth=%q reqId=%q", gotAuth, gotReqID)
	}
}

func TestProxyUnavailableBackend(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	target := backend.URL
	backend.Close()

	handler, err := New(target, "/api", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new proxy: %v", err)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/roles", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestProxyRejectsRelativeTarget(t *testing.T) {
	if _, err := New("/relative", "/api", nil); err == nil {
		t.Fatal("expected error for relative target")
	}
}

func TestProxyKeepsEscapedSegments(t *testing.T) {
	var gotPath, gotRaw string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRaw = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	handler, err := New(backend.URL, "/api", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new proxy: %v", err)
	}

	tests := []struct {
		name     string
		target   string
		wantPath string
		wantRaw  string
	}{
		{name: "escaped slash", target: "/api/employees/a%2Fb", wantPath: "/employees/a/b", wantRaw: "/employees/a%2Fb"},
		{name: "plain", target: "/api/employees/e1", wantPath: "/employees/e1", wantRaw: "/employees/e1"},
		{name: "prefix only", target: "/api", wantPath: "/", wantRaw: "/"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if gotPath != tc.wantPath || gotRaw != tc.wantRaw {
				t.Fatalf("expected %q (%q), got %q (%q)", tc.wantPath, tc.wantRaw, gotPath, gotRaw)
			}
		})
	}
}
