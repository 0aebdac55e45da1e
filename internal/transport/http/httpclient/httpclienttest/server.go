// Package httpclienttest runs a fake backend for resource service tests.
package httpclienttest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"hrmportal/internal/transport/http/httpclient"
)

// NewClient starts a chi-routed test server and returns a client pointed at
// it. routes registers the fake endpoints.
func NewClient(t *testing.T, routes func(r chi.Router), opts ...func(*httpclient.Options)) *httpclient.Client {
	t.Helper()

	router := chi.NewRouter()
	routes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	options := httpclient.Options{
		BaseURL: server.URL,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&options)
	}
	client, err := httpclient.New(options)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

// WriteJSON writes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// DecodeBody reads the JSON request body into a generic map.
func DecodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Errorf("decode request body: %v", err)
	}
	return body
}
