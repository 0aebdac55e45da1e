package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrmportal/internal/transport/http/httpclient"
)

func TestFailFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "backend rejection keeps status",
			err:        fmt.Errorf("list employees: %w", &httpclient.APIError{StatusCode: http.StatusForbidden, Message: "HR only"}),
			wantStatus: http.StatusForbidden,
			wantCode:   "upstream_rejected",
			wantMsg:    "HR only",
		},
		{
			name:       "rejection without message",
			err:        &httpclient.APIError{StatusCode: http.StatusNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   "upstream_rejected",
			wantMsg:    "Not Found",
		},
		{
			name:       "bad payload",
			err:        &httpclient.DecodeError{Err: errors.New("boom")},
			wantStatus: http.StatusBadGateway,
			wantCode:   "invalid_upstream_response",
		},
		{
			name:       "timeout",
			err:        fmt.Errorf("GET /x: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "upstream_timeout",
		},
		{
			name:       "transport",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "upstream_unavailable",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FailFromError(rec, tc.err, "req-1")
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			var env Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Success || env.Error == nil || env.Error.Code != tc.wantCode || env.RequestID != "req-1" {
				t.Fatalf("unexpected envelope %+v", env)
			}
			if tc.wantMsg != "" && env.Error.Message != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, env.Error.Message)
			}
		})
	}
}
