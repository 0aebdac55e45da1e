// Package api writes the portal's own JSON responses. Proxied backend
// responses pass through untouched.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hrmportal/internal/transport/http/httpclient"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details any, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

// FailFromError maps a data-access error to a response. Backend rejections
// keep their status and message; everything else is a gateway failure.
func FailFromError(w http.ResponseWriter, err error, requestID string) {
	if apiErr, ok := httpclient.AsAPIError(err); ok {
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.StatusCode)
		}
		Fail(w, apiErr.StatusCode, "upstream_rejected", message, requestID)
		return
	}
	switch {
	case errors.Is(err, httpclient.ErrInvalidResponse):
		Fail(w, http.StatusBadGateway, "invalid_upstream_response", "backend returned an unexpected payload", requestID)
	case errors.Is(err, context.DeadlineExceeded):
		Fail(w, http.StatusGatewayTimeout, "upstream_timeout", "backend did not answer in time", requestID)
	default:
		Fail(w, http.StatusBadGateway, "upstream_unavailable", "backend unavailable", requestID)
	}
}
