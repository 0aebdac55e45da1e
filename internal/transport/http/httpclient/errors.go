package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidResponse = errors.New("invalid response body")
	ErrSuperseded      = errors.New("request superseded by a newer request")
)

// APIError is returned for every non-2xx response. The raw body and headers
// are kept so callers can read the server's payload.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// Is lets errors.Is match the status sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// DecodeBody unmarshals the original response body into v.
func (e *APIError) DecodeBody(v any) error {
	return json.Unmarshal(e.Body, v)
}

// AsAPIError unwraps err to the underlying *APIError, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// DecodeError reports a 2xx body that does not match the declared shape.
type DecodeError struct {
	Method string
	Path   string
	Target string
	Body   []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode %s: %v", e.Method, e.Path, e.Target, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrInvalidResponse, e.Err}
}

// serverMessage pulls a human readable message out of an error body. The
// backend uses {"message": ...}; {"error": ...} and {"error": {"message": ...}}
// are accepted too.
func serverMessage(body []byte) string {
	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	if len(payload.Error) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(payload.Error, &text); err == nil {
		return text
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Error, &nested); err == nil {
		return nested.Message
	}
	return strings.TrimSpace(string(payload.Error))
}
