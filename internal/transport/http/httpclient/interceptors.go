package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"hrmportal/internal/requestctx"
)

// Interceptor mutates an outgoing request before it is sent.
type Interceptor func(req *http.Request) error

// TokenSource supplies the bearer token for a request. An empty token means
// the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// BearerToken sets Authorization when src yields a token. A failing source
// is logged and the request continues without the header.
func BearerToken(src TokenSource, logger *slog.Logger) Interceptor {
	return func(req *http.Request) error {
		if src == nil {
			return nil
		}
		token, err := src.Token(req.Context())
		if err != nil {
			logger.Debug("token unavailable", "path", req.URL.Path, "err", err)
			return nil
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return nil
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// RequestID forwards the request id from the context or mints a new one.
func RequestID(req *http.Request) error {
	if req.Header.Get("X-Request-ID") != "" {
		return nil
	}
	id := requestctx.GetRequestID(req.Context())
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", id)
	return nil
}
