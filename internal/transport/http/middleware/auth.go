package middleware

import (
	"net/http"
	"strings"
	"time"

	"hrmportal/internal/platform/session"
	"hrmportal/internal/transport/http/api"
)

// RequireBearer lifts the caller's bearer token into the request context so
// backend calls made on their behalf carry it. Tokens that are not JWTs are
// forwarded as-is; expired JWTs are refused without a backend round trip.
func RequireBearer(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := GetRequestID(r.Context())
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", reqID)
				return
			}
			if claims, err := session.Inspect(token); err == nil && claims.Expired(now()) {
				api.Fail(w, http.StatusUnauthorized, "token_expired", "session expired", reqID)
				return
			}
			ctx := session.WithToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
