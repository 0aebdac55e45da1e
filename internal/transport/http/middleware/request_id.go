package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrmportal/internal/requestctx"
)

// RequestID propagates X-Request-ID, minting one when the caller sent none.
// Backend calls made while serving the request reuse it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if reqID := strings.TrimSpace(r.Header.Get("X-Request-ID")); reqID != "" && len(reqID) <= 128 {
			ctx = requestctx.WithRequestID(ctx, reqID)
		}
		ctx, reqID := requestctx.Ensure(ctx)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}
