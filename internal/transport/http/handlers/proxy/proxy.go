// Package proxy forwards the SPA's relative /api calls to the backend.
package proxy

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"hrmportal/internal/transport/http/api"
	"hrmportal/internal/transport/http/middleware"
)

// New returns a reverse proxy to target that drops prefix from the inbound
// path. The request id travels with the call.
func New(target, prefix string, logger *slog.Logger) (http.Handler, error) {
	upstream, err := url.Parse(strings.TrimRight(target, "/"))
	if err != nil || upstream.Scheme == "" || upstream.Host == "" {
		return nil, fmt.Errorf("proxy target %q must be absolute", target)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			// RawPath keeps escaped ids such as a%2Fb intact.
			pr.Out.URL.Path = trimPrefix(pr.In.URL.Path, prefix)
			pr.Out.URL.RawPath = trimPrefix(pr.In.URL.EscapedPath(), prefix)
			pr.SetURL(upstream)
			pr.SetXForwarded()
			if reqID := middleware.GetRequestID(pr.In.Context()); reqID != "" {
				pr.Out.Header.Set("X-Request-ID", reqID)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			reqID := middleware.GetRequestID(r.Context())
			logger.Warn("proxy request failed", "requestId", reqID, "path", r.URL.Path, "err", err)
			api.Fail(w, http.StatusBadGateway, "upstream_unavailable", "backend unavailable", reqID)
		},
	}, nil
}

func trimPrefix(path, prefix string) string {
	path = strings.TrimPrefix(path, prefix)
	if path == "" {
		return "/"
	}
	return path
}
