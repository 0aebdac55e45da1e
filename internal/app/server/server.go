// Package server assembles the portal: the SPA, the /api proxy to the
// backend and the portal's own report endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"hrmportal/internal/app/hrmapi"
	"hrmportal/internal/platform/config"
	"hrmportal/internal/platform/metrics"
	"hrmportal/internal/platform/session"
	"hrmportal/internal/transport/http/api"
	"hrmportal/internal/transport/http/handlers/proxy"
	reportshandler "hrmportal/internal/transport/http/handlers/reports"
	"hrmportal/internal/transport/http/middleware"
)

type App struct {
	Config   config.Config
	Logger   *slog.Logger
	API      *hrmapi.API
	Inbound  *metrics.Collector
	Upstream *metrics.Collector
	Limiter  *middleware.RateLimiter
	Router   http.Handler
}

// New builds the router. Backend calls made by the portal go straight to
// HRM_API_URL with the caller's token and share no cookies between callers.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{
		Config:   cfg,
		Logger:   logger,
		Inbound:  metrics.New(),
		Upstream: metrics.New(),
		Limiter:  middleware.NewRateLimiter(cfg.PortalRateLimit, cfg.PortalRateBurst),
	}

	if cfg.APIURL != "" {
		client, err := hrmapi.NewMultiUser(cfg, cfg.APIURL, hrmapi.Deps{
			Tokens:  session.Context{},
			Metrics: app.Upstream,
			Logger:  logger,
		})
		if err != nil {
			return nil, fmt.Errorf("backend client: %w", err)
		}
		app.API = client
	}

	router, err := app.routes()
	if err != nil {
		return nil, err
	}
	app.Router = router
	return app, nil
}

func (a *App) routes() (http.Handler, error) {
	cfg := a.Config
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(a.Logger, a.Inbound))
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == config.EnvProduction, cfg.APIURL))
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	router.Use(a.Limiter.Middleware)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", a.handleReady)
	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, map[string]any{
				"inbound":  a.Inbound.Snapshot(),
				"upstream": a.Upstream.Snapshot(),
			}, middleware.GetRequestID(r.Context()))
		})
	}

	if a.API != nil {
		backend, err := proxy.New(cfg.APIURL, "/api", a.Logger)
		if err != nil {
			return nil, err
		}
		router.With(middleware.BodyLimit(cfg.MaxBodyBytes)).Handle("/api/*", backend)

		reports := reportshandler.NewHandler(a.API, a.Logger)
		router.Route("/portal", func(r chi.Router) {
			r.Use(middleware.RequireBearer(nil))
			reports.RegisterRoutes(r)
		})
	}

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})
	return router, nil
}

// handleReady reports whether the backend answers at all. Any HTTP response
// counts; only transport failures make the portal unready.
func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	if a.Config.APIURL == "" {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, a.Config.APIURL, nil)
	if err != nil {
		http.Error(w, "backend not ready", http.StatusServiceUnavailable)
		return
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		a.Logger.Warn("readiness probe failed", "err", err)
		http.Error(w, "backend not ready", http.StatusServiceUnavailable)
		return
	}
	_ = resp.Body.Close()
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go a.Limiter.Run(ctx, time.Minute)

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("portal listening", "addr", a.Config.Addr, "env", a.Config.Environment, "backend", a.Config.APIURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	a.Logger.Info("portal shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/portal/") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if err == nil || os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
