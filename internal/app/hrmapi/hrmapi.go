// Package hrmapi builds the shared HTTP client and every resource service on
// top of it.
package hrmapi

import (
	"log/slog"
	"net/http"

	"hrmportal/internal/domain/attendance"
	"hrmportal/internal/domain/auth"
	"hrmportal/internal/domain/core"
	"hrmportal/internal/domain/files"
	"hrmportal/internal/domain/holiday"
	"hrmportal/internal/domain/leave"
	"hrmportal/internal/domain/payroll"
	"hrmportal/internal/domain/reports"
	"hrmportal/internal/platform/config"
	"hrmportal/internal/platform/metrics"
	"hrmportal/internal/transport/http/httpclient"
)

type API struct {
	Client     *httpclient.Client
	Auth       *auth.Service
	Core       *core.Service
	Attendance *attendance.Service
	Leave      *leave.Service
	Payroll    *payroll.Service
	Holiday    *holiday.Service
	Files      *files.Service
	Reports    *reports.Service
}

type Deps struct {
	Tokens  httpclient.TokenSource
	Metrics *metrics.Collector
	Logger  *slog.Logger
}

// New wires the services against baseURL. Pass cfg.BaseURL() for callers
// that act like the browser, cfg.APIURL for calls made from the portal
// itself.
func New(cfg config.Config, baseURL string, deps Deps) (*API, error) {
	client, err := httpclient.New(httpclient.Options{
		BaseURL:          baseURL,
		Tokens:           deps.Tokens,
		Timeout:          cfg.RequestTimeout,
		RateLimit:        cfg.RateLimitPerSecond,
		RateBurst:        cfg.RateLimitBurst,
		CancelSuperseded: cfg.CancelSuperseded,
		Metrics:          deps.Metrics,
		Logger:           deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return FromClient(client), nil
}

// NewMultiUser wires the services for a process that calls the backend on
// behalf of many callers. The client keeps no cookie jar, never cancels one
// caller's GET because another caller requested the same path, and leaves
// throttling to the inbound limiter.
func NewMultiUser(cfg config.Config, baseURL string, deps Deps) (*API, error) {
	client, err := httpclient.New(httpclient.Options{
		BaseURL:    baseURL,
		Tokens:     deps.Tokens,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Metrics:    deps.Metrics,
		Logger:     deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return FromClient(client), nil
}

func FromClient(client *httpclient.Client) *API {
	coreSvc := core.NewService(client)
	leaveSvc := leave.NewService(client)
	attendanceSvc := attendance.NewService(client)
	return &API{
		Client:     client,
		Auth:       auth.NewService(client),
		Core:       coreSvc,
		Attendance: attendanceSvc,
		Leave:      leaveSvc,
		Payroll:    payroll.NewService(client),
		Holiday:    holiday.NewService(client),
		Files:      files.NewService(client),
		Reports:    reports.NewService(coreSvc, leaveSvc, attendanceSvc),
	}
}
