package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"hrmportal/internal/platform/metrics"
)

const (
	contentTypeJSON = "application/json"
	acceptAny       = "*/*"
)

type Options struct {
	BaseURL string
	Tokens  TokenSource
	// HTTPClient replaces the default cookie-jar client. Timeout is ignored
	// when it is set.
	HTTPClient *http.Client
	// Timeout of 0 leaves requests unbounded.
	Timeout time.Duration
	// RateLimit in requests per second; 0 disables throttling.
	RateLimit float64
	RateBurst int
	// CancelSuperseded aborts an in-flight GET when another GET to the same
	// path starts.
	CancelSuperseded bool
	Interceptors     []Interceptor
	Metrics          *metrics.Collector
	Logger           *slog.Logger
}

// Client is the single configured HTTP client shared by every resource
// service.
type Client struct {
	baseURL      string
	http         *http.Client
	interceptors []Interceptor
	limiter      *rate.Limiter
	inflight     *inflight
	metrics      *metrics.Collector
	logger       *slog.Logger
	validate     *validator.Validate
}

// Message is the generic acknowledgement body returned by mutations that
// have nothing else to report.
type Message struct {
	Message string `json:"message"`
}

func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		httpClient = &http.Client{Jar: jar, Timeout: opts.Timeout}
	}

	c := &Client{
		baseURL:  base,
		http:     httpClient,
		metrics:  opts.Metrics,
		logger:   logger,
		validate: newValidator(),
	}
	c.interceptors = append([]Interceptor{RequestID, BearerToken(opts.Tokens, logger)}, opts.Interceptors...)
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	if opts.CancelSuperseded {
		c.inflight = newInflight()
	}
	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, q Query, out any) error {
	return c.Do(ctx, http.MethodGet, path, q, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, Query{}, body, out)
}

func (c *Client) Put(ctx context.Context, path string, q Query, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, q, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, Query{}, nil, out)
}

// Do sends a JSON request and decodes the response body into out (which may
// be nil). Errors keep their cause: *APIError for non-2xx responses,
// *DecodeError for bodies that fail the declared shape.
func (c *Client) Do(ctx context.Context, method, path string, q Query, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	_, data, err := c.send(ctx, method, path, q, reader, contentTypeJSON, contentTypeJSON)
	if err != nil {
		return err
	}
	return c.decode(method, path, data, out)
}

// Download issues a GET whose body is binary and returns the whole
// response.
func (c *Client) Download(ctx context.Context, path string, q Query) (*Download, error) {
	resp, data, err := c.send(ctx, http.MethodGet, path, q, nil, contentTypeJSON, acceptAny)
	if err != nil {
		return nil, err
	}
	return &Download{StatusCode: resp.StatusCode, Header: resp.Header.Clone(), Body: data}, nil
}

// Upload posts r as a multipart form with a single file field.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("POST %s: build form: %w", path, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("POST %s: read file: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("POST %s: build form: %w", path, err)
	}

	_, data, err := c.send(ctx, http.MethodPost, path, Query{}, &buf, mw.FormDataContentType(), contentTypeJSON)
	if err != nil {
		return err
	}
	return c.decode(http.MethodPost, path, data, out)
}

func (c *Client) send(ctx context.Context, method, path string, q Query, body io.Reader, contentType, accept string) (*http.Response, []byte, error) {
	if c.inflight != nil && method == http.MethodGet {
		var done func()
		ctx, done = c.inflight.begin(ctx, method+" "+path)
		defer done()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, fmt.Errorf("%s %s: %w", method, path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+q.String(), body)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", accept)
	for _, intercept := range c.interceptors {
		if err := intercept(req); err != nil {
			return nil, nil, fmt.Errorf("%s %s: %w", method, path, err)
		}
	}
	requestID := req.Header.Get("X-Request-ID")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.Record(0, time.Since(start))
		if cause := context.Cause(ctx); errors.Is(cause, ErrSuperseded) {
			c.logger.Debug("request superseded", "method", method, "path", path, "requestId", requestID)
			return nil, nil, fmt.Errorf("%s %s: %w", method, path, cause)
		}
		c.logger.Warn("request failed", "method", method, "path", path, "requestId", requestID, "err", err)
		return nil, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.Record(resp.StatusCode, time.Since(start))
	if err != nil {
		if cause := context.Cause(ctx); errors.Is(cause, ErrSuperseded) {
			return nil, nil, fmt.Errorf("%s %s: %w", method, path, cause)
		}
		c.logger.Warn("read response failed", "method", method, "path", path, "requestId", requestID, "err", err)
		return nil, nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       data,
			Message:    serverMessage(data),
		}
		c.logger.Warn("request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"requestId", requestID,
			"message", apiErr.Message,
		)
		return resp, data, apiErr
	}

	c.logger.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode, "requestId", requestID, "durationMs", time.Since(start).Milliseconds())
	return resp, data, nil
}

func (c *Client) decode(method, path string, data []byte, out any) error {
	if out == nil {
		return nil
	}
	target := fmt.Sprintf("%T", out)
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &DecodeError{Method: method, Path: path, Target: target, Body: data, Err: err}
		}
	}
	if err := c.validateValue(reflect.ValueOf(out)); err != nil {
		c.logger.Warn("response failed validation", "method", method, "path", path, "target", target, "err", err)
		return &DecodeError{Method: method, Path: path, Target: target, Body: data, Err: err}
	}
	return nil
}

func (c *Client) validateValue(v reflect.Value) error {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return c.validate.Struct(v.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := c.validateValue(v.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
