package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts HTTP round trips. A status of 0 records a transport
// failure (no response was received).
type Collector struct {
	totalRequests   uint64
	transportErrors uint64
	clientErrors    uint64
	serverErrors    uint64
	unauthorized    uint64
	rateLimited     uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status == 0:
		atomic.AddUint64(&c.transportErrors, 1)
	case status >= 500:
		atomic.AddUint64(&c.serverErrors, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	if status == 401 || status == 403 {
		atomic.AddUint64(&c.unauthorized, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	if c == nil {
		return map[string]any{}
	}
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":        total,
		"transportErrorsTotal": atomic.LoadUint64(&c.transportErrors),
		"clientErrorsTotal":    atomic.LoadUint64(&c.clientErrors),
		"serverErrorsTotal":    atomic.LoadUint64(&c.serverErrors),
		"unauthorizedTotal":    atomic.LoadUint64(&c.unauthorized),
		"rateLimitedTotal":     atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":        avg,
		"totalDurationMs":      totalMs,
	}
}
