package metrics

import (
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(401, 20*time.Millisecond)
	c.Record(429, 30*time.Millisecond)
	c.Record(502, 40*time.Millisecond)
	c.Record(0, 0)

	snap := c.Snapshot()
	want := map[string]uint64{
		"requestsTotal":        5,
		"transportErrorsTotal": 1,
		"clientErrorsTotal":    2,
		"serverErrorsTotal":    1,
		"unauthorizedTotal":    1,
		"rateLimitedTotal":     1,
		"totalDurationMs":      100,
	}
	for key, value := range want {
		if snap[key].(uint64) != value {
			t.Fatalf("%s: expected %d, got %v", key, value, snap[key])
		}
	}
	if snap["avgDurationMs"].(float64) != 20 {
		t.Fatalf("unexpected average: %v", snap["avgDurationMs"])
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.Record(200, time.Second)
	if len(c.Snapshot()) != 0 {
		t.Fatal("expected empty snapshot for nil collector")
	}
}
