// Package shared holds request parsing helpers for the portal's own
// endpoints.
package shared

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"hrmportal/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{Field: field, Reason: reason})
}

// Enum returns the lower-cased value when it is one of allowed, or "" when
// raw is empty.
func (v *Validator) Enum(field, raw string, allowed []string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return ""
	}
	for _, candidate := range allowed {
		if normalized == strings.ToLower(candidate) {
			return normalized
		}
	}
	v.Add(field, "must be one of "+strings.Join(allowed, ", "))
	return ""
}

// IntRange parses an optional integer within [minValue, maxValue]. Empty
// input yields 0.
func (v *Validator) IntRange(field, raw string, minValue, maxValue int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < minValue || n > maxValue {
		v.Add(field, "must be a number between "+strconv.Itoa(minValue)+" and "+strconv.Itoa(maxValue))
		return 0
	}
	return n
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "query validation failed", map[string]any{"fields": v.Issues()}, requestID)
	return true
}
