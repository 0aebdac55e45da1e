package shared

import (
	"net/http"

	"hrmportal/internal/transport/http/httpclient"
)

// ParsePagination reads page and limit, capping limit at maxLimit.
func ParsePagination(r *http.Request, v *Validator, maxLimit int) httpclient.PageOptions {
	q := r.URL.Query()
	return httpclient.PageOptions{
		Page:  v.IntRange("page", q.Get("page"), 1, 1<<20),
		Limit: v.IntRange("limit", q.Get("limit"), 1, maxLimit),
	}
}
