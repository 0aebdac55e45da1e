package httpclient

// Page is the envelope of every paginated list endpoint.
type Page[T any] struct {
	Data       []T `json:"data" validate:"dive"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// PageOptions are the pagination inputs shared by list endpoints. Page is
// 1-based; zero values are left out of the query.
type PageOptions struct {
	Page  int
	Limit int
}

func (p PageOptions) Apply(q *Query) {
	q.Int("page", p.Page)
	q.Int("limit", p.Limit)
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	if p.TotalPages > 0 {
		return p.Page < p.TotalPages
	}
	return p.Limit > 0 && p.Page*p.Limit < p.Total
}
