package attendance

import (
	"context"
	"fmt"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

const regularizationsPath = "/regularizations/attendance"

type Service struct {
	Client *httpclient.Client
}

func NewService(client *httpclient.Client) *Service {
	return &Service{Client: client}
}

func (s *Service) List(ctx context.Context, opts ListOptions) (httpclient.Page[Record], error) {
	var q httpclient.Query
	q.Int("page", opts.Page)
	q.Int("limit", opts.Limit)
	q.Set("status", opts.Status)
	q.Set("date", opts.Date)

	var out httpclient.Page[Record]
	if err := s.Client.Get(ctx, "/attendance", q, &out); err != nil {
		return httpclient.Page[Record]{}, fmt.Errorf("list attendance: %w", err)
	}
	return out, nil
}

func (s *Service) ListRegularizations(ctx context.Context, opts RegularizationListOptions) (httpclient.Page[Regularization], error) {
	var q httpclient.Query
	q.Set("employeeId", opts.EmployeeID)
	q.Set("status", opts.Status)
	q.Int("page", opts.Page)
	q.Int("limit", opts.Limit)

	var out httpclient.Page[Regularization]
	if err := s.Client.Get(ctx, regularizationsPath, q, &out); err != nil {
		return httpclient.Page[Regularization]{}, fmt.Errorf("list regularizations: %w", err)
	}
	return out, nil
}

// UpdateRegularizationStatus records a reviewer decision. The comment is
// mandatory and checked before anything is sent.
func (s *Service) UpdateRegularizationStatus(ctx context.Context, id, status, comment string) (Regularization, error) {
	switch {
	case strings.TrimSpace(id) == "":
		return Regularization{}, ErrRegularizationIDRequired
	case strings.TrimSpace(status) == "":
		return Regularization{}, ErrStatusRequired
	case strings.TrimSpace(comment) == "":
		return Regularization{}, ErrReviewCommentRequired
	}

	var out Regularization
	path := regularizationsPath + "/status-update/" + httpclient.PathSegment(id)
	if err := s.Client.Put(ctx, path, httpclient.Query{}, StatusUpdate{Status: status, ReviewComment: comment}, &out); err != nil {
		return Regularization{}, fmt.Errorf("update regularization %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) CreateRegularization(ctx context.Context, in RegularizationInput) (Regularization, error) {
	var out Regularization
	if err := s.Client.Post(ctx, regularizationsPath, in, &out); err != nil {
		return Regularization{}, fmt.Errorf("create regularization: %w", err)
	}
	return out, nil
}
