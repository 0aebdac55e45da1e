package core

import (
	"context"
	"fmt"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

type Service struct {
	Client *httpclient.Client
}

func NewService(client *httpclient.Client) *Service {
	return &Service{Client: client}
}

func (s *Service) ListEmployees(ctx context.Context, opts EmployeeListOptions) (httpclient.Page[Employee], error) {
	var q httpclient.Query
	q.Int("page", opts.Page)
	q.Int("limit", opts.Limit)
	q.Set("status", opts.Status)
	q.Set("designation", opts.Designation)
	q.Search("search", opts.Search)
	q.Strings("employeeId", opts.EmployeeIDs)

	var out httpclient.Page[Employee]
	if err := s.Client.Get(ctx, "/employees", q, &out); err != nil {
		return httpclient.Page[Employee]{}, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

func (s *Service) GetEmployee(ctx context.Context, id string) (Employee, error) {
	if strings.TrimSpace(id) == "" {
		return Employee{}, ErrEmployeeIDRequired
	}
	var out Employee
	if err := s.Client.Get(ctx, "/employees/"+httpclient.PathSegment(id), httpclient.Query{}, &out); err != nil {
		return Employee{}, fmt.Errorf("get employee %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) EmployeeReport(ctx context.Context, status string) (EmployeeReport, error) {
	var q httpclient.Query
	q.Set("status", status)

	var out EmployeeReport
	if err := s.Client.Get(ctx, "/reports/active-employees-report", q, &out); err != nil {
		return EmployeeReport{}, fmt.Errorf("employee report: %w", err)
	}
	return out, nil
}

// DownloadEmployeeReport returns the backend-rendered report file.
func (s *Service) DownloadEmployeeReport(ctx context.Context, status string) (*httpclient.Download, error) {
	var q httpclient.Query
	q.Set("status", status)

	out, err := s.Client.Download(ctx, "/reports/active-employees-report/download", q)
	if err != nil {
		return nil, fmt.Errorf("download employee report: %w", err)
	}
	return out, nil
}
