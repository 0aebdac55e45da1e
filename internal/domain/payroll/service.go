package payroll

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

type Service struct {
	Client *httpclient.Client
}

func NewService(client *httpclient.Client) *Service {
	return &Service{Client: client}
}

func (s *Service) List(ctx context.Context, opts ListOptions) (httpclient.Page[Item], error) {
	var q httpclient.Query
	q.Int("page", opts.Page)
	q.Int("limit", opts.Limit)
	q.Int("month", opts.Month)
	q.Int("year", opts.Year)

	var out httpclient.Page[Item]
	if err := s.Client.Get(ctx, "/payroll", q, &out); err != nil {
		return httpclient.Page[Item]{}, fmt.Errorf("list payroll: %w", err)
	}
	return out, nil
}

// Create asks the backend to generate payroll for one employee and month.
func (s *Service) Create(ctx context.Context, employeeID string, month, year int) (Item, error) {
	if err := checkKey(employeeID, month, year); err != nil {
		return Item{}, err
	}
	var out Item
	body := createBody{EmployeeID: employeeID, Month: month, Year: year}
	if err := s.Client.Post(ctx, "/payroll", body, &out); err != nil {
		return Item{}, fmt.Errorf("create payroll: %w", err)
	}
	return out, nil
}

// GetByEmployee returns the employee's payroll, narrowed to a month and year
// when they are non-zero.
func (s *Service) GetByEmployee(ctx context.Context, employeeID string, month, year int) (Items, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, ErrEmployeeIDRequired
	}
	var q httpclient.Query
	q.Int("month", month)
	q.Int("year", year)

	var out Items
	if err := s.Client.Get(ctx, "/payroll/"+httpclient.PathSegment(employeeID), q, &out); err != nil {
		return nil, fmt.Errorf("get payroll of %s: %w", employeeID, err)
	}
	return out, nil
}

func (s *Service) UpdateByID(ctx context.Context, id string, month, year int, in ItemUpdate) (Item, error) {
	if strings.TrimSpace(id) == "" {
		return Item{}, ErrPayrollIDRequired
	}
	var q httpclient.Query
	q.Int("month", month)
	q.Int("year", year)

	var out Item
	if err := s.Client.Put(ctx, "/payroll/updateById/"+httpclient.PathSegment(id), q, in, &out); err != nil {
		return Item{}, fmt.Errorf("update payroll %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) SendPayslip(ctx context.Context, employeeID string, month, year int) (httpclient.Message, error) {
	if err := checkKey(employeeID, month, year); err != nil {
		return httpclient.Message{}, err
	}
	var out httpclient.Message
	if err := s.Client.Post(ctx, "/payroll/send-payslip/"+periodPath(employeeID, month, year), nil, &out); err != nil {
		return httpclient.Message{}, fmt.Errorf("send payslip to %s for %d/%d: %w", employeeID, month, year, err)
	}
	return out, nil
}

func (s *Service) DownloadPayslip(ctx context.Context, employeeID string, month, year int) (*httpclient.Download, error) {
	if err := checkKey(employeeID, month, year); err != nil {
		return nil, err
	}
	out, err := s.Client.Download(ctx, "/payroll/download/"+periodPath(employeeID, month, year), httpclient.Query{})
	if err != nil {
		return nil, fmt.Errorf("download payslip of %s for %d/%d: %w", employeeID, month, year, err)
	}
	return out, nil
}

func (s *Service) Report(ctx context.Context, filters ReportFilters) (Report, error) {
	var out Report
	if err := s.Client.Get(ctx, "/reports/payroll", filters.query(), &out); err != nil {
		return Report{}, fmt.Errorf("payroll report: %w", err)
	}
	return out, nil
}

// DownloadReport returns the backend-rendered report in filters.Format.
func (s *Service) DownloadReport(ctx context.Context, filters ReportFilters) (*httpclient.Download, error) {
	out, err := s.Client.Download(ctx, "/reports/payroll/download", filters.query())
	if err != nil {
		return nil, fmt.Errorf("download payroll report: %w", err)
	}
	return out, nil
}

func (f ReportFilters) query() httpclient.Query {
	var q httpclient.Query
	q.Int("page", f.Page)
	q.Int("limit", f.Limit)
	q.Int("month", f.Month)
	q.Int("year", f.Year)
	q.Set("status", f.Status)
	q.Set("designation", f.Designation)
	q.Search("search", f.Search)
	q.Strings("employeeId", f.EmployeeIDs)
	q.Set("format", f.Format)
	return q
}

func checkKey(employeeID string, month, year int) error {
	if strings.TrimSpace(employeeID) == "" {
		return ErrEmployeeIDRequired
	}
	if month < 1 || month > 12 || year <= 0 {
		return ErrInvalidPeriod
	}
	return nil
}

func periodPath(employeeID string, month, year int) string {
	return httpclient.PathSegment(employeeID) + "/" + strconv.Itoa(month) + "/" + strconv.Itoa(year)
}
