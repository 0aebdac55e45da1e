package leave

import (
	"context"
	"fmt"
	"strings"

	"hrmportal/internal/transport/http/httpclient"
)

func (s *Service) ListRequests(ctx context.Context, opts ListOptions) (httpclient.Page[Request], error) {
	var q httpclient.Query
	q.Int("page", opts.Page)
	q.Int("limit", opts.Limit)
	q.Set("status", opts.Status)
	q.Strings("employeeId", opts.EmployeeIDs)

	var out httpclient.Page[Request]
	if err := s.Client.Get(ctx, "/leaves", q, &out); err != nil {
		return httpclient.Page[Request]{}, fmt.Errorf("list leave requests: %w", err)
	}
	return out, nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (Request, error) {
	if strings.TrimSpace(id) == "" {
		return Request{}, ErrRequestIDRequired
	}
	var out Request
	if err := s.Client.Get(ctx, "/leaves/"+httpclient.PathSegment(id), httpclient.Query{}, &out); err != nil {
		return Request{}, fmt.Errorf("get leave request %s: %w", id, err)
	}
	return out, nil
}

// Apply submits a leave request with days computed from its date range.
func (s *Service) Apply(ctx context.Context, app Application) (Request, error) {
	if strings.TrimSpace(app.LeaveTypeID) == "" {
		return Request{}, ErrLeaveTypeIDRequired
	}
	days, err := ApplicationDays(app)
	if err != nil {
		return Request{}, err
	}
	body := applicationBody{
		LeaveType: app.LeaveTypeID,
		StartDate: app.StartDate,
		EndDate:   app.EndDate,
		Reason:    app.Reason,
		Days:      days,
	}
	var out Request
	if err := s.Client.Post(ctx, "/leaves", body, &out); err != nil {
		return Request{}, fmt.Errorf("apply for leave: %w", err)
	}
	return out, nil
}

// UpdateStatus approves or rejects a request. An empty remark is omitted.
func (s *Service) UpdateStatus(ctx context.Context, id, status, remark string) (Request, error) {
	if strings.TrimSpace(id) == "" {
		return Request{}, ErrRequestIDRequired
	}
	if strings.TrimSpace(status) == "" {
		return Request{}, ErrStatusRequired
	}
	var out Request
	path := "/leaves/" + httpclient.PathSegment(id) + "/status"
	if err := s.Client.Put(ctx, path, httpclient.Query{}, StatusUpdate{Status: status, Remark: remark}, &out); err != nil {
		return Request{}, fmt.Errorf("update leave request %s: %w", id, err)
	}
	return out, nil
}

func (s *Service) BalanceHistory(ctx context.Context, employeeID, leaveTypeID string) (BalanceHistory, error) {
	if strings.TrimSpace(employeeID) == "" {
		return BalanceHistory{}, ErrEmployeeIDRequired
	}
	if strings.TrimSpace(leaveTypeID) == "" {
		return BalanceHistory{}, ErrLeaveTypeIDRequired
	}
	path := "/leaves/balance-history/" + httpclient.PathSegment(employeeID) + "/" + httpclient.PathSegment(leaveTypeID)
	var out BalanceHistory
	if err := s.Client.Get(ctx, path, httpclient.Query{}, &out); err != nil {
		return BalanceHistory{}, fmt.Errorf("leave balance history: %w", err)
	}
	return out, nil
}
