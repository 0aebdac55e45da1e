package reports

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"hrmportal/internal/domain/attendance"
	"hrmportal/internal/domain/core"
	"hrmportal/internal/domain/leave"
)

// Summary is the HR to-do overview: counts only, fetched live.
type Summary struct {
	ActiveEmployees        int       `json:"activeEmployees"`
	PendingLeaves          int       `json:"pendingLeaves"`
	PendingRegularizations int       `json:"pendingRegularizations"`
	GeneratedAt            time.Time `json:"generatedAt"`
}

type Service struct {
	Employees  *core.Service
	Leave      *leave.Service
	Attendance *attendance.Service
}

func NewService(employees *core.Service, leaves *leave.Service, attendanceSvc *attendance.Service) *Service {
	return &Service{Employees: employees, Leave: leaves, Attendance: attendanceSvc}
}

// HRSummary reads the totals of three one-row list calls in parallel.
func (s *Service) HRSummary(ctx context.Context) (Summary, error) {
	var out Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := s.Employees.ListEmployees(ctx, core.EmployeeListOptions{Page: 1, Limit: 1, Status: core.EmployeeStatusActive})
		out.ActiveEmployees = page.Total
		return err
	})
	g.Go(func() error {
		page, err := s.Leave.ListRequests(ctx, leave.ListOptions{Page: 1, Limit: 1, Status: leave.StatusPending})
		out.PendingLeaves = page.Total
		return err
	})
	g.Go(func() error {
		page, err := s.Attendance.ListRegularizations(ctx, attendance.RegularizationListOptions{Status: attendance.StatusPending, Page: 1, Limit: 1})
		out.PendingRegularizations = page.Total
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	out.GeneratedAt = time.Now().UTC()
	return out, nil
}
