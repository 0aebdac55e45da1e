package cli

import (
	"context"

	"hrmportal/internal/domain/leave"
)

func (a *App) runLeaves(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "get", "apply", "approve", "reject", "days", "policies", "balance")
	if err != nil {
		return err
	}
	fs := a.flagSet("leaves " + verb)

	switch verb {
	case "apply":
		var app leave.Application
		fs.StringVar(&app.LeaveTypeID, "type", "", "leave type id")
		fs.StringVar(&app.StartDate, "start", "", "first day, YYYY-MM-DD")
		fs.StringVar(&app.EndDate, "end", "", "last day, YYYY-MM-DD")
		fs.StringVar(&app.Reason, "reason", "", "reason")
		if err := parse(fs, rest); err != nil {
			return err
		}
		req, err := a.API.Leave.Apply(ctx, app)
		if err != nil {
			return err
		}
		return a.print(req)

	case "approve", "reject":
		remark := fs.String("remark", "", "optional remark")
		if err := parse(fs, rest); err != nil {
			return err
		}
		pos, err := positional(fs, 1, "LEAVE_ID")
		if err != nil {
			return err
		}
		status := leave.StatusApproved
		if verb == "reject" {
			status = leave.StatusRejected
		}
		req, err := a.API.Leave.UpdateStatus(ctx, pos[0], status, *remark)
		if err != nil {
			return err
		}
		return a.print(req)

	case "days":
		if err := parse(fs, rest); err != nil {
			return err
		}
		pos, err := positional(fs, 2, "START", "END")
		if err != nil {
			return err
		}
		days, err := leave.ApplicationDays(leave.Application{StartDate: pos[0], EndDate: pos[1]})
		if err != nil {
			return err
		}
		return a.print(map[string]any{"startDate": pos[0], "endDate": pos[1], "days": days})

	case "get":
		if err := parse(fs, rest); err != nil {
			return err
		}
		pos, err := positional(fs, 1, "LEAVE_ID")
		if err != nil {
			return err
		}
		req, err := a.API.Leave.GetRequest(ctx, pos[0])
		if err != nil {
			return err
		}
		return a.print(req)

	case "policies":
		if err := parse(fs, rest); err != nil {
			return err
		}
		policies, err := a.API.Leave.ListPolicies(ctx)
		if err != nil {
			return err
		}
		return a.print(policies)

	case "balance":
		if err := parse(fs, rest); err != nil {
			return err
		}
		pos, err := positional(fs, 2, "EMPLOYEE_ID", "LEAVE_TYPE_ID")
		if err != nil {
			return err
		}
		history, err := a.API.Leave.BalanceHistory(ctx, pos[0], pos[1])
		if err != nil {
			return err
		}
		return a.print(history)

	default:
		var opts leave.ListOptions
		var ids stringList
		fs.IntVar(&opts.Page, "page", 0, "page number")
		fs.IntVar(&opts.Limit, "limit", 0, "page size")
		fs.StringVar(&opts.Status, "status", "", "pending, approved or rejected")
		fs.Var(&ids, "employee", "employee id (repeatable)")
		if err := parse(fs, rest); err != nil {
			return err
		}
		opts.EmployeeIDs = ids
		page, err := a.API.Leave.ListRequests(ctx, opts)
		if err != nil {
			return err
		}
		return a.print(page)
	}
}
