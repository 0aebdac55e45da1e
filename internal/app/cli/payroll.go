package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"hrmportal/internal/domain/core"
	"hrmportal/internal/domain/payroll"
	"hrmportal/internal/domain/reports"
	"hrmportal/internal/platform/jobs"
	"hrmportal/internal/transport/http/httpclient"
)

func (a *App) runPayroll(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "create", "get", "report", "export", "payslip", "send-payslips", "salary")
	if err != nil {
		return err
	}
	fs := a.flagSet("payroll " + verb)
	month, year := a.periodFlags(fs)

	switch verb {
	case "create", "get", "payslip":
		if err := parse(fs, rest); err != nil {
			return err
		}
		pos, err := positional(fs, 1, "EMPLOYEE_ID")
		if err != nil {
			return err
		}
		switch verb {
		case "create":
			item, err := a.API.Payroll.Create(ctx, pos[0], *month, *year)
			if err != nil {
				return err
			}
			return a.print(item)
		case "get":
			items, err := a.API.Payroll.GetByEmployee(ctx, pos[0], *month, *year)
			if err != nil {
				return err
			}
			return a.print(items)
		}
		file, err := a.API.Payroll.DownloadPayslip(ctx, pos[0], *month, *year)
		if err != nil {
			return err
		}
		name := file.Filename(fmt.Sprintf("payslip-%s-%02d-%d", pos[0], *month, *year))
		return a.save(ctx, "payslips", name, file.Body, file.ContentType())

	case "report", "export":
		filters := payroll.ReportFilters{}
		var ids stringList
		fs.IntVar(&filters.Page, "page", 0, "page number")
		fs.IntVar(&filters.Limit, "limit", 0, "page size")
		fs.StringVar(&filters.Status, "status", "", "draft, processed or paid")
		fs.StringVar(&filters.Designation, "designation", "", "designation filter")
		fs.StringVar(&filters.Search, "search", "", "free-text search")
		fs.Var(&ids, "employee", "employee id (repeatable)")
		format := fs.String("format", "", "backend export format: pdf, xlsx or csv")
		render := fs.String("render", "", "render locally as pdf or xlsx")
		if err := parse(fs, rest); err != nil {
			return err
		}
		filters.Month, filters.Year = *month, *year
		filters.EmployeeIDs = ids

		if verb == "export" && *render == "" {
			filters.Format = *format
			if filters.Format == "" {
				filters.Format = payroll.FormatXLSX
			}
			file, err := a.API.Payroll.DownloadReport(ctx, filters)
			if err != nil {
				return err
			}
			return a.save(ctx, "reports", file.Filename("payroll-report"), file.Body, file.ContentType())
		}
		report, err := a.API.Payroll.Report(ctx, filters)
		if err != nil {
			return err
		}
		if *render != "" {
			subtitle := "All periods"
			if filters.Month > 0 && filters.Year > 0 {
				subtitle = time.Month(filters.Month).String() + " " + fmt.Sprint(filters.Year)
			}
			return a.renderTable(ctx, *render, "payroll-report", "Payroll", reports.PayrollTable(report, subtitle))
		}
		return a.print(report)

	case "send-payslips":
		if err := parse(fs, rest); err != nil {
			return err
		}
		return a.sendPayslips(ctx, fs.Args(), *month, *year)

	case "salary":
		return a.runSalary(ctx, rest)

	default:
		opts := payroll.ListOptions{}
		fs.IntVar(&opts.Page, "page", 0, "page number")
		fs.IntVar(&opts.Limit, "limit", 0, "page size")
		if err := parse(fs, rest); err != nil {
			return err
		}
		opts.Month, opts.Year = *month, *year
		page, err := a.API.Payroll.List(ctx, opts)
		if err != nil {
			return err
		}
		return a.print(page)
	}
}

// periodFlags registers -month and -year, defaulting to the current period.
func (a *App) periodFlags(fs *flag.FlagSet) (*int, *int) {
	now := a.now()
	month := fs.Int("month", int(now.Month()), "month, 1-12")
	year := fs.Int("year", now.Year(), "year")
	return month, year
}

type sendResult struct {
	EmployeeID string `json:"employeeId"`
	Sent       bool   `json:"sent"`
	Error      string `json:"error,omitempty"`
}

// sendPayslips mails payslips for ids, or for every active employee when
// ids is empty. One failure does not stop the others.
func (a *App) sendPayslips(ctx context.Context, ids []string, month, year int) error {
	if len(ids) == 0 {
		all, err := a.activeEmployeeIDs(ctx)
		if err != nil {
			return err
		}
		ids = all
	}

	results := jobs.RunBatch(ctx, "send_payslip", a.Config.BatchWorkers, ids, func(ctx context.Context, id string) error {
		_, err := a.API.Payroll.SendPayslip(ctx, id, month, year)
		return err
	})

	out := make([]sendResult, 0, len(results))
	for _, r := range results {
		res := sendResult{EmployeeID: r.Item, Sent: r.Err == nil}
		if r.Err != nil {
			res.Error = r.Err.Error()
		}
		out = append(out, res)
	}
	if err := a.print(out); err != nil {
		return err
	}
	if failed := jobs.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d payslips failed", failed, len(results))
	}
	return nil
}

func (a *App) activeEmployeeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	opts := core.EmployeeListOptions{Page: 1, Limit: 100, Status: core.EmployeeStatusActive}
	for {
		page, err := a.API.Core.ListEmployees(ctx, opts)
		if err != nil {
			return nil, err
		}
		for _, e := range page.Data {
			ids = append(ids, e.ID)
		}
		if !page.HasNext() || len(page.Data) == 0 {
			return ids, nil
		}
		opts.Page++
	}
}

func (a *App) runSalary(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "get", "delete")
	if err != nil {
		return err
	}
	fs := a.flagSet("payroll salary " + verb)
	var page httpclient.PageOptions
	if verb == "list" {
		fs.IntVar(&page.Page, "page", 0, "page number")
		fs.IntVar(&page.Limit, "limit", 0, "page size")
	}
	if err := parse(fs, rest); err != nil {
		return err
	}

	switch verb {
	case "get":
		pos, err := positional(fs, 1, "EMPLOYEE_ID")
		if err != nil {
			return err
		}
		structure, err := a.API.Payroll.GetSalaryStructure(ctx, pos[0])
		if err != nil {
			return err
		}
		return a.print(structure)
	case "delete":
		pos, err := positional(fs, 1, "STRUCTURE_ID")
		if err != nil {
			return err
		}
		msg, err := a.API.Payroll.DeleteSalaryStructure(ctx, pos[0])
		if err != nil {
			return err
		}
		return a.print(msg)
	default:
		structures, err := a.API.Payroll.ListSalaryStructures(ctx, page)
		if err != nil {
			return err
		}
		return a.print(structures)
	}
}
