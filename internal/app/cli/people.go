package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"hrmportal/internal/domain/attendance"
	"hrmportal/internal/domain/core"
	"hrmportal/internal/domain/reports"
)

func (a *App) runSummary(ctx context.Context, args []string) error {
	if err := parse(a.flagSet("summary"), args); err != nil {
		return err
	}
	summary, err := a.API.Reports.HRSummary(ctx)
	if err != nil {
		return err
	}
	return a.print(summary)
}

func (a *App) runEmployees(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "get", "report")
	if err != nil {
		return err
	}
	switch verb {
	case "get":
		fs := a.flagSet("employees get")
		if err := parse(fs, rest); err != nil {
			return err
		}
		pos, err := positional(fs, 1, "EMPLOYEE_ID")
		if err != nil {
			return err
		}
		employee, err := a.API.Core.GetEmployee(ctx, pos[0])
		if err != nil {
			return err
		}
		return a.print(employee)

	case "report":
		fs := a.flagSet("employees report")
		status := fs.String("status", "", "employee status filter")
		download := fs.Bool("download", false, "save the backend's export file")
		render := fs.String("render", "", "render locally as pdf or xlsx")
		if err := parse(fs, rest); err != nil {
			return err
		}
		if *download {
			file, err := a.API.Core.DownloadEmployeeReport(ctx, *status)
			if err != nil {
				return err
			}
			return a.save(ctx, "reports", file.Filename("employees"), file.Body, file.ContentType())
		}
		report, err := a.API.Core.EmployeeReport(ctx, *status)
		if err != nil {
			return err
		}
		if *render != "" {
			return a.renderTable(ctx, *render, "employees", "Employees", reports.EmployeeTable(report.Employees, "Status: "+orAll(*status)))
		}
		return a.print(report)

	default:
		fs := a.flagSet("employees list")
		opts := core.EmployeeListOptions{}
		var ids stringList
		fs.IntVar(&opts.Page, "page", 0, "page number")
		fs.IntVar(&opts.Limit, "limit", 0, "page size")
		fs.StringVar(&opts.Status, "status", "", "status filter")
		fs.StringVar(&opts.Designation, "designation", "", "designation filter")
		fs.StringVar(&opts.Search, "search", "", "free-text search")
		fs.Var(&ids, "id", "employee id (repeatable)")
		if err := parse(fs, rest); err != nil {
			return err
		}
		opts.EmployeeIDs = ids
		page, err := a.API.Core.ListEmployees(ctx, opts)
		if err != nil {
			return err
		}
		return a.print(page)
	}
}

func (a *App) runOrganizations(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "get", "create", "delete")
	if err != nil {
		return err
	}
	fs := a.flagSet("organizations " + verb)
	var in core.OrganizationInput
	if verb == "create" {
		fs.StringVar(&in.Name, "name", "", "organization name")
		fs.StringVar(&in.ContactEmail, "email", "", "contact email")
		fs.StringVar(&in.ContactPhone, "phone", "", "contact phone")
		fs.StringVar(&in.Timezone, "timezone", "", "IANA timezone")
	}
	if err := parse(fs, rest); err != nil {
		return err
	}

	switch verb {
	case "get", "delete":
		pos, err := positional(fs, 1, "ORGANIZATION_ID")
		if err != nil {
			return err
		}
		if verb == "delete" {
			msg, err := a.API.Core.DeleteOrganization(ctx, pos[0])
			if err != nil {
				return err
			}
			return a.print(msg)
		}
		org, err := a.API.Core.GetOrganization(ctx, pos[0])
		if err != nil {
			return err
		}
		return a.print(org)
	case "create":
		org, err := a.API.Core.CreateOrganization(ctx, in)
		if err != nil {
			return err
		}
		return a.print(org)
	default:
		orgs, err := a.API.Core.ListOrganizations(ctx)
		if err != nil {
			return err
		}
		return a.print(orgs)
	}
}

func (a *App) runAttendance(ctx context.Context, args []string) error {
	fs := a.flagSet("attendance")
	var opts attendance.ListOptions
	fs.IntVar(&opts.Page, "page", 0, "page number")
	fs.IntVar(&opts.Limit, "limit", 0, "page size")
	fs.StringVar(&opts.Status, "status", "", "attendance status")
	fs.StringVar(&opts.Date, "date", "", "day as YYYY-MM-DD")
	if err := parse(fs, args); err != nil {
		return err
	}
	page, err := a.API.Attendance.List(ctx, opts)
	if err != nil {
		return err
	}
	return a.print(page)
}

func (a *App) runRegularizations(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "create", "approve", "reject")
	if err != nil {
		return err
	}
	fs := a.flagSet("regularizations " + verb)
	switch verb {
	case "create":
		var in attendance.RegularizationInput
		fs.StringVar(&in.Date, "date", "", "day as YYYY-MM-DD")
		fs.StringVar(&in.Field, "field", attendance.FieldClockIn, "clockIn or clockOut")
		fs.StringVar(&in.RequestedTime, "time", "", "requested time")
		fs.StringVar(&in.Reason, "reason", "", "reason")
		if err := parse(fs, rest); err != nil {
			return err
		}
		reg, err := a.API.Attendance.CreateRegularization(ctx, in)
		if err != nil {
			return err
		}
		return a.print(reg)

	case "approve", "reject":
		comment := fs.String("comment", "", "review comment")
		if err := parse(fs, rest); err != nil {
			return err
		}
		pos, err := positional(fs, 1, "REGULARIZATION_ID")
		if err != nil {
			return err
		}
		status := attendance.StatusApproved
		if verb == "reject" {
			status = attendance.StatusRejected
		}
		reg, err := a.API.Attendance.UpdateRegularizationStatus(ctx, pos[0], status, *comment)
		if err != nil {
			return err
		}
		return a.print(reg)

	default:
		var opts attendance.RegularizationListOptions
		fs.StringVar(&opts.EmployeeID, "employee", "", "employee id")
		fs.StringVar(&opts.Status, "status", "", "pending, approved or rejected")
		fs.IntVar(&opts.Page, "page", 0, "page number")
		fs.IntVar(&opts.Limit, "limit", 0, "page size")
		if err := parse(fs, rest); err != nil {
			return err
		}
		page, err := a.API.Attendance.ListRegularizations(ctx, opts)
		if err != nil {
			return err
		}
		return a.print(page)
	}
}

func (a *App) runHoliday(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "get", "save")
	if err != nil {
		return err
	}
	fs := a.flagSet("holiday " + verb)
	if err := parse(fs, rest); err != nil {
		return err
	}
	if verb == "save" {
		pos, err := positional(fs, 2, "ORGANIZATION_ID", "CALENDAR_FILE_NAME")
		if err != nil {
			return err
		}
		calendar, err := a.API.Holiday.Save(ctx, pos[0], pos[1])
		if err != nil {
			return err
		}
		return a.print(calendar)
	}
	pos, err := positional(fs, 1, "ORGANIZATION_ID")
	if err != nil {
		return err
	}
	calendar, err := a.API.Holiday.Get(ctx, pos[0])
	if err != nil {
		return err
	}
	return a.print(calendar)
}

func (a *App) runUpload(ctx context.Context, args []string) error {
	fs := a.flagSet("upload")
	if err := parse(fs, args); err != nil {
		return err
	}
	pos, err := positional(fs, 1, "FILE")
	if err != nil {
		return err
	}
	f, err := os.Open(pos[0])
	if err != nil {
		return err
	}
	defer f.Close()
	result, err := a.API.Files.Upload(ctx, pos[0], f)
	if err != nil {
		return err
	}
	return a.print(result)
}

// renderTable renders t locally and saves it under reports/.
func (a *App) renderTable(ctx context.Context, format, name, sheet string, t reports.Table) error {
	var (
		buf         bytes.Buffer
		err         error
		contentType string
	)
	switch format {
	case "pdf":
		contentType = reports.ContentTypePDF
		err = reports.RenderPDF(&buf, t)
	case "xlsx":
		contentType = reports.ContentTypeXLSX
		err = reports.RenderXLSX(&buf, sheet, t)
	default:
		return fmt.Errorf("%w: -render must be pdf or xlsx", ErrUsage)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	filename := fmt.Sprintf("%s-%s.%s", name, a.now().UTC().Format("20060102"), format)
	return a.save(ctx, "reports", filename, buf.Bytes(), contentType)
}

func orAll(v string) string {
	if v == "" {
		return "all"
	}
	return v
}
