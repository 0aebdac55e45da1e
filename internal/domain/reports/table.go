// Package reports turns data-access results into exportable tables and
// renders them as PDF or XLSX.
package reports

import (
	"fmt"
	"strconv"
	"time"

	"hrmportal/internal/domain/core"
	"hrmportal/internal/domain/payroll"
)

// Table is a rendered-agnostic report. Cells hold strings, ints or float64
// amounts.
type Table struct {
	Title    string
	Subtitle string
	Columns  []string
	Rows     [][]any
	Footer   []any
}

func PayrollTable(report payroll.Report, subtitle string) Table {
	t := Table{
		Title:    "Payroll report",
		Subtitle: subtitle,
		Columns:  []string{"Employee", "Code", "Designation", "Period", "Gross", "Deductions", "Net payable", "Status"},
	}
	for _, row := range report.Data {
		gross, deducted, _ := payroll.ComputeTotals(row.Earnings, row.Deductions)
		t.Rows = append(t.Rows, []any{
			row.EmployeeName,
			row.EmployeeCode,
			row.Designation,
			period(row.Month, row.Year),
			gross,
			deducted,
			row.NetPayable,
			row.Status,
		})
	}

	summary := payroll.Summarize(report.Data)
	if report.Summary != nil {
		summary = *report.Summary
	}
	t.Footer = []any{fmt.Sprintf("%d employees", summary.Count), "", "", "", summary.Gross, summary.Deductions, summary.NetPayable, ""}
	return t
}

func EmployeeTable(employees []core.Employee, subtitle string) Table {
	t := Table{
		Title:    "Employee report",
		Subtitle: subtitle,
		Columns:  []string{"Code", "Name", "Designation", "Department", "Email", "Status", "Joined"},
	}
	for _, e := range employees {
		t.Rows = append(t.Rows, []any{e.EmployeeCode, e.DisplayName(), e.Designation, e.Department, e.Email, e.Status, e.DateOfJoining})
	}
	t.Footer = []any{strconv.Itoa(len(employees)) + " employees"}
	return t
}

func period(month, year int) string {
	if month < 1 || month > 12 || year == 0 {
		return ""
	}
	return time.Month(month).String()[:3] + " " + strconv.Itoa(year)
}

func cellText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', 2, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprint(value)
	}
}
