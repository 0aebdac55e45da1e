package reports

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"hrmportal/internal/domain/attendance"
	"hrmportal/internal/domain/core"
	"hrmportal/internal/domain/leave"
	"hrmportal/internal/domain/payroll"
	"hrmportal/internal/transport/http/httpclient"
	"hrmportal/internal/transport/http/httpclient/httpclienttest"
)

func sampleReport() payroll.Report {
	return payroll.Report{
		Data: []payroll.ReportRow{
			{
				EmployeeName: "Jane Doe",
				EmployeeCode: "EMP-1",
				Month:        12,
				Year:         2024,
				Earnings:     payroll.Breakdown{"basic": 1000, "hra": 200},
				Deductions:   payroll.Breakdown{"pf": 100},
				NetPayable:   1100,
				Status:       "paid",
			},
			{
				EmployeeName: "Zoë Ärger",
				Month:        12,
				Year:         2024,
				Earnings:     payroll.Breakdown{"basic": 500},
				NetPayable:   500,
			},
		},
		Total: 2,
	}
}

func TestPayrollTable(t *testing.T) {
	table := PayrollTable(sampleReport(), "December 2024")
	if len(table.Rows) != 2 || len(table.Columns) != 8 {
		t.Fatalf("unexpected table shape %+v", table)
	}
	if table.Rows[0][3] != "Dec 2024" || table.Rows[0][4] != 1200.0 || table.Rows[0][5] != 100.0 {
		t.Fatalf("unexpected first row %v", table.Rows[0])
	}
	if table.Footer[0] != "2 employees" || table.Footer[4] != 1700.0 || table.Footer[6] != 1600.0 {
		t.Fatalf("unexpected footer %v", table.Footer)
	}

	withSummary := sampleReport()
	withSummary.Summary = &payroll.Summary{Count: 40, NetPayable: 99}
	if footer := PayrollTable(withSummary, "").Footer; footer[0] != "40 employees" || footer[6] != 99.0 {
		t.Fatalf("backend summary should win, got %v", footer)
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPDF(&buf, PayrollTable(sampleReport(), "December 2024")); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:8])
	}
}

func TestRenderXLSX(t *testing.T) {
	var buf bytes.Buffer
	table := EmployeeTable([]core.Employee{
		{ID: "e1", EmployeeCode: "EMP-1", FirstName: "Jane", LastName: "Doe", Status: "active"},
		{ID: "e2", EmployeeCode: "EMP-2", Name: "Raj Patel", Status: "active"},
	}, "")
	if err := RenderXLSX(&buf, "Employees", table); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Employees")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header, 2 rows and footer, got %d", len(rows))
	}
	if rows[0][0] != "Code" || rows[1][1] != "Jane Doe" || rows[2][1] != "Raj Patel" || rows[3][0] != "2 employees" {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestHRSummary(t *testing.T) {
	total := func(n int) map[string]any { return map[string]any{"data": []any{}, "total": n} }
	client := httpclienttest.NewClient(t, func(r chi.Router) {
		r.Get("/employees", func(w http.ResponseWriter, r *http.Request) {
			httpclienttest.WriteJSON(w, http.StatusOK, total(42))
		})
		r.Get("/leaves", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("status") != "pending" {
				t.Errorf("unexpected leave query %q", r.URL.RawQuery)
			}
			httpclienttest.WriteJSON(w, http.StatusOK, total(3))
		})
		r.Get("/regularizations/attendance", func(w http.ResponseWriter, r *http.Request) {
			httpclienttest.WriteJSON(w, http.StatusOK, total(5))
		})
	})
	svc := NewService(core.NewService(client), leave.NewService(client), attendance.NewService(client))

	summary, err := svc.HRSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.ActiveEmployees != 42 || summary.PendingLeaves != 3 || summary.PendingRegularizations != 5 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.GeneratedAt.IsZero() {
		t.Fatal("expected generation time")
	}
}

func TestHRSummaryFailsWhenAnyCallFails(t *testing.T) {
	client := httpclienttest.NewClient(t, func(r chi.Router) {
		r.Get("/employees", func(w http.ResponseWriter, r *http.Request) {
			httpclienttest.WriteJSON(w, http.StatusOK, map[string]any{"data": []any{}, "total": 1})
		})
		r.Get("/leaves", func(w http.ResponseWriter, r *http.Request) {
			httpclienttest.WriteJSON(w, http.StatusForbidden, map[string]string{"message": "HR only"})
		})
		r.Get("/regularizations/attendance", func(w http.ResponseWriter, r *http.Request) {
			httpclienttest.WriteJSON(w, http.StatusOK, map[string]any{"data": []any{}, "total": 1})
		})
	})
	svc := NewService(core.NewService(client), leave.NewService(client), attendance.NewService(client))

	if _, err := svc.HRSummary(context.Background()); !errors.Is(err, httpclient.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
