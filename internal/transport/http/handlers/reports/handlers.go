package reportshandler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrmportal/internal/app/hrmapi"
	"hrmportal/internal/domain/core"
	"hrmportal/internal/domain/payroll"
	"hrmportal/internal/domain/reports"
	"hrmportal/internal/transport/http/api"
	"hrmportal/internal/transport/http/middleware"
	"hrmportal/internal/transport/http/shared"
)

const maxExportRows = 1000

var exportFormats = []string{payroll.FormatPDF, payroll.FormatXLSX}

// Handler serves the portal's own report endpoints. Its API must forward the
// caller's token, so it is built over session.Context.
type Handler struct {
	API    *hrmapi.API
	Logger *slog.Logger
	Now    func() time.Time
}

func NewHandler(apiClient *hrmapi.API, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{API: apiClient, Logger: logger, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/hr", h.handleHRDashboard)
	r.Get("/exports/payroll-report", h.handlePayrollExport)
	r.Get("/exports/employees", h.handleEmployeeExport)
}

func (h *Handler) handleHRDashboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	summary, err := h.API.Reports.HRSummary(r.Context())
	if err != nil {
		h.Logger.Warn("hr summary failed", "requestId", reqID, "err", err)
		api.FailFromError(w, err, reqID)
		return
	}
	api.Success(w, summary, reqID)
}

func (h *Handler) handlePayrollExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()
	v := shared.NewValidator()
	format := v.Enum("format", q.Get("format"), exportFormats)
	page := shared.ParsePagination(r, v, maxExportRows)
	filters := payroll.ReportFilters{
		Page:        page.Page,
		Limit:       page.Limit,
		Month:       v.IntRange("month", q.Get("month"), 1, 12),
		Year:        v.IntRange("year", q.Get("year"), 1900, 9999),
		Status:      v.Enum("status", q.Get("status"), []string{payroll.StatusDraft, payroll.StatusProcessed, payroll.StatusPaid}),
		Designation: strings.TrimSpace(q.Get("designation")),
		Search:      strings.TrimSpace(q.Get("search")),
		EmployeeIDs: q["employeeId"],
	}
	if v.Reject(w, reqID) {
		return
	}

	report, err := h.API.Payroll.Report(r.Context(), filters)
	if err != nil {
		h.Logger.Warn("payroll report failed", "requestId", reqID, "err", err)
		api.FailFromError(w, err, reqID)
		return
	}
	subtitle := "Generated " + h.Now().UTC().Format("02 Jan 2006 15:04 MST")
	if filters.Month > 0 && filters.Year > 0 {
		subtitle = time.Month(filters.Month).String() + " " + strconv.Itoa(filters.Year) + " / " + subtitle
	}
	h.writeTable(w, r, format, "payroll-report", "Payroll", reports.PayrollTable(report, subtitle))
}

func (h *Handler) handleEmployeeExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()
	v := shared.NewValidator()
	format := v.Enum("format", q.Get("format"), exportFormats)
	status := v.Enum("status", q.Get("status"), []string{core.EmployeeStatusActive, core.EmployeeStatusInactive, core.EmployeeStatusTerminated})
	if v.Reject(w, reqID) {
		return
	}

	report, err := h.API.Core.EmployeeReport(r.Context(), status)
	if err != nil {
		h.Logger.Warn("employee report failed", "requestId", reqID, "err", err)
		api.FailFromError(w, err, reqID)
		return
	}
	subtitle := "Generated " + h.Now().UTC().Format("02 Jan 2006 15:04 MST")
	if status != "" {
		subtitle = strings.ToUpper(status[:1]) + status[1:] + " employees / " + subtitle
	}
	h.writeTable(w, r, format, "employees", "Employees", reports.EmployeeTable(report.Employees, subtitle))
}

// writeTable renders into memory first so a render failure can still be
// reported as JSON.
func (h *Handler) writeTable(w http.ResponseWriter, r *http.Request, format, name, sheet string, table reports.Table) {
	reqID := middleware.GetRequestID(r.Context())
	if format == "" {
		format = payroll.FormatPDF
	}

	var (
		buf         bytes.Buffer
		err         error
		contentType string
	)
	switch format {
	case payroll.FormatXLSX:
		contentType = reports.ContentTypeXLSX
		err = reports.RenderXLSX(&buf, sheet, table)
	default:
		contentType = reports.ContentTypePDF
		err = reports.RenderPDF(&buf, table)
	}
	if err != nil {
		h.Logger.Error("render export failed", "requestId", reqID, "format", format, "err", err)
		api.Fail(w, http.StatusInternalServerError, "render_failed", "could not render export", reqID)
		return
	}

	filename := fmt.Sprintf("%s-%s.%s", name, h.Now().UTC().Format("20060102"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Warn("write export failed", "requestId", reqID, "err", err)
	}
}
