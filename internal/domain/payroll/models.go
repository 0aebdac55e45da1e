package payroll

import (
	"bytes"
	"encoding/json"

	"hrmportal/internal/domain/core"
)

// Item is one employee's payroll for a month, keyed by employee, month and
// year.
type Item struct {
	ID              string           `json:"id" validate:"required"`
	Employee        core.EmployeeRef `json:"employee"`
	OrganizationID  string           `json:"organizationId,omitempty"`
	Month           int              `json:"month" validate:"omitempty,min=1,max=12"`
	Year            int              `json:"year"`
	Earnings        Breakdown        `json:"earnings,omitempty"`
	Deductions      Breakdown        `json:"deductions,omitempty"`
	NetPayable      float64          `json:"netPayable"`
	Status          string           `json:"status,omitempty"`
	TotalWorkedDays float64          `json:"totalWorkedDays,omitempty"`
}

type ListOptions struct {
	Page  int
	Limit int
	Month int
	Year  int
}

type createBody struct {
	EmployeeID string `json:"employeeId"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

// ItemUpdate is the editable part of a payroll item.
type ItemUpdate struct {
	Earnings        Breakdown `json:"earnings,omitempty"`
	Deductions      Breakdown `json:"deductions,omitempty"`
	NetPayable      *float64  `json:"netPayable,omitempty"`
	Status          string    `json:"status,omitempty"`
	TotalWorkedDays *float64  `json:"totalWorkedDays,omitempty"`
}

// Items decodes either a list of payroll items or a single one.
type Items []Item

func (it *Items) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var one Item
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*it = Items{one}
		return nil
	}
	var many []Item
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*it = many
	return nil
}

type ReportFilters struct {
	Page        int
	Limit       int
	Month       int
	Year        int
	Status      string
	Designation string
	Search      string
	EmployeeIDs []string
	// Format selects the download format (pdf, xlsx, csv).
	Format string
}

type ReportRow struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId,omitempty"`
	EmployeeName string    `json:"employeeName,omitempty"`
	EmployeeCode string    `json:"employeeCode,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	Earnings     Breakdown `json:"earnings,omitempty"`
	Deductions   Breakdown `json:"deductions,omitempty"`
	NetPayable   float64   `json:"netPayable"`
	Status       string    `json:"status,omitempty"`
}

type Report struct {
	Data       []ReportRow `json:"data" validate:"dive"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
	Summary    *Summary    `json:"summary,omitempty"`
}

// SalaryStructure is the basis the backend generates payroll from.
type SalaryStructure struct {
	ID             string           `json:"id" validate:"required"`
	Employee       core.EmployeeRef `json:"employee"`
	OrganizationID string           `json:"organizationId,omitempty"`
	Basic          float64          `json:"basic"`
	HRA            float64          `json:"hra"`
	Allowances     Breakdown        `json:"allowances,omitempty"`
	Gross          float64          `json:"gross"`
	CTC            float64          `json:"ctc"`
	Deductions     Breakdown        `json:"deductions,omitempty"`
	EffectiveFrom  string           `json:"effectiveFrom,omitempty"`
}

type SalaryStructureInput struct {
	EmployeeID     string    `json:"employeeId"`
	OrganizationID string    `json:"organizationId,omitempty"`
	Basic          float64   `json:"basic"`
	HRA            float64   `json:"hra"`
	Allowances     Breakdown `json:"allowances,omitempty"`
	Gross          float64   `json:"gross,omitempty"`
	CTC            float64   `json:"ctc,omitempty"`
	Deductions     Breakdown `json:"deductions,omitempty"`
	EffectiveFrom  string    `json:"effectiveFrom,omitempty"`
}
