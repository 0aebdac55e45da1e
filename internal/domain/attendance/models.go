package attendance

import "hrmportal/internal/domain/core"

type Record struct {
	ID          string           `json:"id" validate:"required"`
	Employee    core.EmployeeRef `json:"employee"`
	Date        string           `json:"date"`
	ClockIn     string           `json:"clockIn,omitempty"`
	ClockOut    string           `json:"clockOut,omitempty"`
	Status      string           `json:"status,omitempty"`
	WorkedHours float64          `json:"workedHours,omitempty"`
}

type ListOptions struct {
	Page   int
	Limit  int
	Status string
	// Date is YYYY-MM-DD.
	Date string
}

// Regularization asks a reviewer to correct a recorded clock-in or
// clock-out time.
type Regularization struct {
	ID            string           `json:"id" validate:"required"`
	Employee      core.EmployeeRef `json:"employee"`
	Date          string           `json:"date"`
	Field         string           `json:"field"`
	RequestedTime string           `json:"requestedTime"`
	Reason        string           `json:"reason,omitempty"`
	Status        string           `json:"status"`
	ReviewComment string           `json:"reviewComment,omitempty"`
}

type RegularizationListOptions struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}

type RegularizationInput struct {
	Date          string `json:"date"`
	Field         string `json:"field"`
	RequestedTime string `json:"requestedTime"`
	Reason        string `json:"reason"`
}

type StatusUpdate struct {
	Status        string `json:"status"`
	ReviewComment string `json:"reviewComment"`
}
