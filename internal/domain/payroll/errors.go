package payroll

import "errors"

var (
	ErrEmployeeIDRequired  = errors.New("employee id is required")
	ErrPayrollIDRequired   = errors.New("payroll id is required")
	ErrStructureIDRequired = errors.New("salary structure id is required")
	ErrInvalidPeriod       = errors.New("month must be 1-12 and year must be positive")
)
