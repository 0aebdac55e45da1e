package core

// Values the backend uses today. They are not enforced here.
const (
	EmployeeStatusActive     = "active"
	EmployeeStatusInactive   = "inactive"
	EmployeeStatusTerminated = "terminated"

	OrganizationStatusActive   = "active"
	OrganizationStatusInactive = "inactive"
)
