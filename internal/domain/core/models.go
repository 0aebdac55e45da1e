package core

type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Dates are kept as the backend sends them (YYYY-MM-DD or RFC3339).
type Employee struct {
	ID             string   `json:"id" validate:"required"`
	OrganizationID string   `json:"organizationId,omitempty"`
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	Name           string   `json:"name,omitempty"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	EmployeeCode   string   `json:"employeeCode,omitempty"`
	Designation    string   `json:"designation,omitempty"`
	Department     string   `json:"department,omitempty"`
	Status         string   `json:"status,omitempty"`
	DateOfJoining  string   `json:"dateOfJoining,omitempty"`
	DateOfLeaving  string   `json:"dateOfLeaving,omitempty"`
	Address        *Address `json:"address,omitempty"`
}

type EmployeeListOptions struct {
	Page        int
	Limit       int
	Status      string
	Designation string
	Search      string
	EmployeeIDs []string
}

type EmployeeReport struct {
	Employees []Employee `json:"data" validate:"dive"`
	Total     int        `json:"total"`
	Status    string     `json:"status,omitempty"`
}

type ShiftDefaults struct {
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	GraceMinutes int    `json:"graceMinutes,omitempty"`
}

// OrganizationAdmin is only meaningful when an organization is created.
type OrganizationAdmin struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}

type Organization struct {
	ID                 string             `json:"id" validate:"required"`
	Name               string             `json:"name" validate:"required"`
	Address            *Address           `json:"address,omitempty"`
	ContactEmail       string             `json:"contactEmail,omitempty"`
	ContactPhone       string             `json:"contactPhone,omitempty"`
	Admin              *OrganizationAdmin `json:"admin,omitempty"`
	RegistrationNumber string             `json:"registrationNumber,omitempty"`
	TaxID              string             `json:"taxId,omitempty"`
	LogoURL            string             `json:"logoUrl,omitempty"`
	Timezone           string             `json:"timezone,omitempty"`
	WorkingDays        []string           `json:"workingDays,omitempty"`
	Shift              *ShiftDefaults     `json:"shift,omitempty"`
	Status             string             `json:"status,omitempty"`
}

// OrganizationInput is the body of create and update calls.
type OrganizationInput struct {
	Name               string             `json:"name"`
	Address            *Address           `json:"address,omitempty"`
	ContactEmail       string             `json:"contactEmail,omitempty"`
	ContactPhone       string             `json:"contactPhone,omitempty"`
	Admin              *OrganizationAdmin `json:"admin,omitempty"`
	RegistrationNumber string             `json:"registrationNumber,omitempty"`
	TaxID              string             `json:"taxId,omitempty"`
	LogoURL            string             `json:"logoUrl,omitempty"`
	Timezone           string             `json:"timezone,omitempty"`
	WorkingDays        []string           `json:"workingDays,omitempty"`
	Shift              *ShiftDefaults     `json:"shift,omitempty"`
	Status             string             `json:"status,omitempty"`
}
