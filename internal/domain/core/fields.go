package core

import (
	"bytes"
	"encoding/json"
	"strings"
)

// EmployeeRef is how other records point at an employee. The backend sends
// either the bare id or the populated employee object.
type EmployeeRef struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Name         string `json:"name,omitempty"`
	EmployeeCode string `json:"employeeCode,omitempty"`
	Designation  string `json:"designation,omitempty"`
	Email        string `json:"email,omitempty"`
}

func (r *EmployeeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = EmployeeRef{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = EmployeeRef{ID: id}
		return nil
	}
	type plain EmployeeRef
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*r = EmployeeRef(out)
	return nil
}

// Populated reports whether more than the id was sent.
func (r EmployeeRef) Populated() bool {
	return r.DisplayName() != ""
}

func (r EmployeeRef) DisplayName() string {
	return displayName(r.Name, r.FirstName, r.LastName)
}

func (e Employee) DisplayName() string {
	return displayName(e.Name, e.FirstName, e.LastName)
}

func (e Employee) Ref() EmployeeRef {
	return EmployeeRef{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Name:         e.Name,
		EmployeeCode: e.EmployeeCode,
		Designation:  e.Designation,
		Email:        e.Email,
	}
}

func displayName(name, first, last string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
