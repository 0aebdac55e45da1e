package leave

import (
	"bytes"
	"encoding/json"

	"hrmportal/internal/domain/core"
)

// LeaveType is one entry of a policy; its id is unique within that policy.
type LeaveType struct {
	ID                   string  `json:"id,omitempty"`
	Type                 string  `json:"type" validate:"required"`
	Interval             string  `json:"interval,omitempty"`
	IntervalValue        float64 `json:"intervalValue,omitempty"`
	CarryForward         bool    `json:"carryForward"`
	MaxCarryForward      float64 `json:"maxCarryForward,omitempty"`
	Encashable           bool    `json:"encashable"`
	MaxEncashable        float64 `json:"maxEncashable,omitempty"`
	AllowDuringProbation bool    `json:"allowDuringProbation"`
	AllowNegativeBalance bool    `json:"allowNegativeBalance"`
	IsUnpaid             bool    `json:"isUnpaid"`
}

type Policy struct {
	ID             string      `json:"id" validate:"required"`
	OrganizationID string      `json:"organizationId,omitempty"`
	Name           string      `json:"name" validate:"required"`
	EffectiveFrom  string      `json:"effectiveFrom,omitempty"`
	EffectiveTo    string      `json:"effectiveTo,omitempty"`
	LeaveTypes     []LeaveType `json:"leaveTypes" validate:"dive"`
	IsDefault      bool        `json:"isDefault"`
	IsActive       bool        `json:"isActive"`
}

type PolicyInput struct {
	OrganizationID string      `json:"organizationId,omitempty"`
	Name           string      `json:"name"`
	EffectiveFrom  string      `json:"effectiveFrom,omitempty"`
	EffectiveTo    string      `json:"effectiveTo,omitempty"`
	LeaveTypes     []LeaveType `json:"leaveTypes"`
	IsDefault      bool        `json:"isDefault"`
	IsActive       bool        `json:"isActive"`
}

// PolicyMetadata updates a policy without touching its leave types. Nil
// flags are left unchanged.
type PolicyMetadata struct {
	Name          string `json:"name,omitempty"`
	EffectiveFrom string `json:"effectiveFrom,omitempty"`
	EffectiveTo   string `json:"effectiveTo,omitempty"`
	IsDefault     *bool  `json:"isDefault,omitempty"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

// LeaveTypeRef is either a bare leave type id or the populated entry.
type LeaveTypeRef struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

func (r *LeaveTypeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = LeaveTypeRef{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = LeaveTypeRef{ID: id}
		return nil
	}
	type plain LeaveTypeRef
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*r = LeaveTypeRef(out)
	return nil
}

type Request struct {
	ID        string           `json:"id" validate:"required"`
	Employee  core.EmployeeRef `json:"employee"`
	LeaveType LeaveTypeRef     `json:"leaveType"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Reason    string           `json:"reason,omitempty"`
	Days      int              `json:"days"`
	Status    string           `json:"status"`
	Remark    string           `json:"remark,omitempty"`
}

type ListOptions struct {
	Page        int
	Limit       int
	Status      string
	EmployeeIDs []string
}

// Application is what an employee submits. Days is derived from the dates.
type Application struct {
	LeaveTypeID string
	StartDate   string
	EndDate     string
	Reason      string
}

type applicationBody struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	Days      int    `json:"days"`
}

type StatusUpdate struct {
	Status string `json:"status"`
	Remark string `json:"remark,omitempty"`
}

type BalanceEntry struct {
	Date    string  `json:"date"`
	Change  float64 `json:"change"`
	Balance float64 `json:"balance"`
	Reason  string  `json:"reason,omitempty"`
}

type BalanceHistory struct {
	EmployeeID  string         `json:"employeeId,omitempty"`
	LeaveTypeID string         `json:"leaveTypeId,omitempty"`
	Balance     float64        `json:"balance"`
	History     []BalanceEntry `json:"history"`
}
