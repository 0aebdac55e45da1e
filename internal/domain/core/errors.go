package core

import "errors"

var (
	ErrEmployeeIDRequired     = errors.New("employee id is required")
	ErrOrganizationIDRequired = errors.New("organization id is required")
	ErrOrganizationName       = errors.New("organization name is required")
)
