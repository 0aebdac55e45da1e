package leave

import "errors"

var (
	ErrPolicyIDRequired    = errors.New("leave policy id is required")
	ErrLeaveTypeIDRequired = errors.New("leave type id is required")
	ErrRequestIDRequired   = errors.New("leave request id is required")
	ErrEmployeeIDRequired  = errors.New("employee id is required")
	ErrPolicyNameRequired  = errors.New("leave policy name is required")
	ErrInvalidDate         = errors.New("dates must be YYYY-MM-DD or RFC3339")
	ErrStatusRequired      = errors.New("status is required")
)
