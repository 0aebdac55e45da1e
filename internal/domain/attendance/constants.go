package attendance

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
	StatusOnLeave = "on-leave"
)

// Regularization request values.
const (
	FieldClockIn  = "clockIn"
	FieldClockOut = "clockOut"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
