package domain

import "time"

// LeaveStatus enumerates the lifecycle of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// Leave is a request for time off.
type Leave struct {
	ID         int64
	EmployeeID int64
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveStatus
	CreatedAt  time.Time

	// EmployeeEmail is only populated on admin listings.
	EmployeeEmail string
}

// Days returns the inclusive number of calendar days covered.
func (l *Leave) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
