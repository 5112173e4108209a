package domain

import "time"

// EmployeeStatus is the approval state of an account.
type EmployeeStatus string

const (
	EmployeeStatusPending  EmployeeStatus = "PENDING"
	EmployeeStatusApproved EmployeeStatus = "APPROVED"
	EmployeeStatusRejected EmployeeStatus = "REJECTED"
)

// Employee is an account in the credential store.
type Employee struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Status       EmployeeStatus
	CreatedAt    time.Time
}

// DisplayName falls back to the email when no name was recorded.
func (e *Employee) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Email
}
