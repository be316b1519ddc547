package domain

import "time"

// LeaveStatus represents the review state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// LeaveRequest is a read-only view of a leave request, used to build the
// per-request chat corpus.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Department string
	FromDate   time.Time
	ToDate     time.Time
	Reason     string
	Status     LeaveStatus
}
