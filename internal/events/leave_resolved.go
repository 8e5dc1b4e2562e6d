package events

import "time"

const LeaveResolvedTopic = "hr.leave.resolved.v1"

const (
	LeaveApprovedEventType  = "leave_approved"
	LeaveRejectedEventType  = "leave_rejected"
	LeaveCancelledEventType = "leave_cancelled"
)

type LeaveResolvedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	ResolverID string    `json:"resolver_id,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
