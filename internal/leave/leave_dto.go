package leave

import "time"

type CreateLeaveRequest struct {
	LeaveType   string `json:"leave_type" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

// UpdateLeaveRequest carries partial-update semantics: a nil field was not
// supplied and leaves the stored value untouched, which is different from an
// explicit empty string.
type UpdateLeaveRequest struct {
	LeaveType   *string `json:"leave_type"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Reason      *string `json:"reason"`
	Description *string `json:"description"`
}

type ResolveLeaveRequest struct {
	Comment string `json:"comment"`
}

type RejectLeaveRequest struct {
	ResolverID string `json:"resolver_id"`
	Comment    string `json:"comment"`
}

// ListFilters are the caller-supplied filters of the list operation. For a
// non-privileged caller EmployeeID and All are overridden by the service.
type ListFilters struct {
	Status     string
	EmployeeID string
	DateFrom   string
	DateTo     string
	All        bool
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	LeaveType       string  `json:"leave_type"`
	RequestedAt     string  `json:"requested_at"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	Description     string  `json:"description"`
	Status          string  `json:"status"`
	ResolverID      *string `json:"resolver_id,omitempty"`
	ResolvedAt      *string `json:"resolved_at,omitempty"`
	ResolverComment string  `json:"resolver_comment,omitempty"`
	Active          bool    `json:"active"`
}

type SummaryResponse struct {
	Pending           int64           `json:"pending"`
	Approved          int64           `json:"approved"`
	Rejected          int64           `json:"rejected"`
	TotalDaysApproved int64           `json:"totalDaysApproved"`
	Requests          []LeaveResponse `json:"requests"`
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		RequestedAt:     l.RequestedAt.Format(time.RFC3339),
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Description:     l.Description,
		Status:          l.Status,
		ResolverComment: l.ResolverComment,
		Active:          l.Active,
	}
	if l.ResolverID != nil {
		v := l.ResolverID.String()
		resp.ResolverID = &v
	}
	if l.ResolvedAt != nil {
		v := l.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
