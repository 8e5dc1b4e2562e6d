package notification

import "time"

type NotificationResponse struct {
	ID                  string  `json:"id"`
	RecipientEmployeeID string  `json:"recipient_employee_id"`
	Type                string  `json:"type"`
	Subject             string  `json:"subject"`
	Body                string  `json:"body"`
	Read                bool    `json:"read"`
	SenderEmployeeID    *string `json:"sender_employee_id,omitempty"`
	Priority            string  `json:"priority"`
	ReferenceID         *string `json:"reference_id,omitempty"`
	ReferenceType       *string `json:"reference_type,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type DeleteAllReadResponse struct {
	Deleted int64 `json:"deleted"`
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:                  n.ID.String(),
		RecipientEmployeeID: n.RecipientEmployeeID.String(),
		Type:                n.Type,
		Subject:             n.Subject,
		Body:                n.Body,
		Read:                n.Read,
		Priority:            n.Priority,
		ReferenceID:         n.ReferenceID,
		ReferenceType:       n.ReferenceType,
		CreatedAt:           n.CreatedAt.Format(time.RFC3339),
	}
	if n.SenderEmployeeID != nil {
		v := n.SenderEmployeeID.String()
		resp.SenderEmployeeID = &v
	}
	return resp
}

func mapToListResponse(list []Notification) []NotificationResponse {
	resp := make([]NotificationResponse, len(list))
	for i, n := range list {
		resp[i] = mapToResponse(n)
	}
	return resp
}
