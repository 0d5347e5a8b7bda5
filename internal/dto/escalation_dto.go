package dto

import "time"

type EscalationItem struct {
	Id             uint       `json:"id"`
	SessionId      string     `json:"session_id"`
	ReferenceCode  string     `json:"reference_code"`
	EmployeeId     string     `json:"employee_id,omitempty"`
	Query          string     `json:"query"`
	Category       string     `json:"category"`
	EscalationType string     `json:"escalation_type"`
	Reason         string     `json:"reason"`
	Status         string     `json:"status"`
	ResolvedBy     string     `json:"resolved_by,omitempty"`
	ResolutionNote string     `json:"resolution_note,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ResolveEscalationRequest struct {
	ResolvedBy     string `json:"resolved_by" validate:"required"`
	ResolutionNote string `json:"resolution_note" validate:"required"`
}
