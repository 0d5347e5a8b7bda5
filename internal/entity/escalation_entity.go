package entity

import "time"

const (
	EscalationStatusPending  = "pending"
	EscalationStatusResolved = "resolved"
)

type EscalationLog struct {
	Id             uint
	SessionId      string
	EmployeeId     string
	QueryText      string
	Category       string
	EscalationType string
	Reason         string
	Status         string
	ResolvedBy     string
	ResolutionNote string
	ResolvedAt     *time.Time
	CreatedAt      time.Time
}
