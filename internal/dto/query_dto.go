package dto

import "time"

type QueryRequest struct {
	Query      string `json:"query" validate:"required"`
	SessionId  string `json:"session_id"`
	EmployeeId string `json:"employee_id"`
	Department string `json:"department"`
	Role       string `json:"role" validate:"omitempty,oneof=employee manager hr_admin hr_manager executive"`
}

type QueryResponse struct {
	SessionId      string   `json:"session_id"`
	Query          string   `json:"query"`
	Response       string   `json:"response"`
	Category       string   `json:"category"`
	Confidence     float64  `json:"confidence"`
	Escalated      bool     `json:"escalated"`
	EscalationType string   `json:"escalation_type,omitempty"`
	Sources        []string `json:"sources"`
	ResponseTimeMs int64    `json:"response_time_ms"`
}

type FeedbackRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Helpful   *bool  `json:"helpful" validate:"required"`
	Comment   string `json:"comment"`
}

type QueryLogItem struct {
	Id             uint      `json:"id"`
	SessionId      string    `json:"session_id"`
	EmployeeId     string    `json:"employee_id,omitempty"`
	Query          string    `json:"query"`
	Category       string    `json:"category"`
	Response       string    `json:"response"`
	Confidence     float64   `json:"confidence"`
	Escalated      bool      `json:"escalated"`
	EscalationType string    `json:"escalation_type,omitempty"`
	Sources        []string  `json:"sources"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	CreatedAt      time.Time `json:"created_at"`
}
