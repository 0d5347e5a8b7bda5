package entity

import "time"

type QueryLog struct {
	Id             uint
	SessionId      string
	EmployeeId     string
	Department     string
	Role           string
	QueryText      string
	Category       string
	Intent         string
	ResponseText   string
	Confidence     float64
	Escalated      bool
	EscalationType string
	SourcesUsed    []string
	ResponseTimeMs int64
	CreatedAt      time.Time
}

type QueryFeedback struct {
	Id         uint
	SessionId  string
	EmployeeId string
	Helpful    bool
	Comment    string
	CreatedAt  time.Time
}

type FAQPattern struct {
	Id            uint
	Category      string
	QueryPattern  string
	HitCount      int
	AvgConfidence float64
	LastSeenAt    time.Time
	CreatedAt     time.Time
}
