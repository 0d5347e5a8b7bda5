package pipeline

import (
	"context"
	"time"
)

// Category is the closed classification of an HR query.
type Category string

const (
	CategoryLeave         Category = "leave_policy"
	CategoryReimbursement Category = "reimbursement"
	CategoryInsurance     Category = "insurance"
	CategoryOnboarding    Category = "onboarding"
	CategoryPayroll       Category = "payroll"
	CategoryPerformance   Category = "performance"
	CategoryCodeOfConduct Category = "code_of_conduct"
	CategoryRemoteWork    Category = "remote_work"
	CategoryBenefits      Category = "benefits"
	CategoryITPolicy      Category = "it_policy"
	CategoryGeneral       Category = "general_policy"
	CategoryUnknown       Category = "unknown"
)

var allCategories = map[Category]bool{
	CategoryLeave:         true,
	CategoryReimbursement: true,
	CategoryInsurance:     true,
	CategoryOnboarding:    true,
	CategoryPayroll:       true,
	CategoryPerformance:   true,
	CategoryCodeOfConduct: true,
	CategoryRemoteWork:    true,
	CategoryBenefits:      true,
	CategoryITPolicy:      true,
	CategoryGeneral:       true,
	CategoryUnknown:       true,
}

// ParseCategory maps arbitrary classifier output onto the closed set.
// Anything outside the set becomes CategoryUnknown.
func ParseCategory(s string) Category {
	c := Category(s)
	if allCategories[c] {
		return c
	}
	return CategoryUnknown
}

// EscalationType is the reason a query is routed to a human.
type EscalationType string

const (
	EscalationNone          EscalationType = ""
	EscalationComplex       EscalationType = "complex"        // Multi-step or personalized process
	EscalationPolicyGap     EscalationType = "policy_gap"     // No relevant policy found
	EscalationSensitive     EscalationType = "sensitive"      // Legal/disciplinary/grievance
	EscalationLowConfidence EscalationType = "low_confidence" // Uncertain answer
)

// ParseEscalationType normalizes classifier output; unrecognized values
// collapse to EscalationNone so routing never acts on a stray string.
func ParseEscalationType(s string) EscalationType {
	switch EscalationType(s) {
	case EscalationComplex, EscalationPolicyGap, EscalationSensitive, EscalationLowConfidence:
		return EscalationType(s)
	default:
		return EscalationNone
	}
}

// Employee roles form a closed set; validation happens at the transport
// layer, the pipeline only defaults an empty role.
const (
	RoleEmployee  = "employee"
	RoleManager   = "manager"
	RoleHRAdmin   = "hr_admin"
	RoleHRManager = "hr_manager"
	RoleExecutive = "executive"
)

// Evidence is one retrieved policy snippet with its provenance and
// similarity score (already converted from distance, rounded to 3 decimals).
type Evidence struct {
	Content  string
	Source   string
	Category string
	Score    float64
}

// ScoredChunk is what the Retrieval Service hands back. Distance is a
// non-negative cosine distance; similarity = 1 - distance.
type ScoredChunk struct {
	Content  string
	Source   string
	Category string
	Distance float64
}

// Retriever is the narrow similarity-search contract the pipeline depends
// on. Implementations are expected to be safe for concurrent use.
type Retriever interface {
	SearchWithScore(ctx context.Context, query string, k int) ([]ScoredChunk, error)
}

// QueryContext is the mutable working record for one request. It is owned
// exclusively by the Orchestrator for the duration of a run and discarded
// after the analytics record is emitted.
type QueryContext struct {
	// Identity
	SessionID  string
	EmployeeID string
	Department string
	Role       string

	// Input
	Query string

	// Classification
	Category Category
	Intent   string

	// Retrieval
	Evidence []Evidence
	Context  string
	Sources  []string

	// Output
	Response   string
	Confidence float64

	// Escalation
	ShouldEscalate   bool
	EscalationType   EscalationType
	EscalationReason string

	// Timing
	StartedAt      time.Time
	ResponseTimeMs int64
}

// AnalyticsRecord is the flat, immutable snapshot emitted once per
// completed run. It is the only artifact the core hands to persistence.
type AnalyticsRecord struct {
	SessionID      string
	EmployeeID     string
	Department     string
	Role           string
	Query          string
	Response       string
	Category       Category
	Intent         string
	Confidence     float64
	Escalated      bool
	EscalationType EscalationType
	ResponseTimeMs int64
	Sources        []string
	Timestamp      time.Time
}

// AnalyticsSink accepts one record per completed run. Fire-and-forget: the
// recorder swallows errors, a lost record must never fail the answer.
type AnalyticsSink interface {
	Record(ctx context.Context, rec AnalyticsRecord) error
}
