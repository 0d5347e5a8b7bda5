package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"leave policy file", "leave_policy.txt", "leave_policy"},
		{"vacation maps to leave", "vacation-days.md", "leave_policy"},
		{"reimbursement", "travel_reimbursement.txt", "reimbursement"},
		{"expense maps to reimbursement", "expense-claims.md", "reimbursement"},
		{"insurance", "health_insurance_2026.txt", "insurance"},
		{"onboarding", "onboarding-checklist.md", "onboarding"},
		{"payroll", "payroll_calendar.txt", "payroll"},
		{"salary maps to payroll", "salary-bands.md", "payroll"},
		{"performance", "performance_review_cycle.txt", "performance"},
		{"conduct", "code_of_conduct.md", "code_of_conduct"},
		{"grievance maps to conduct", "grievance-procedure.txt", "code_of_conduct"},
		{"remote work", "remote_work_guidelines.md", "remote_work"},
		{"wfh maps to remote work", "wfh-rules.txt", "remote_work"},
		{"benefits", "employee_benefits.txt", "benefits"},
		{"it policy", "it_policy_devices.md", "it_policy"},
		{"case insensitive", "LEAVE_Policy.TXT", "leave_policy"},
		{"no match falls back", "company_history.txt", "general_policy"},
		{"empty source falls back", "", "general_policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectCategory(tt.source))
		})
	}
}

func TestDetectCategoryFirstMatchWins(t *testing.T) {
	// "leave" is checked before "benefit", so a file mentioning both gets
	// the earlier category.
	assert.Equal(t, "leave_policy", DetectCategory("leave_and_benefits.txt"))
}
