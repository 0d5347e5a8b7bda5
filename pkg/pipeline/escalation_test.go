package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyAppendsFooterToExistingResponse(t *testing.T) {
	handler := NewEscalationHandler()

	out := handler.Apply("Here is your answer.", EscalationLowConfidence, "abcdef12-3456")

	assert.True(t, strings.HasPrefix(out, "Here is your answer."))
	assert.Contains(t, out, "This response may need verification")
	assert.Contains(t, out, "escalated to the HR team")
	assert.Contains(t, out, "hr@company.com")
	assert.Contains(t, out, "Reference ID: ABCDEF12")
}

func TestApplyWithoutPriorResponse(t *testing.T) {
	handler := NewEscalationHandler()

	// Sensitive queries bypass generation; the footer attaches to a short
	// acknowledgment rather than an empty string.
	out := handler.Apply("", EscalationSensitive, "deadbeef-0000")

	assert.True(t, strings.HasPrefix(out, "Thank you for your query."))
	assert.Contains(t, out, "sensitive HR matter")
}

func TestApplyNoticePerType(t *testing.T) {
	handler := NewEscalationHandler()

	tests := []struct {
		name           string
		escalationType EscalationType
		wantNotice     string
	}{
		{"sensitive", EscalationSensitive, "sensitive HR matter"},
		{"complex", EscalationComplex, "complex process"},
		{"policy gap", EscalationPolicyGap, "No specific policy was found"},
		{"low confidence", EscalationLowConfidence, "may need verification"},
		{"unrecognized falls back to generic", EscalationNone, "flagged for HR review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := handler.Apply("base", tt.escalationType, "12345678")
			assert.Contains(t, out, tt.wantNotice)
		})
	}
}

func TestReferenceCode(t *testing.T) {
	assert.Equal(t, "ABCDEF12", ReferenceCode("abcdef12-3456-7890"))
	assert.Equal(t, "AB12", ReferenceCode("ab12")) // shorter than 8 chars
}
