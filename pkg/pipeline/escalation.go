package pipeline

import (
	"fmt"
	"strings"
)

// Escalation contact and SLA surfaced in the footer.
const (
	hrContactEmail  = "hr@company.com"
	followUpPromise = "An HR representative will reach out within 1-2 business days."
)

var escalationNotices = map[EscalationType]string{
	EscalationSensitive:     "⚠️ **This query involves a sensitive HR matter** and requires direct HR team involvement.",
	EscalationComplex:       "ℹ️ **This query involves a complex process** that may require personalized HR guidance.",
	EscalationPolicyGap:     "📋 **No specific policy was found** in our current documentation for this query.",
	EscalationLowConfidence: "💡 **This response may need verification** by an HR specialist.",
}

const genericNotice = "ℹ️ This query has been flagged for HR review."

// EscalationHandler appends the standardized escalation notice and
// reference code. Pure function of its inputs; no external calls.
type EscalationHandler struct{}

func NewEscalationHandler() *EscalationHandler {
	return &EscalationHandler{}
}

// Apply returns the response with the escalation footer attached. When
// there is no prior response (sensitive queries bypass generation) the
// footer is attached to a short acknowledgment instead.
func (h *EscalationHandler) Apply(response string, escalationType EscalationType, sessionID string) string {
	notice, ok := escalationNotices[escalationType]
	if !ok {
		notice = genericNotice
	}

	footer := fmt.Sprintf(`

---
%s

**Your query has been escalated to the HR team.** %s

For urgent matters, please contact HR directly at: %s

*Reference ID: %s*`, notice, followUpPromise, hrContactEmail, ReferenceCode(sessionID))

	if response != "" {
		return response + footer
	}
	return "Thank you for your query. " + footer
}

// ReferenceCode derives the human-readable reference from a session id:
// first 8 characters, upper-cased.
func ReferenceCode(sessionID string) string {
	ref := sessionID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return strings.ToUpper(ref)
}
