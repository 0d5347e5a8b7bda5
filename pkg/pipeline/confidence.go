package pipeline

// Confidence policy constants. The 0.75 floor is a deliberate product
// choice: any retrieved evidence is treated as reasonably trustworthy.
const (
	noEvidenceConfidence = 0.2
	confidenceFloor      = 0.75
	scoredEvidenceTopN   = 3
)

// Assessment is the output of the confidence stage. SetReason guards the
// escalation type/reason fields so an upstream, more specific escalation
// decision is never overwritten (first writer wins).
type Assessment struct {
	Confidence       float64
	ShouldEscalate   bool
	SetReason        bool
	EscalationType   EscalationType
	EscalationReason string
}

// ConfidenceAssessor derives the final confidence value from retrieval
// quality. It is the single authority for confidence; no other stage may
// set it. Pure: no backend calls.
type ConfidenceAssessor struct{}

func NewConfidenceAssessor() *ConfidenceAssessor {
	return &ConfidenceAssessor{}
}

func (a *ConfidenceAssessor) Assess(evidence []Evidence, alreadyEscalating bool) Assessment {
	if len(evidence) == 0 {
		result := Assessment{
			Confidence:     noEvidenceConfidence,
			ShouldEscalate: true,
		}
		if !alreadyEscalating {
			result.SetReason = true
			result.EscalationType = EscalationPolicyGap
			result.EscalationReason = "No relevant policy documents found"
		}
		return result
	}

	n := len(evidence)
	if n > scoredEvidenceTopN {
		n = scoredEvidenceTopN
	}

	var sum float64
	for _, ev := range evidence[:n] {
		sum += ev.Score
	}
	mean := sum / float64(n)

	confidence := mean
	if confidence < confidenceFloor {
		confidence = confidenceFloor
	}

	// Evidence presence overrides any non-sensitive escalation signal from
	// classification; sensitive queries never reach this stage.
	return Assessment{
		Confidence:     round3(confidence),
		ShouldEscalate: false,
	}
}
