package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessEmptyEvidence(t *testing.T) {
	assessor := NewConfidenceAssessor()

	result := assessor.Assess(nil, false)

	assert.Equal(t, 0.2, result.Confidence)
	assert.True(t, result.ShouldEscalate)
	assert.True(t, result.SetReason)
	assert.Equal(t, EscalationPolicyGap, result.EscalationType)
	assert.Equal(t, "No relevant policy documents found", result.EscalationReason)
}

func TestAssessEmptyEvidenceKeepsUpstreamEscalation(t *testing.T) {
	assessor := NewConfidenceAssessor()

	// First writer wins: an upstream escalation decision is not overwritten.
	result := assessor.Assess(nil, true)

	assert.Equal(t, 0.2, result.Confidence)
	assert.True(t, result.ShouldEscalate)
	assert.False(t, result.SetReason)
}

func TestAssessEvidenceFloor(t *testing.T) {
	assessor := NewConfidenceAssessor()

	tests := []struct {
		name     string
		scores   []float64
		expected float64
	}{
		{
			name:     "mean above floor",
			scores:   []float64{0.9, 0.8, 0.85},
			expected: 0.85,
		},
		{
			name:     "single weak match pinned to floor",
			scores:   []float64{0.1},
			expected: 0.75,
		},
		{
			name:     "weak mean pinned to floor",
			scores:   []float64{0.5, 0.4, 0.3},
			expected: 0.75,
		},
		{
			name:     "only top three count",
			scores:   []float64{0.9, 0.9, 0.9, 0.1, 0.1, 0.1},
			expected: 0.9,
		},
		{
			name:     "two entries",
			scores:   []float64{0.8, 0.9},
			expected: 0.85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evidence := make([]Evidence, len(tt.scores))
			for i, s := range tt.scores {
				evidence[i] = Evidence{Content: "chunk", Source: "doc.md", Score: s}
			}

			result := assessor.Assess(evidence, false)

			assert.InDelta(t, tt.expected, result.Confidence, 1e-9)
			assert.False(t, result.ShouldEscalate)
			assert.False(t, result.SetReason)
		})
	}
}

func TestAssessEvidenceOverridesClassifierEscalation(t *testing.T) {
	assessor := NewConfidenceAssessor()

	evidence := []Evidence{{Content: "chunk", Source: "doc.md", Score: 0.6}}
	result := assessor.Assess(evidence, true)

	assert.False(t, result.ShouldEscalate)
	assert.Equal(t, 0.75, result.Confidence)
}
