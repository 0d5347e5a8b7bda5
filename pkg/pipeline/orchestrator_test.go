package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	records []AnalyticsRecord
	err     error
}

func (s *captureSink) Record(_ context.Context, rec AnalyticsRecord) error {
	s.records = append(s.records, rec)
	return s.err
}

func classifierJSON(category string, escalate bool, escType string) string {
	if escalate {
		return `{"category": "` + category + `", "intent": "test intent", "escalate": true, "escalation_reason": "needs human", "escalation_type": "` + escType + `"}`
	}
	return `{"category": "` + category + `", "intent": "test intent", "escalate": false}`
}

func chunksWithSimilarities(sims ...float64) []ScoredChunk {
	chunks := make([]ScoredChunk, len(sims))
	for i, s := range sims {
		chunks[i] = ScoredChunk{
			Content:  "policy text",
			Source:   "policy.md",
			Distance: 1 - s,
		}
	}
	return chunks
}

func TestProcessQueryRejectsEmptyQuery(t *testing.T) {
	orch := NewOrchestrator(&stubLLM{}, &stubRetriever{}, &captureSink{}, nopLogger())

	_, err := orch.ProcessQuery(context.Background(), Request{Query: "   "})

	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestProcessQueryAnsweredPath(t *testing.T) {
	// End-to-end: 3 matches with similarities 0.9, 0.8, 0.85 →
	// confidence = max(0.75, mean) = 0.85, no escalation.
	backend := &stubLLM{responses: []string{
		classifierJSON("leave_policy", false, ""),
		"You are entitled to 12 casual leaves per year.",
	}}
	retriever := &stubRetriever{chunks: chunksWithSimilarities(0.9, 0.8, 0.85)}
	sink := &captureSink{}
	orch := NewOrchestrator(backend, retriever, sink, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{
		Query:      "How many casual leaves am I entitled to per year?",
		EmployeeID: "EMP001",
		Department: "Engineering",
		Role:       RoleEmployee,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.85, result.Confidence, 1e-9)
	assert.False(t, result.Escalated)
	assert.Equal(t, CategoryLeave, result.Category)
	assert.Equal(t, "You are entitled to 12 casual leaves per year.", result.Response)
	assert.Equal(t, []string{"policy.md"}, result.Sources)
	assert.NotEmpty(t, result.SessionID)

	require.Len(t, sink.records, 1)
	assert.Equal(t, result.SessionID, sink.records[0].SessionID)
	assert.False(t, sink.records[0].Escalated)
}

func TestProcessQuerySensitiveShortCircuit(t *testing.T) {
	backend := &stubLLM{responses: []string{
		classifierJSON("code_of_conduct", true, "sensitive"),
	}}
	retriever := &stubRetriever{chunks: chunksWithSimilarities(0.9)}
	orch := NewOrchestrator(backend, retriever, &captureSink{}, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{
		Query: "I want to raise a complaint against my manager for unfair treatment.",
		Role:  RoleEmployee,
	})
	require.NoError(t, err)

	assert.True(t, result.Escalated)
	assert.Equal(t, EscalationSensitive, result.EscalationType)
	assert.Equal(t, CategoryCodeOfConduct, result.Category)
	assert.Contains(t, result.Response, "sensitive HR matter")

	// Retrieval and generation are skipped entirely.
	assert.Empty(t, result.Sources)
	assert.Equal(t, 1, backend.calls, "generation backend must not be called")
	assert.Zero(t, retriever.gotK, "retriever must not be called")
	assert.Zero(t, result.Confidence)
}

func TestProcessQueryPolicyGapPath(t *testing.T) {
	backend := &stubLLM{responses: []string{
		classifierJSON("general_policy", false, ""),
		"Here is some general guidance.",
	}}
	orch := NewOrchestrator(backend, &stubRetriever{}, &captureSink{}, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{Query: "What is the sabbatical policy?"})
	require.NoError(t, err)

	assert.InDelta(t, 0.2, result.Confidence, 1e-9)
	assert.True(t, result.Escalated)
	assert.Equal(t, EscalationPolicyGap, result.EscalationType)
	assert.Contains(t, result.Response, "No specific policy was found")
	// The generated response is preserved, the footer is appended.
	assert.True(t, strings.HasPrefix(result.Response, "Here is some general guidance."))
}

func TestProcessQueryClassifierEscalationPreservedOnEmptyEvidence(t *testing.T) {
	// Classifier predicts a non-sensitive escalation; with empty evidence
	// the assessor must not overwrite it (first writer wins).
	backend := &stubLLM{responses: []string{
		classifierJSON("payroll", true, "complex"),
		"Payroll answer.",
	}}
	orch := NewOrchestrator(backend, &stubRetriever{}, &captureSink{}, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{Query: "Complex payroll question"})
	require.NoError(t, err)

	assert.True(t, result.Escalated)
	assert.Equal(t, EscalationComplex, result.EscalationType)
	assert.Contains(t, result.Response, "complex process")
}

func TestProcessQueryEvidenceOverridesClassifierEscalation(t *testing.T) {
	backend := &stubLLM{responses: []string{
		classifierJSON("payroll", true, "complex"),
		"Payroll answer.",
	}}
	retriever := &stubRetriever{chunks: chunksWithSimilarities(0.4)}
	orch := NewOrchestrator(backend, retriever, &captureSink{}, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{Query: "Payroll question"})
	require.NoError(t, err)

	assert.False(t, result.Escalated)
	assert.InDelta(t, 0.75, result.Confidence, 1e-9)
	assert.NotContains(t, result.Response, "escalated to the HR team")
}

func TestProcessQuerySessionIDRoundTrip(t *testing.T) {
	backend := &stubLLM{responses: []string{
		classifierJSON("benefits", false, ""),
		"Benefits answer.",
	}}
	orch := NewOrchestrator(backend, &stubRetriever{chunks: chunksWithSimilarities(0.8)}, &captureSink{}, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{
		Query:     "What benefits do I have?",
		SessionID: "caller-supplied-session",
	})
	require.NoError(t, err)

	assert.Equal(t, "caller-supplied-session", result.SessionID)
}

func TestProcessQueryFooterReferenceCode(t *testing.T) {
	backend := &stubLLM{responses: []string{
		classifierJSON("code_of_conduct", true, "sensitive"),
	}}
	orch := NewOrchestrator(backend, &stubRetriever{}, &captureSink{}, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{
		Query:     "grievance",
		SessionID: "abcd1234-ffff-0000",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Response, "Reference ID: ABCD1234")
	// The footer is applied exactly once per run.
	assert.Equal(t, 1, strings.Count(result.Response, "Reference ID:"))
}

func TestProcessQueryGenerationFailureDegrades(t *testing.T) {
	backend := &stubLLM{responses: []string{
		classifierJSON("insurance", false, ""),
		// No second response configured → generation call errors.
	}}
	orch := NewOrchestrator(backend, &stubRetriever{chunks: chunksWithSimilarities(0.9)}, &captureSink{}, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{Query: "How do I add a dependent?"})
	require.NoError(t, err)

	assert.Equal(t, FallbackResponse, result.Response)
	// The run still reaches confidence assessment and analytics.
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
	assert.False(t, result.Escalated)
}

func TestProcessQuerySinkFailureIsSwallowed(t *testing.T) {
	backend := &stubLLM{responses: []string{
		classifierJSON("leave_policy", false, ""),
		"Answer.",
	}}
	sink := &captureSink{err: errors.New("nats unavailable")}
	orch := NewOrchestrator(backend, &stubRetriever{chunks: chunksWithSimilarities(0.8)}, sink, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{Query: "leave?"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Response)
}

func TestProcessQueryNoDuplicateSources(t *testing.T) {
	backend := &stubLLM{responses: []string{
		classifierJSON("remote_work", false, ""),
		"WFH answer.",
	}}
	retriever := &stubRetriever{chunks: []ScoredChunk{
		{Content: "a", Source: "wfh.md", Distance: 0.1},
		{Content: "b", Source: "handbook.md", Distance: 0.2},
		{Content: "c", Source: "wfh.md", Distance: 0.3},
	}}
	orch := NewOrchestrator(backend, retriever, &captureSink{}, nopLogger())

	result, err := orch.ProcessQuery(context.Background(), Request{Query: "Can I work from home?"})
	require.NoError(t, err)

	assert.Equal(t, []string{"wfh.md", "handbook.md"}, result.Sources)
}

func TestProcessQueryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orch := NewOrchestrator(&stubLLM{}, &stubRetriever{}, &captureSink{}, nopLogger())

	_, err := orch.ProcessQuery(ctx, Request{Query: "anything"})

	assert.ErrorIs(t, err, context.Canceled)
}
