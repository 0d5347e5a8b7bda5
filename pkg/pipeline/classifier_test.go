package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-assist-be/pkg/llm"
)

// stubLLM returns canned responses per call, in order.
type stubLLM struct {
	responses []string
	err       error
	calls     int
	lastOpts  llm.Options
	prompts   []string
}

func (s *stubLLM) Chat(_ context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Options{}
	for _, opt := range opts {
		opt(&options)
	}
	s.lastOpts = options
	for _, m := range history {
		s.prompts = append(s.prompts, m.Content)
	}

	if s.err != nil {
		return "", s.err
	}
	idx := s.calls
	s.calls++
	if idx >= len(s.responses) {
		return "", errors.New("stubLLM: no response configured")
	}
	return s.responses[idx], nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func TestClassifyParsesStructuredOutput(t *testing.T) {
	backend := &stubLLM{responses: []string{
		"```json\n{\"category\": \"leave_policy\", \"intent\": \"asking about casual leave\", \"escalate\": false, \"escalation_reason\": null, \"escalation_type\": null}\n```",
	}}
	classifier := NewClassifier(backend, nopLogger())

	out := classifier.Classify(context.Background(), "How many casual leaves do I get?", RoleEmployee)

	assert.Equal(t, CategoryLeave, out.Category)
	assert.Equal(t, "asking about casual leave", out.Intent)
	assert.False(t, out.Escalate)
	assert.Equal(t, EscalationNone, out.EscalationType)
	assert.InDelta(t, 0.1, backend.lastOpts.Temperature, 1e-9)
}

func TestClassifySensitiveTrigger(t *testing.T) {
	backend := &stubLLM{responses: []string{
		`{"category": "code_of_conduct", "intent": "complaint against manager", "escalate": true, "escalation_reason": "grievance against manager", "escalation_type": "sensitive"}`,
	}}
	classifier := NewClassifier(backend, nopLogger())

	out := classifier.Classify(context.Background(), "I want to raise a complaint against my manager.", RoleEmployee)

	assert.True(t, out.Escalate)
	assert.Equal(t, EscalationSensitive, out.EscalationType)
	assert.Equal(t, "grievance against manager", out.EscalationReason)
}

func TestClassifyFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		backend *stubLLM
	}{
		{"backend error", &stubLLM{err: errors.New("timeout")}},
		{"no JSON in response", &stubLLM{responses: []string{"I think this is about leave."}}},
		{"malformed JSON", &stubLLM{responses: []string{`{"category": `}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewClassifier(tt.backend, nopLogger())

			out := classifier.Classify(context.Background(), "anything", RoleEmployee)

			assert.Equal(t, CategoryUnknown, out.Category)
			assert.Equal(t, "Employee query", out.Intent)
			assert.False(t, out.Escalate)
			assert.Equal(t, EscalationNone, out.EscalationType)
		})
	}
}

func TestClassifyUnknownCategoryAndType(t *testing.T) {
	backend := &stubLLM{responses: []string{
		`{"category": "made_up_category", "intent": "x", "escalate": true, "escalation_reason": "unclear", "escalation_type": "made_up_type"}`,
	}}
	classifier := NewClassifier(backend, nopLogger())

	out := classifier.Classify(context.Background(), "q", RoleManager)

	assert.Equal(t, CategoryUnknown, out.Category)
	// Escalating with an unrecognized type lands on the ambiguous-judgment class.
	assert.Equal(t, EscalationComplex, out.EscalationType)
}

func TestParseCategoryClosedSet(t *testing.T) {
	assert.Equal(t, CategoryPayroll, ParseCategory("payroll"))
	assert.Equal(t, CategoryUnknown, ParseCategory("salary_stuff"))
	assert.Equal(t, CategoryUnknown, ParseCategory(""))
}
