package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"hr-assist-be/pkg/llm"
)

// Classification is the structured result of the classifier stage.
type Classification struct {
	Category         Category
	Intent           string
	Escalate         bool
	EscalationType   EscalationType
	EscalationReason string
}

// Classifier maps a raw query plus requester role onto a topic category,
// an intent summary and a preliminary escalation signal.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewClassifier(llmProvider llm.LLMProvider, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

const classifierSystemPrompt = `You are an HR query classifier. Analyze the employee's question and return a JSON response.

Categories: leave_policy, reimbursement, insurance, onboarding, payroll, performance,
code_of_conduct, remote_work, benefits, it_policy, general_policy, unknown

Escalation triggers (return escalate=true for):
- Grievances, harassment, discrimination complaints
- Legal disputes or compliance violations
- Personal salary negotiations
- Termination or disciplinary actions
- Queries requiring access to personal employee records
- Ambiguous queries needing human judgment

Return ONLY valid JSON:
{
  "category": "<category>",
  "intent": "<one-line description of what user wants>",
  "escalate": <true/false>,
  "escalation_reason": "<reason if escalate=true, else null>",
  "escalation_type": "<complex|policy_gap|sensitive|low_confidence or null>"
}`

type classifierOutput struct {
	Category         string `json:"category"`
	Intent           string `json:"intent"`
	Escalate         bool   `json:"escalate"`
	EscalationReason string `json:"escalation_reason"`
	EscalationType   string `json:"escalation_type"`
}

// Classify never fails: any backend error or unparsable output collapses
// to the safe default (unknown category, no escalation).
func (c *Classifier) Classify(ctx context.Context, query, role string) Classification {
	if role == "" {
		role = RoleEmployee
	}

	userMessage := fmt.Sprintf("Employee Role: %s\nQuery: %s", role, query)

	response, err := c.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: classifierSystemPrompt},
		{Role: "user", Content: userMessage},
	}, llm.WithTemperature(0.1))
	if err != nil {
		c.logger.Printf("[CLASSIFIER] backend call failed, using fallback: %v", err)
		return fallbackClassification()
	}

	parsed, err := parseClassifierOutput(response)
	if err != nil {
		c.logger.Printf("[CLASSIFIER] output parsing failed, using fallback: %v", err)
		return fallbackClassification()
	}

	result := Classification{
		Category:         ParseCategory(parsed.Category),
		Intent:           parsed.Intent,
		Escalate:         parsed.Escalate,
		EscalationType:   ParseEscalationType(parsed.EscalationType),
		EscalationReason: parsed.EscalationReason,
	}

	// Escalating without a recognized type would leave the run with an
	// empty kind at completion; treat it as the ambiguous-judgment class.
	if result.Escalate && result.EscalationType == EscalationNone {
		result.EscalationType = EscalationComplex
	}

	c.logger.Printf("[CLASSIFIER] category=%s escalate=%v type=%s",
		result.Category, result.Escalate, result.EscalationType)

	return result
}

func parseClassifierOutput(response string) (*classifierOutput, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var out classifierOutput
	if err := json.Unmarshal([]byte(jsonContent), &out); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}
	return &out, nil
}

func fallbackClassification() Classification {
	return Classification{
		Category: CategoryUnknown,
		Intent:   "Employee query",
		Escalate: false,
	}
}

// extractJSON pulls the outermost JSON object out of an LLM response that
// may wrap it in prose or markdown fences.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
