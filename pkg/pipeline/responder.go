package pipeline

import (
	"context"
	"fmt"
	"log"

	"hr-assist-be/pkg/llm"
)

// FallbackResponse is returned when the generation backend fails; the run
// still continues to confidence assessment and analytics.
const FallbackResponse = "I'm having trouble generating a response right now. " +
	"Please contact the HR team directly at hr@company.com for assistance with your question."

// Responder generates the natural-language answer, grounded when context
// exists and degraded when it does not.
type Responder struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewResponder(llmProvider llm.LLMProvider, logger *log.Logger) *Responder {
	return &Responder{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Generate always returns non-empty text; backend errors degrade to
// FallbackResponse instead of propagating.
func (r *Responder) Generate(ctx context.Context, query, policyContext, role, department string, category Category) string {
	var systemPrompt string

	if policyContext != "" {
		systemPrompt = fmt.Sprintf(`You are an expert HR assistant for a company. Answer the employee's question
using ONLY the provided policy documents as your source of truth.

Employee Context:
- Role: %s
- Department: %s
- Query Category: %s

Guidelines:
1. Be clear, concise, and empathetic
2. Cite specific policy sections when possible
3. Use bullet points for multi-step processes
4. If information is partial, acknowledge what you know and what might need clarification
5. Always recommend consulting HR for personal/sensitive matters
6. Tailor the response to the employee's role level

Policy Documents Context:
%s`, role, department, category, policyContext)
	} else {
		systemPrompt = fmt.Sprintf(`You are an expert HR assistant. No specific policy documents were found for this query.
Provide a general, helpful response about common HR practices but clearly state that:
1. You couldn't find specific company policy for this topic
2. The employee should contact HR directly for authoritative information
3. What general best practices suggest

Employee Context: Role: %s, Department: %s`, role, department)
	}

	response, err := r.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: query},
	}, llm.WithTemperature(0.2))
	if err != nil {
		r.logger.Printf("[RESPONDER] generation failed, using fallback: %v", err)
		return FallbackResponse
	}

	if response == "" {
		r.logger.Printf("[RESPONDER] backend returned empty content, using fallback")
		return FallbackResponse
	}

	return response
}
