package pipeline

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRetriever struct {
	chunks []ScoredChunk
	err    error
	gotK   int
}

func (s *stubRetriever) SearchWithScore(_ context.Context, _ string, k int) ([]ScoredChunk, error) {
	s.gotK = k
	return s.chunks, s.err
}

func nopLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestAssembleBuildsContextAndSources(t *testing.T) {
	retriever := &stubRetriever{chunks: []ScoredChunk{
		{Content: "Casual leave is 12 days per year.", Source: "leave_policy.md", Distance: 0.1},
		{Content: "Sick leave is 10 days per year.", Source: "leave_policy.md", Distance: 0.2},
		{Content: "Carry-over is capped at 5 days.", Source: "leave_faq.md", Distance: 0.3},
		{Content: "Leave requests go through the portal.", Source: "handbook.md", Distance: 0.4},
		{Content: "Managers approve leave within 2 days.", Source: "handbook.md", Distance: 0.5},
	}}
	assembler := NewEvidenceAssembler(retriever, nopLogger())

	out := assembler.Assemble(context.Background(), "how many casual leaves do I get?")

	assert.Equal(t, retrievalK, retriever.gotK)
	assert.Len(t, out.Evidence, 5)
	assert.Equal(t, 0.9, out.Evidence[0].Score)

	// Sources deduplicated across ALL surviving entries, first-seen order.
	assert.Equal(t, []string{"leave_policy.md", "leave_faq.md", "handbook.md"}, out.Sources)

	// Only the top 4 entries make it into the generation context. Relevance
	// always renders with three decimals.
	parts := strings.Split(out.Context, contextDelimiter)
	assert.Len(t, parts, 4)
	assert.Contains(t, parts[0], "[Source 1: leave_policy.md | Relevance: 0.900]")
	assert.Contains(t, parts[0], "Casual leave is 12 days per year.")
	assert.Contains(t, parts[1], "[Source 2: leave_policy.md | Relevance: 0.800]")
	assert.NotContains(t, out.Context, "Managers approve leave")
}

func TestAssembleDiscardsNonPositiveSimilarity(t *testing.T) {
	retriever := &stubRetriever{chunks: []ScoredChunk{
		{Content: "relevant", Source: "a.md", Distance: 0.5},
		{Content: "irrelevant", Source: "b.md", Distance: 1.0},
		{Content: "beyond", Source: "c.md", Distance: 1.4},
	}}
	assembler := NewEvidenceAssembler(retriever, nopLogger())

	out := assembler.Assemble(context.Background(), "q")

	assert.Len(t, out.Evidence, 1)
	assert.Equal(t, []string{"a.md"}, out.Sources)
}

func TestAssembleEmptyResultIsValidState(t *testing.T) {
	assembler := NewEvidenceAssembler(&stubRetriever{}, nopLogger())

	out := assembler.Assemble(context.Background(), "q")

	assert.Empty(t, out.Evidence)
	assert.Equal(t, "", out.Context)
	assert.Empty(t, out.Sources)
}

func TestAssembleRetrievalFailureDegradesToEmpty(t *testing.T) {
	retriever := &stubRetriever{err: errors.New("vector store unavailable")}
	assembler := NewEvidenceAssembler(retriever, nopLogger())

	out := assembler.Assemble(context.Background(), "q")

	assert.Empty(t, out.Evidence)
	assert.Equal(t, "", out.Context)
	assert.Empty(t, out.Sources)
}

func TestAssembleUnknownSourceFallback(t *testing.T) {
	retriever := &stubRetriever{chunks: []ScoredChunk{
		{Content: "orphan chunk", Source: "", Distance: 0.2},
	}}
	assembler := NewEvidenceAssembler(retriever, nopLogger())

	out := assembler.Assemble(context.Background(), "q")

	assert.Equal(t, []string{"Unknown"}, out.Sources)
}
