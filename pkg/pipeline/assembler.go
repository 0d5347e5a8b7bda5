package pipeline

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
)

const (
	// Top-K matches requested from the Retrieval Service.
	retrievalK = 6
	// Only the strongest entries go into the generation context; the rest
	// still count for scoring and the source list.
	contextTopN = 4

	contextDelimiter = "\n\n---\n\n"
)

// AssembledEvidence is the output of the evidence assembler stage.
type AssembledEvidence struct {
	Evidence []Evidence
	Context  string
	Sources  []string
}

// EvidenceAssembler calls the Retrieval Service and builds the bounded
// context bundle plus the distinct source list.
type EvidenceAssembler struct {
	retriever Retriever
	logger    *log.Logger
}

func NewEvidenceAssembler(retriever Retriever, logger *log.Logger) *EvidenceAssembler {
	return &EvidenceAssembler{
		retriever: retriever,
		logger:    logger,
	}
}

// Assemble never fails: a Retrieval Service outage degrades to empty
// evidence, which drives the policy-gap escalation path downstream.
func (a *EvidenceAssembler) Assemble(ctx context.Context, query string) AssembledEvidence {
	chunks, err := a.retriever.SearchWithScore(ctx, query, retrievalK)
	if err != nil {
		a.logger.Printf("[ASSEMBLER] retrieval failed, proceeding with empty evidence: %v", err)
		return AssembledEvidence{Sources: []string{}}
	}

	evidence := make([]Evidence, 0, len(chunks))
	sources := make([]string, 0, len(chunks))
	seen := make(map[string]bool)

	for _, chunk := range chunks {
		similarity := 1 - chunk.Distance
		// Lower safety bound, not a quality filter: keeps almost everything.
		if similarity <= 0.0 {
			continue
		}

		source := chunk.Source
		if source == "" {
			source = "Unknown"
		}

		evidence = append(evidence, Evidence{
			Content:  chunk.Content,
			Source:   source,
			Category: chunk.Category,
			Score:    round3(similarity),
		})

		if !seen[source] {
			seen[source] = true
			sources = append(sources, source)
		}
	}

	var contextParts []string
	for i, ev := range evidence {
		if i >= contextTopN {
			break
		}
		contextParts = append(contextParts, fmt.Sprintf(
			"[Source %d: %s | Relevance: %.3f]\n%s", i+1, ev.Source, ev.Score, ev.Content))
	}

	a.logger.Printf("[ASSEMBLER] %d evidence entries, %d sources", len(evidence), len(sources))

	return AssembledEvidence{
		Evidence: evidence,
		Context:  strings.Join(contextParts, contextDelimiter),
		Sources:  sources,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
