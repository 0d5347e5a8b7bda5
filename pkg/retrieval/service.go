package retrieval

import (
	"context"
	"fmt"
	"log"

	"hr-assist-be/pkg/embedding"
	"hr-assist-be/pkg/pipeline"
)

// ScoredDocument is a policy chunk returned by the vector store together
// with its cosine similarity to the query (1.0 = identical).
type ScoredDocument struct {
	Content    string
	Source     string
	Category   string
	Similarity float64
}

// VectorStore abstracts the similarity search over stored policy embeddings.
type VectorStore interface {
	SearchSimilarWithScore(ctx context.Context, queryEmbedding []float32, limit int, threshold float64) ([]ScoredDocument, error)
}

// Service embeds the query text and searches the vector store. It satisfies
// the pipeline's Retriever contract.
type Service struct {
	store    VectorStore
	embedder embedding.EmbeddingProvider
	log      *log.Logger
}

func NewService(store VectorStore, embedder embedding.EmbeddingProvider, logger *log.Logger) *Service {
	return &Service{
		store:    store,
		embedder: embedder,
		log:      logger,
	}
}

func (s *Service) SearchWithScore(ctx context.Context, query string, k int) ([]pipeline.ScoredChunk, error) {
	resp, err := s.embedder.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	// No threshold at the store level; relevance filtering happens downstream.
	docs, err := s.store.SearchSimilarWithScore(ctx, resp.Embedding.Values, k, -1)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	chunks := make([]pipeline.ScoredChunk, len(docs))
	for i, d := range docs {
		chunks[i] = pipeline.ScoredChunk{
			Content:  d.Content,
			Source:   d.Source,
			Category: d.Category,
			Distance: 1 - d.Similarity,
		}
	}

	s.log.Printf("retrieval: %d candidates for query (k=%d)", len(chunks), k)
	return chunks, nil
}
