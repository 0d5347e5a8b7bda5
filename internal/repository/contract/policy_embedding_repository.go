package contract

import (
	"context"

	"hr-assist-be/internal/entity"
	"hr-assist-be/pkg/retrieval"
)

type PolicyEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.PolicyEmbedding) error
	DeleteByDocumentId(ctx context.Context, documentId uint) error
	CountByDocumentId(ctx context.Context, documentId uint) (int64, error)

	// SearchSimilarWithScore satisfies the retrieval layer's VectorStore
	// contract; threshold < 0 disables the similarity cutoff.
	SearchSimilarWithScore(ctx context.Context, queryEmbedding []float32, limit int, threshold float64) ([]retrieval.ScoredDocument, error)
}
