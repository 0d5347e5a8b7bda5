package implementation

import (
	"context"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/mapper"
	"hr-assist-be/internal/model"
	"hr-assist-be/internal/repository/contract"
	"hr-assist-be/pkg/retrieval"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PolicyEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PolicyEmbeddingMapper
}

func NewPolicyEmbeddingRepository(db *gorm.DB) contract.PolicyEmbeddingRepository {
	return &PolicyEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewPolicyEmbeddingMapper(),
	}
}

func (r *PolicyEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.PolicyEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := r.mapper.ToModels(embeddings)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PolicyEmbeddingRepositoryImpl) DeleteByDocumentId(ctx context.Context, documentId uint) error {
	return r.db.WithContext(ctx).
		Where("document_id = ?", documentId).
		Delete(&model.PolicyEmbedding{}).Error
}

func (r *PolicyEmbeddingRepositoryImpl) CountByDocumentId(ctx context.Context, documentId uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PolicyEmbedding{}).
		Where("document_id = ?", documentId).
		Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunks with similarity scores.
// Cosine distance in pgvector is: 1 - cosine_similarity, so we compute
// 1 - (embedding_value <=> query_vector) = cosine_similarity.
func (r *PolicyEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, queryEmbedding []float32, limit int, threshold float64) ([]retrieval.ScoredDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.PolicyEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(queryEmbedding)

	query := r.db.WithContext(ctx).
		Table("policy_embeddings").
		Select("policy_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector)

	if threshold >= 0 {
		query = query.Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold)
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	docs := make([]retrieval.ScoredDocument, len(results))
	for i, res := range results {
		docs[i] = retrieval.ScoredDocument{
			Content:    res.Document,
			Source:     res.Source,
			Category:   res.Category,
			Similarity: res.Similarity,
		}
	}
	return docs, nil
}
