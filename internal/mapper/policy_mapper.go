package mapper

import (
	"time"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type PolicyDocumentMapper struct{}

func NewPolicyDocumentMapper() *PolicyDocumentMapper {
	return &PolicyDocumentMapper{}
}

func (m *PolicyDocumentMapper) ToEntity(d *model.PolicyDocument) *entity.PolicyDocument {
	if d == nil {
		return nil
	}
	return &entity.PolicyDocument{
		Id:         d.Id,
		Source:     d.Source,
		Title:      d.Title,
		Category:   d.Category,
		Content:    d.Content,
		ChunkCount: d.ChunkCount,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  optionalTime(d.UpdatedAt),
	}
}

func (m *PolicyDocumentMapper) ToModel(d *entity.PolicyDocument) *model.PolicyDocument {
	if d == nil {
		return nil
	}
	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}
	return &model.PolicyDocument{
		Id:         d.Id,
		Source:     d.Source,
		Title:      d.Title,
		Category:   d.Category,
		Content:    d.Content,
		ChunkCount: d.ChunkCount,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

type PolicyEmbeddingMapper struct{}

func NewPolicyEmbeddingMapper() *PolicyEmbeddingMapper {
	return &PolicyEmbeddingMapper{}
}

func (m *PolicyEmbeddingMapper) ToEntity(e *model.PolicyEmbedding) *entity.PolicyEmbedding {
	if e == nil {
		return nil
	}
	return &entity.PolicyEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		DocumentId:     e.DocumentId,
		Source:         e.Source,
		Category:       e.Category,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      optionalTime(e.UpdatedAt),
	}
}

func (m *PolicyEmbeddingMapper) ToModel(e *entity.PolicyEmbedding) *model.PolicyEmbedding {
	if e == nil {
		return nil
	}
	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}
	return &model.PolicyEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		DocumentId:     e.DocumentId,
		Source:         e.Source,
		Category:       e.Category,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *PolicyEmbeddingMapper) ToModels(embeddings []*entity.PolicyEmbedding) []*model.PolicyEmbedding {
	models := make([]*model.PolicyEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
