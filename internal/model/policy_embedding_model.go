package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type PolicyEmbedding struct {
	Id             uint            `gorm:"primaryKey;autoIncrement"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	DocumentId     uint            `gorm:"not null;index"`
	Source         string          `gorm:"type:varchar(255);index"`
	Category       string          `gorm:"type:varchar(48);index"`
	ChunkIndex     int             `gorm:"default:0"` // 0-based index for ordering
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (PolicyEmbedding) TableName() string {
	return "policy_embeddings"
}
