package entity

import "time"

type PolicyDocument struct {
	Id         uint
	Source     string
	Title      string
	Category   string
	Content    string
	ChunkCount int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

type PolicyEmbedding struct {
	Id             uint
	Document       string
	EmbeddingValue []float32
	DocumentId     uint
	Source         string
	Category       string
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
