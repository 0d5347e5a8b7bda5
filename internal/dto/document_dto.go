package dto

import "time"

type IngestDirectoryRequest struct {
	Path string `json:"path" validate:"required"`
}

type IngestResult struct {
	Ingested []string `json:"ingested"`
	Skipped  []string `json:"skipped"`
}

type DocumentItem struct {
	Id         uint      `json:"id"`
	Source     string    `json:"source"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// PublishEmbedChunkMessage is the payload placed on the embedding topic
// after a document is stored; the consumer picks it up asynchronously.
type PublishEmbedChunkMessage struct {
	DocumentId uint `json:"document_id"`
}
