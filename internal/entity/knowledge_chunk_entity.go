package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeChunk is one embedded slice of a knowledge-base document.
type KnowledgeChunk struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	SourcePath     string
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
