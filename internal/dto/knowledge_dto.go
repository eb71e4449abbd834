package dto

// PublishIndexDocumentMessage is the payload published for each
// knowledge base file queued for (re)indexing.
type PublishIndexDocumentMessage struct {
	SourcePath string `json:"source_path"`
}

type RebuildIndexResponse struct {
	Status        string `json:"status"`
	DocumentsSent int    `json:"documents_sent"`
}

type KnowledgeStatsResponse struct {
	ChunkCount int64 `json:"chunk_count"`
}
