package retriever

import (
	"context"
	"fmt"

	"support-chatbot-be/internal/repository"
	"support-chatbot-be/pkg/embedding"
)

// PgVectorRetriever embeds the query and runs cosine-similarity search
// over the knowledge_chunks table.
type PgVectorRetriever struct {
	knowledgeRepo     repository.KnowledgeRepository
	embeddingProvider embedding.Provider
}

var _ Retriever = &PgVectorRetriever{}

func NewPgVectorRetriever(knowledgeRepo repository.KnowledgeRepository, embeddingProvider embedding.Provider) *PgVectorRetriever {
	return &PgVectorRetriever{
		knowledgeRepo:     knowledgeRepo,
		embeddingProvider: embeddingProvider,
	}
}

func (r *PgVectorRetriever) Search(ctx context.Context, query string, k int) ([]Passage, error) {
	vector, err := r.embeddingProvider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.knowledgeRepo.SearchSimilar(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	passages := make([]Passage, len(scored))
	for i, s := range scored {
		passages[i] = Passage{
			Text:  s.Chunk.Document,
			Score: s.Similarity,
		}
	}
	return passages, nil
}
