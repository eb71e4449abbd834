package repository

import (
	"context"

	"support-chatbot-be/internal/entity"
	"support-chatbot-be/internal/mapper"
	"support-chatbot-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ScoredChunk pairs a knowledge chunk with its cosine similarity to a
// query vector.
type ScoredChunk struct {
	Chunk      *entity.KnowledgeChunk
	Similarity float64
}

// KnowledgeRepository persists embedded knowledge-base chunks and
// serves similarity search for retrieval.
type KnowledgeRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error
	DeleteBySource(ctx context.Context, sourcePath string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredChunk, error)
}

type knowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeChunkMapper
}

func NewKnowledgeRepository(db *gorm.DB) KnowledgeRepository {
	return &knowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeChunkMapper(),
	}
}

func (r *knowledgeRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	models := make([]*model.KnowledgeChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ToModel(c)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	// Write generated ids back to the entities
	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *knowledgeRepositoryImpl) DeleteBySource(ctx context.Context, sourcePath string) error {
	return r.db.WithContext(ctx).Where("source_path = ?", sourcePath).Delete(&model.KnowledgeChunk{}).Error
}

func (r *knowledgeRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.KnowledgeChunk{}).Error
}

func (r *knowledgeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KnowledgeChunk{}).Count(&count).Error
	return count, err
}

// SearchSimilar returns the closest chunks by pgvector cosine distance.
// Cosine distance is 1 - cosine_similarity, so similarity is computed
// as 1 - (embedding_value <=> query).
func (r *knowledgeRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredChunk, error) {
	if limit <= 0 {
		limit = 4
	}

	type result struct {
		model.KnowledgeChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("knowledge_chunks").
		Select("knowledge_chunks.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*ScoredChunk, len(results))
	for i, res := range results {
		scored[i] = &ScoredChunk{
			Chunk:      r.mapper.ToEntity(&res.KnowledgeChunk),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
