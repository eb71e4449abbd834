package service

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/entity"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/internal/repository"
	"support-chatbot-be/pkg/embedding"
	"support-chatbot-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService indexes knowledge base documents off the request
// path: it reads the file, splits it into chunks, embeds each chunk,
// and replaces the stored chunks for that source.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	knowledgeRepo     repository.KnowledgeRepository
	embeddingProvider embedding.Provider
	chunkSize         int
	chunkOverlap      int
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	knowledgeRepo repository.KnowledgeRepository,
	embeddingProvider embedding.Provider,
	chunkSize int,
	chunkOverlap int,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		knowledgeRepo:     knowledgeRepo,
		embeddingProvider: embeddingProvider,
		chunkSize:         chunkSize,
		chunkOverlap:      chunkOverlap,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIndexDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("indexer", "Failed to unmarshal index job", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	content, err := os.ReadFile(payload.SourcePath)
	if err != nil {
		cs.log.Error("indexer", "Failed to read document", map[string]interface{}{
			"source_path": payload.SourcePath,
			"error":       err.Error(),
		})
		msg.Ack() // File removed since queuing? Ack.
		return
	}

	chunks := utils.SplitText(string(content), cs.chunkSize, cs.chunkOverlap)

	newChunks := make([]*entity.KnowledgeChunk, 0, len(chunks))
	for i, chunk := range chunks {
		vector, err := cs.embeddingProvider.Embed(ctx, chunk)
		if err != nil {
			cs.log.Error("indexer", "Failed to embed chunk", map[string]interface{}{
				"source_path": payload.SourcePath,
				"chunk_index": i,
				"error":       err.Error(),
			})
			msg.Nack() // Nack for retriable errors
			return
		}

		newChunks = append(newChunks, &entity.KnowledgeChunk{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: vector,
			SourcePath:     payload.SourcePath,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := cs.knowledgeRepo.DeleteBySource(ctx, payload.SourcePath); err != nil {
		cs.log.Error("indexer", "Failed to delete old chunks", map[string]interface{}{
			"source_path": payload.SourcePath,
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	if err := cs.knowledgeRepo.CreateBulk(ctx, newChunks); err != nil {
		cs.log.Error("indexer", "Failed to store chunks", map[string]interface{}{
			"source_path": payload.SourcePath,
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("indexer", "Document indexed", map[string]interface{}{
		"source_path": payload.SourcePath,
		"chunks":      len(newChunks),
	})
	msg.Ack()
}
