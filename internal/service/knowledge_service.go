package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/internal/repository"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IKnowledgeService interface {
	// QueueAll publishes an indexing job for every document in the
	// knowledge base directory and returns how many were queued.
	QueueAll(ctx context.Context) (int, error)

	// RebuildIndex drops the existing index and queues a full re-index.
	RebuildIndex(ctx context.Context) (*dto.RebuildIndexResponse, error)

	Stats(ctx context.Context) (*dto.KnowledgeStatsResponse, error)
}

type knowledgeService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	basePath      string
	knowledgeRepo repository.KnowledgeRepository
	log           logger.ILogger
}

func NewKnowledgeService(
	pubSub *gochannel.GoChannel,
	topicName string,
	basePath string,
	knowledgeRepo repository.KnowledgeRepository,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		pubSub:        pubSub,
		topicName:     topicName,
		basePath:      basePath,
		knowledgeRepo: knowledgeRepo,
		log:           log,
	}
}

func (ks *knowledgeService) QueueAll(ctx context.Context) (int, error) {
	paths, err := ks.documentPaths()
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, path := range paths {
		if err := ks.publish(path); err != nil {
			ks.log.Error("knowledge", "Failed to publish index job", map[string]interface{}{
				"source_path": path,
				"error":       err.Error(),
			})
			continue
		}
		queued++
	}

	ks.log.Info("knowledge", "Queued knowledge base documents for indexing", map[string]interface{}{
		"queued": queued,
		"total":  len(paths),
	})
	return queued, nil
}

func (ks *knowledgeService) RebuildIndex(ctx context.Context) (*dto.RebuildIndexResponse, error) {
	if err := ks.knowledgeRepo.DeleteAll(ctx); err != nil {
		return nil, err
	}

	queued, err := ks.QueueAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.RebuildIndexResponse{
		Status:        "rebuild queued",
		DocumentsSent: queued,
	}, nil
}

func (ks *knowledgeService) Stats(ctx context.Context) (*dto.KnowledgeStatsResponse, error) {
	count, err := ks.knowledgeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.KnowledgeStatsResponse{ChunkCount: count}, nil
}

func (ks *knowledgeService) publish(sourcePath string) error {
	payload, err := json.Marshal(dto.PublishIndexDocumentMessage{SourcePath: sourcePath})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return ks.pubSub.Publish(ks.topicName, msg)
}

// documentPaths lists the indexable files (.md and .txt) under the
// knowledge base directory.
func (ks *knowledgeService) documentPaths() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(ks.basePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".md" || ext == ".txt" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
