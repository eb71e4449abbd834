package bootstrap

import (
	"log"

	"support-chatbot-be/internal/config"
	"support-chatbot-be/internal/constant"
	"support-chatbot-be/internal/controller"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/internal/repository"
	"support-chatbot-be/internal/service"
	"support-chatbot-be/pkg/embedding"
	"support-chatbot-be/pkg/embedding/jina"
	"support-chatbot-be/pkg/llm/factory"
	"support-chatbot-be/pkg/orders"
	"support-chatbot-be/pkg/rag/prompt"
	"support-chatbot-be/pkg/rag/retriever"
	"support-chatbot-be/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	OrderController   controller.IOrderController
	AdminController   controller.IAdminController
	HealthController  controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	KnowledgeService service.IKnowledgeService
	ChatbotService   service.IChatbotService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	knowledgeRepo := repository.NewKnowledgeRepository(db)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	case "jina":
		embeddingProvider = jina.NewProvider(cfg.Ai.JinaAPIKey)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	default:
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceAPIKey,
		cfg.Ai.LLMTimeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Domain Stores
	sessionStore := session.NewStore(cfg.Session.Timeout)

	orderStore, err := orders.NewStore(cfg.Orders.FilePath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load order database: %v", err)
	}
	log.Printf("[INFO] Loaded %d orders from database", orderStore.Count())

	docRetriever := retriever.NewPgVectorRetriever(knowledgeRepo, embeddingProvider)
	promptBuilder := prompt.NewBuilder(constant.DialogueGuidelines, constant.DialogueFewShotExamples)

	// 5. Services
	knowledgeService := service.NewKnowledgeService(
		pubSub,
		cfg.Knowledge.IndexTopic,
		cfg.Knowledge.BasePath,
		knowledgeRepo,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Knowledge.IndexTopic,
		knowledgeRepo,
		embeddingProvider,
		cfg.Knowledge.ChunkSize,
		cfg.Knowledge.ChunkOverlap,
		sysLogger,
	)

	chatbotService := service.NewChatbotService(
		sessionStore,
		llmProvider,
		docRetriever,
		promptBuilder,
		orderStore,
		cfg.Knowledge.TopK,
		cfg.Ai.LLMTimeout,
		sysLogger,
	)
	orderService := service.NewOrderService(orderStore)

	// 6. Controllers
	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService),
		OrderController:   controller.NewOrderController(orderService),
		AdminController:   controller.NewAdminController(knowledgeService),
		HealthController:  controller.NewHealthController(chatbotService, orderStore),

		ConsumerService:  consumerService,
		KnowledgeService: knowledgeService,
		ChatbotService:   chatbotService,

		Logger: sysLogger,
	}
}
