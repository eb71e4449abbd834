package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ai        AIConfig
	Session   SessionConfig
	Knowledge KnowledgeConfig
	Orders    OrdersConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	LLMProvider       string // "ollama" or "huggingface"
	LLMModel          string
	LLMTimeout        time.Duration
	OllamaBaseURL     string
	HuggingFaceAPIKey string
	EmbeddingProvider string // "ollama", "gemini" or "jina"
	EmbeddingModel    string
	GeminiAPIKey      string
	JinaAPIKey        string
}

type SessionConfig struct {
	Timeout       time.Duration
	SweepInterval time.Duration
}

type KnowledgeConfig struct {
	BasePath     string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
	IndexTopic   string
}

type OrdersConfig struct {
	FilePath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
			LLMTimeout:        getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HuggingFaceAPIKey: getEnv("HUGGINGFACE_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiAPIKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JinaAPIKey:        getEnv("JINA_API_KEY", ""),
		},
		Session: SessionConfig{
			Timeout:       getEnvAsDuration("SESSION_TIMEOUT", 60*time.Minute),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		},
		Knowledge: KnowledgeConfig{
			BasePath:     getEnv("KNOWLEDGE_BASE_PATH", "data/knowledge_base"),
			ChunkSize:    getEnvAsInt("KNOWLEDGE_CHUNK_SIZE", 1000),
			ChunkOverlap: getEnvAsInt("KNOWLEDGE_CHUNK_OVERLAP", 200),
			TopK:         getEnvAsInt("KNOWLEDGE_TOP_K", 4),
			IndexTopic:   getEnv("INDEX_DOCUMENT_TOPIC_NAME", "INDEX_KNOWLEDGE_DOCUMENT"),
		},
		Orders: OrdersConfig{
			FilePath: getEnv("ORDERS_FILE_PATH", "data/orders/sample_orders.json"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
