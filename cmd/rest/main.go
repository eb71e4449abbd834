package main

import (
	"context"
	"log"
	"time"

	"support-chatbot-be/internal/bootstrap"
	"support-chatbot-be/internal/config"
	"support-chatbot-be/internal/server"
	"support-chatbot-be/internal/tracer"
	"support-chatbot-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	ctx := context.Background()

	log.Println("Background: Starting Indexing Consumer...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Panicf("Unable to start indexing consumer: %v", err)
	}

	// Queue the knowledge base for indexing; documents already indexed
	// are replaced per source as jobs complete.
	go func() {
		if _, err := container.KnowledgeService.QueueAll(ctx); err != nil {
			log.Printf("Background: knowledge base indexing failed: %v", err)
		}
	}()

	// Periodic reaper for expired sessions. Lookups already evict
	// lazily; this keeps idle sessions from lingering.
	go func() {
		ticker := time.NewTicker(cfg.Session.SweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			container.ChatbotService.SweepExpiredSessions()
		}
	}()

	container.ChatbotService.MarkReady()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
