package dto

import "time"

type HealthResponse struct {
	Status         string    `json:"status"`
	RagInitialized bool      `json:"rag_initialized"`
	ActiveSessions int       `json:"active_sessions"`
	OrdersLoaded   int       `json:"orders_loaded"`
	Timestamp      time.Time `json:"timestamp"`
}
