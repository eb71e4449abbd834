package dto

import "time"

type ChatRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=4000"`
	SessionId string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	SessionId string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionResponse struct {
	SessionId    string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	MessageCount int       `json:"message_count"`
}

type ChatHistoryMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatHistoryResponse struct {
	SessionId     string               `json:"session_id"`
	Messages      []ChatHistoryMessage `json:"messages"`
	TotalMessages int                  `json:"total_messages"`
}
