package session

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a conversation. Immutable once appended.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds the conversational state for one chat session.
// Instances handed out by the Store are snapshots; all mutation goes
// through Store methods so concurrent turns never share a live slice.
type Session struct {
	ID           string            `json:"session_id"`
	CreatedAt    time.Time         `json:"created_at"`
	LastActivity time.Time         `json:"last_activity"`
	Messages     []Message         `json:"messages"`
	Metadata     map[string]string `json:"metadata"`
}

// Info is the session summary without the full message history.
type Info struct {
	ID           string            `json:"session_id"`
	CreatedAt    time.Time         `json:"created_at"`
	LastActivity time.Time         `json:"last_activity"`
	MessageCount int               `json:"message_count"`
	Metadata     map[string]string `json:"metadata"`
}

func (s *Session) snapshot() Session {
	messages := make([]Message, len(s.Messages))
	copy(messages, s.Messages)

	metadata := make(map[string]string, len(s.Metadata))
	for k, v := range s.Metadata {
		metadata[k] = v
	}

	return Session{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		LastActivity: s.LastActivity,
		Messages:     messages,
		Metadata:     metadata,
	}
}

func (s *Session) info() *Info {
	metadata := make(map[string]string, len(s.Metadata))
	for k, v := range s.Metadata {
		metadata[k] = v
	}

	return &Info{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		LastActivity: s.LastActivity,
		MessageCount: len(s.Messages),
		Metadata:     metadata,
	}
}
