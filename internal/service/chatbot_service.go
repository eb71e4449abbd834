package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"support-chatbot-be/internal/constant"
	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/pkg/llm"
	"support-chatbot-be/pkg/orders"
	"support-chatbot-be/pkg/rag/prompt"
	"support-chatbot-be/pkg/rag/resolver"
	"support-chatbot-be/pkg/rag/retriever"
	"support-chatbot-be/pkg/session"
)

// ErrNotReady is returned while the retrieval pipeline is still
// warming up. No session state is touched in that case.
var ErrNotReady = errors.New("service is still initializing, please try again shortly")

// ErrNotFound is the generic lookup miss for non-session resources.
var ErrNotFound = errors.New("resource not found")

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	CreateSession(ctx context.Context) (*dto.SessionResponse, error)
	GetSessionInfo(ctx context.Context, sessionId string) (*dto.SessionResponse, error)
	GetChatHistory(ctx context.Context, sessionId string, limit int) (*dto.ChatHistoryResponse, error)
	ClearSession(ctx context.Context, sessionId string) error
	DeleteSession(ctx context.Context, sessionId string) error
	ActiveSessions() int
	SweepExpiredSessions() int
	Ready() bool
	MarkReady()
}

// chatbotService runs the per-turn pipeline: resolve references,
// collect order context, retrieve passages, build the prompt, generate,
// and commit both turns to the session.
type chatbotService struct {
	sessions      *session.Store
	llmProvider   llm.LLMProvider
	docRetriever  retriever.Retriever
	promptBuilder *prompt.Builder
	orderStore    *orders.Store
	topK          int
	llmTimeout    time.Duration
	log           logger.ILogger

	ready atomic.Bool
}

func NewChatbotService(
	sessions *session.Store,
	llmProvider llm.LLMProvider,
	docRetriever retriever.Retriever,
	promptBuilder *prompt.Builder,
	orderStore *orders.Store,
	topK int,
	llmTimeout time.Duration,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		sessions:      sessions,
		llmProvider:   llmProvider,
		docRetriever:  docRetriever,
		promptBuilder: promptBuilder,
		orderStore:    orderStore,
		topK:          topK,
		llmTimeout:    llmTimeout,
		log:           log,
	}
}

func (cs *chatbotService) Ready() bool {
	return cs.ready.Load()
}

// MarkReady opens the chat pipeline. Called once startup indexing has
// been kicked off and the order database is loaded.
func (cs *chatbotService) MarkReady() {
	cs.ready.Store(true)
}

// Chat processes one customer turn.
func (cs *chatbotService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	// Readiness is checked before any session mutation so a rejected
	// turn leaves no trace.
	if !cs.Ready() {
		return nil, ErrNotReady
	}

	sess := cs.sessions.GetOrCreate(request.SessionId)

	// The pre-turn history feeds resolution, retrieval, and the prompt;
	// the current message must not see itself as context.
	history := toLLMMessages(sess.Messages)

	if _, err := cs.sessions.Append(sess.ID, session.RoleUser, request.Message); err != nil {
		return nil, err
	}

	hints := resolver.Resolve(request.Message, history)
	orderContext := cs.orderStore.ExtractContext(request.Message, history)

	passages := cs.retrieve(ctx, request.Message, history)

	promptText := cs.promptBuilder.Build(request.Message, history, passages, orderContext, hints)

	reply := cs.generate(ctx, sess.ID, promptText)

	if _, err := cs.sessions.Append(sess.ID, session.RoleAssistant, reply); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Response:  reply,
		SessionId: sess.ID,
		Timestamp: time.Now(),
	}, nil
}

// retrieve degrades to no passages on failure; a broken knowledge base
// must not take the chat down.
func (cs *chatbotService) retrieve(ctx context.Context, query string, history []llm.Message) []retriever.Passage {
	retrievalQuery := prompt.RetrievalQuery(query, history)

	passages, err := cs.docRetriever.Search(ctx, retrievalQuery, cs.topK)
	if err != nil {
		cs.log.Warn("chatbot", "Knowledge retrieval failed, continuing without context", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return passages
}

// generate turns any provider failure into the fallback reply. The
// fallback is committed to the session like a normal assistant turn.
func (cs *chatbotService) generate(ctx context.Context, sessionId, promptText string) string {
	genCtx, cancel := context.WithTimeout(ctx, cs.llmTimeout)
	defer cancel()

	reply, err := cs.llmProvider.Generate(genCtx, promptText)
	if err != nil {
		cs.log.Error("chatbot", "Generation failed, returning fallback reply", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return constant.FallbackReply
	}
	return reply
}

func (cs *chatbotService) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	sess := cs.sessions.Create(nil)

	return &dto.SessionResponse{
		SessionId:    sess.ID,
		CreatedAt:    sess.CreatedAt,
		MessageCount: 0,
	}, nil
}

func (cs *chatbotService) GetSessionInfo(ctx context.Context, sessionId string) (*dto.SessionResponse, error) {
	info, err := cs.sessions.Info(sessionId)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		SessionId:    info.ID,
		CreatedAt:    info.CreatedAt,
		MessageCount: info.MessageCount,
	}, nil
}

func (cs *chatbotService) GetChatHistory(ctx context.Context, sessionId string, limit int) (*dto.ChatHistoryResponse, error) {
	info, err := cs.sessions.Info(sessionId)
	if err != nil {
		return nil, err
	}

	messages, err := cs.sessions.History(sessionId, limit)
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatHistoryMessage, len(messages))
	for i, msg := range messages {
		history[i] = dto.ChatHistoryMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		}
	}

	return &dto.ChatHistoryResponse{
		SessionId:     sessionId,
		Messages:      history,
		TotalMessages: info.MessageCount,
	}, nil
}

func (cs *chatbotService) ClearSession(ctx context.Context, sessionId string) error {
	if !cs.sessions.Clear(sessionId) {
		return session.ErrNotFound
	}
	return nil
}

func (cs *chatbotService) DeleteSession(ctx context.Context, sessionId string) error {
	if !cs.sessions.Delete(sessionId) {
		return session.ErrNotFound
	}
	return nil
}

func (cs *chatbotService) ActiveSessions() int {
	return cs.sessions.ActiveCount()
}

// SweepExpiredSessions is invoked by the periodic reaper in main.
func (cs *chatbotService) SweepExpiredSessions() int {
	removed := cs.sessions.SweepExpired()
	if removed > 0 {
		cs.log.Info("chatbot", "Swept expired sessions", map[string]interface{}{
			"removed": removed,
		})
	}
	return removed
}

func toLLMMessages(messages []session.Message) []llm.Message {
	out := make([]llm.Message, len(messages))
	for i, msg := range messages {
		out[i] = llm.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return out
}
