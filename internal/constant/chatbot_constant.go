package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"

	// FallbackReply is the only failure text an end customer ever sees.
	// Generation failures are converted to it at the orchestrator
	// boundary; raw errors never leak into the chat.
	FallbackReply = "I apologize, but I'm having trouble processing your request right now. Please try again or contact our support team directly."
)
