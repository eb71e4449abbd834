package prompt

import (
	"fmt"
	"strings"

	"support-chatbot-be/pkg/llm"
	"support-chatbot-be/pkg/rag/resolver"
	"support-chatbot-be/pkg/rag/retriever"
)

const (
	// historyWindow bounds how many recent turns reach the generator.
	historyWindow = 6

	// retrievalContextTurns is how many trailing turns are prepended to
	// the retrieval query; short follow-ups lack standalone retrieval
	// signal on their own.
	retrievalContextTurns = 2

	noContextMarker = "No relevant context found in knowledge base."
	noHistoryMarker = "No previous conversation."
)

// Builder assembles the grounded generation prompt. Build is a pure
// function of its inputs: identical inputs always produce identical
// prompts.
type Builder struct {
	guidelines string
	examples   string
}

// NewBuilder creates a prompt builder with fixed guideline and few-shot
// example text.
func NewBuilder(guidelines, examples string) *Builder {
	return &Builder{
		guidelines: guidelines,
		examples:   examples,
	}
}

// RetrievalQuery widens a query with the trailing turns of conversation
// context. The raw query is used alone when there is no history.
func RetrievalQuery(query string, history []llm.Message) string {
	if len(history) == 0 {
		return query
	}

	start := len(history) - retrievalContextTurns
	if start < 0 {
		start = 0
	}

	parts := make([]string, 0, retrievalContextTurns+1)
	for _, msg := range history[start:] {
		parts = append(parts, msg.Content)
	}
	parts = append(parts, query)
	return strings.Join(parts, " ")
}

// Build produces the final prompt from the raw query, the session
// history, retrieved passages, the optional order-context block, and
// advisory resolution hints.
func (b *Builder) Build(
	query string,
	history []llm.Message,
	passages []retriever.Passage,
	orderContext string,
	hints resolver.Hints,
) string {
	var prompt strings.Builder

	b.writePreamble(&prompt)
	b.writeKnowledgeContext(&prompt, passages, orderContext, hints)
	b.writeHistory(&prompt, history)
	b.writeQuery(&prompt, query)

	return prompt.String()
}

func (b *Builder) writePreamble(prompt *strings.Builder) {
	prompt.WriteString("You are a helpful customer support agent for TechMart, an electronics retailer.\n")
	prompt.WriteString("You handle document-grounded multi-turn support conversations.\n\n")
	prompt.WriteString(b.guidelines)
	prompt.WriteString("\n")
	prompt.WriteString(b.examples)
	prompt.WriteString("\n---\n")
}

func (b *Builder) writeKnowledgeContext(prompt *strings.Builder, passages []retriever.Passage, orderContext string, hints resolver.Hints) {
	prompt.WriteString("## Knowledge Base Context\n")
	prompt.WriteString("The following information is retrieved from our knowledge base:\n\n")

	if len(passages) == 0 {
		prompt.WriteString(noContextMarker)
		prompt.WriteString("\n")
	} else {
		for i, passage := range passages {
			fmt.Fprintf(prompt, "[Document %d]\n%s\n\n", i+1, passage.Text)
		}
	}

	if orderContext != "" {
		prompt.WriteString("\n[Order Information]\n")
		prompt.WriteString(orderContext)
		prompt.WriteString("\n")
	}

	if !hints.Empty() {
		prompt.WriteString("\n[Conversation Hints]\n")
		if hints.LastMentionedEntity != "" {
			fmt.Fprintf(prompt, "Recently discussed product: %s\n", hints.LastMentionedEntity)
		}
		if hints.LastTopic != "" {
			fmt.Fprintf(prompt, "Previous question: %s\n", hints.LastTopic)
		}
	}

	prompt.WriteString("\n---\n")
}

func (b *Builder) writeHistory(prompt *strings.Builder, history []llm.Message) {
	prompt.WriteString("## Current Conversation\n")

	if len(history) == 0 {
		prompt.WriteString(noHistoryMarker)
		prompt.WriteString("\n")
	} else {
		start := len(history) - historyWindow
		if start < 0 {
			start = 0
		}
		for _, msg := range history[start:] {
			fmt.Fprintf(prompt, "%s: %s\n", speakerLabel(msg.Role), msg.Content)
		}
	}

	prompt.WriteString("\n---\n")
}

func (b *Builder) writeQuery(prompt *strings.Builder, query string) {
	prompt.WriteString("## Current Customer Query\n")
	fmt.Fprintf(prompt, "Customer: %s\n\n", query)

	prompt.WriteString("## Instructions\n")
	prompt.WriteString("1. Use ONLY information from the Knowledge Base Context above\n")
	prompt.WriteString("2. Follow the multi-turn dialogue patterns from the examples\n")
	prompt.WriteString("3. If the customer uses pronouns (it, this, that), resolve them from the conversation history\n")
	prompt.WriteString("4. If the question is a follow-up, connect it to the previous context\n")
	prompt.WriteString("5. If the question is ambiguous, ask for clarification rather than guessing\n\n")
	prompt.WriteString("Support Agent:")
}

func speakerLabel(role string) string {
	if role == "assistant" {
		return "Support Agent"
	}
	return "Customer"
}
