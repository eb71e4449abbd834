package resolver

import (
	"regexp"
	"strings"

	"support-chatbot-be/pkg/llm"
)

// Hints are advisory context for the prompt assembler. The query text
// itself is never rewritten; the generator performs the actual
// resolution guided by the prompt instructions.
type Hints struct {
	// LastMentionedEntity is the most recently discussed product when
	// the query contains a pronoun that likely refers back to it.
	LastMentionedEntity string

	// LastTopic is the previous user question when the query looks like
	// an elliptical follow-up ("And the watch?").
	LastTopic string
}

func (h Hints) Empty() bool {
	return h.LastMentionedEntity == "" && h.LastTopic == ""
}

var pronouns = []string{"it", "this", "that", "them", "they", "its", "their"}

// productPattern matches the product naming convention used across the
// knowledge base (brand word followed by a capitalized model name).
var productPattern = regexp.MustCompile(`TechMart [A-Za-z]+ [A-Za-z0-9]+`)

const (
	entityScanWindow  = 4
	ellipsisMaxTokens = 4
)

// Resolve derives resolution hints for a query from the visible
// conversation history. It is a pure function: no state is carried
// across calls, so concurrent sessions cannot leak entities into each
// other.
func Resolve(query string, history []llm.Message) Hints {
	var hints Hints
	if len(history) == 0 {
		return hints
	}

	if containsPronoun(query) {
		hints.LastMentionedEntity = lastMentionedEntity(history)
	}

	if isElliptical(query) {
		hints.LastTopic = lastTopic(history)
	}

	return hints
}

// containsPronoun reports whether the query contains any resolution
// pronoun as a whole word.
func containsPronoun(query string) bool {
	padded := " " + strings.ToLower(query) + " "
	for _, pronoun := range pronouns {
		if strings.Contains(padded, " "+pronoun+" ") {
			return true
		}
	}
	return false
}

// lastMentionedEntity scans the most recent history entries, newest
// first, and returns the first product name found. Empty when the
// window contains no recognizable entity.
func lastMentionedEntity(history []llm.Message) string {
	start := len(history) - entityScanWindow
	if start < 0 {
		start = 0
	}
	for i := len(history) - 1; i >= start; i-- {
		if match := productPattern.FindString(history[i].Content); match != "" {
			return match
		}
	}
	return ""
}

// isElliptical treats short queries as candidate follow-ups that omit
// words recoverable from prior context.
func isElliptical(query string) bool {
	return len(strings.Fields(query)) <= ellipsisMaxTokens
}

// lastTopic returns the most recent prior user message, provided the
// history also contains an assistant reply to anchor the follow-up.
func lastTopic(history []llm.Message) string {
	var lastUser, lastAssistant string
	for i := len(history) - 1; i >= 0; i-- {
		switch history[i].Role {
		case "user":
			if lastUser == "" {
				lastUser = history[i].Content
			}
		case "assistant":
			if lastAssistant == "" {
				lastAssistant = history[i].Content
			}
		}
		if lastUser != "" && lastAssistant != "" {
			break
		}
	}
	if lastUser != "" && lastAssistant != "" {
		return lastUser
	}
	return ""
}
