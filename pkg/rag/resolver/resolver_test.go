package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"support-chatbot-be/pkg/llm"
)

func history(turns ...[2]string) []llm.Message {
	msgs := make([]llm.Message, len(turns))
	for i, turn := range turns {
		msgs[i] = llm.Message{Role: turn[0], Content: turn[1]}
	}
	return msgs
}

func TestResolvePronoun(t *testing.T) {
	hist := history(
		[2]string{"user", "Tell me about the Pro Laptop"},
		[2]string{"assistant", "The TechMart Pro Laptop 15 features a 4K display. It's priced at $1299."},
	)

	hints := Resolve("Does it come with a warranty?", hist)
	assert.Equal(t, "TechMart Pro Laptop 15", hints.LastMentionedEntity)
}

func TestResolveNoHistory(t *testing.T) {
	hints := Resolve("Does it come with a warranty?", nil)
	assert.True(t, hints.Empty())
}

func TestResolvePronounWithoutEntity(t *testing.T) {
	hist := history(
		[2]string{"user", "What are your shipping options?"},
		[2]string{"assistant", "We offer Standard, Express, and Next-Day shipping."},
	)

	// A pronoun alone is not enough; the window must contain a
	// recognizable product name.
	hints := Resolve("How much does it cost?", hist)
	assert.Empty(t, hints.LastMentionedEntity)
}

func TestResolveEntityScanWindow(t *testing.T) {
	hist := history(
		[2]string{"user", "Tell me about the TechMart Smart Watch Pro"},
		[2]string{"assistant", "Sure."},
		[2]string{"user", "What colors?"},
		[2]string{"assistant", "Black and silver."},
		[2]string{"user", "Thanks."},
		[2]string{"assistant", "Anything else?"},
	)

	// The entity lies outside the 4-entry scan window.
	hints := Resolve("Is it waterproof?", hist)
	assert.Empty(t, hints.LastMentionedEntity)
}

func TestResolveNewestEntityWins(t *testing.T) {
	hist := history(
		[2]string{"assistant", "The TechMart Smartphone X is priced at $899."},
		[2]string{"assistant", "The TechMart Smart Watch Pro is priced at $349."},
	)

	hints := Resolve("Is it in stock?", hist)
	assert.Equal(t, "TechMart Smart Watch Pro", hints.LastMentionedEntity)
}

func TestResolveEllipsis(t *testing.T) {
	hist := history(
		[2]string{"user", "What's the price of the smartphone?"},
		[2]string{"assistant", "The TechMart Smartphone X is priced at $899."},
	)

	hints := Resolve("And the watch?", hist)
	assert.Equal(t, "What's the price of the smartphone?", hints.LastTopic)
}

func TestResolveEllipsisNeedsBothRoles(t *testing.T) {
	onlyUser := history([2]string{"user", "Hello"})
	hints := Resolve("And the watch?", onlyUser)
	assert.Empty(t, hints.LastTopic)

	onlyAssistant := history([2]string{"assistant", "Hi, how can I help?"})
	hints = Resolve("And the watch?", onlyAssistant)
	assert.Empty(t, hints.LastTopic)
}

func TestResolveLongQueryIsNotElliptical(t *testing.T) {
	hist := history(
		[2]string{"user", "What's the price of the smartphone?"},
		[2]string{"assistant", "The TechMart Smartphone X is priced at $899."},
	)

	hints := Resolve("What is the full spec sheet of the smartphone?", hist)
	assert.Empty(t, hints.LastTopic)
}

func TestContainsPronoun(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"Does it come with a warranty?", true},
		{"this is broken", true},
		{"I want to return them please", true},
		{"What are your shipping options?", false},
		{"Tell me about returns", false},
		{"its battery life is short", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPronoun(tt.query))
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	hist := history(
		[2]string{"user", "Tell me about the TechMart Pro Laptop 15"},
		[2]string{"assistant", "It's a 15.6 inch laptop."},
	)

	first := Resolve("Does it have HDMI?", hist)
	second := Resolve("Does it have HDMI?", hist)
	assert.Equal(t, first, second)
}
