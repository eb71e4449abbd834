package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText_ShortInput(t *testing.T) {
	chunks := SplitText("short", 100, 20)
	assert.Equal(t, []string{"short"}, chunks)
}

func TestSplitText_Overlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 10) // 100 chars

	chunks := SplitText(text, 40, 10)
	require.True(t, len(chunks) > 1)

	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1]
		overlap := prev[len(prev)-10:]
		assert.True(t, strings.HasPrefix(chunks[i], overlap))
	}
}

func TestSplitText_CoversWholeInput(t *testing.T) {
	text := strings.Repeat("x", 95)

	chunks := SplitText(text, 40, 10)
	last := chunks[len(chunks)-1]
	assert.Equal(t, byte('x'), last[len(last)-1])

	total := 0
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 40)
		total += len(c)
	}
	assert.GreaterOrEqual(t, total, len(text))
}

func TestSplitText_OverlapAtLeastChunkSize(t *testing.T) {
	text := strings.Repeat("y", 50)

	// overlap >= chunkSize falls back to disjoint chunks
	chunks := SplitText(text, 20, 20)
	assert.Equal(t, []string{
		strings.Repeat("y", 20),
		strings.Repeat("y", 20),
		strings.Repeat("y", 10),
	}, chunks)
}
