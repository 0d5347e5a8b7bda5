package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short text", 1000, 200)

	assert.Equal(t, []string{"short text"}, chunks)
}

func TestSplitTextOverlap(t *testing.T) {
	text := strings.Repeat("a", 25)

	chunks := SplitText(text, 10, 4)

	// step = 6, so chunks start at 0, 6, 12, 18, 24
	assert.Len(t, chunks, 5)
	assert.Equal(t, strings.Repeat("a", 10), chunks[0])
	assert.Equal(t, "a", chunks[4])

	// Adjacent chunks share the overlap region.
	for i := 1; i < len(chunks)-1; i++ {
		assert.Equal(t, chunks[i-1][6:], chunks[i][:4])
	}
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("b", 30)

	chunks := SplitText(text, 10, 10)

	// Falls back to non-overlapping chunks instead of looping forever.
	assert.Equal(t, []string{
		strings.Repeat("b", 10),
		strings.Repeat("b", 10),
		strings.Repeat("b", 10),
	}, chunks)
}

func TestSplitTextMultiByte(t *testing.T) {
	text := strings.Repeat("日", 15)

	chunks := SplitText(text, 10, 0)

	assert.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("日", 10), chunks[0])
	assert.Equal(t, strings.Repeat("日", 5), chunks[1])
}
