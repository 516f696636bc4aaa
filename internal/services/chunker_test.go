package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextIsOneChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("Experienced Go engineer.", 1000, 100)

	require.Len(t, chunks, 1)
	assert.Equal(t, "Experienced Go engineer.", chunks[0])
}

func TestChunkText_EmptyTextYieldsNoChunks(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 100))
	assert.Empty(t, chunker.ChunkText("   \n\n  ", 1000, 100))
}

func TestChunkText_SplitsOnParagraphs(t *testing.T) {
	chunker := NewTextChunker()

	paragraph := strings.Repeat("word ", 30)
	text := strings.TrimSpace(paragraph) + "\n\n" + strings.TrimSpace(paragraph) + "\n\n" + strings.TrimSpace(paragraph)

	chunks := chunker.ChunkText(text, 200, 20)

	assert.Greater(t, len(chunks), 1, "text over the limit should split into multiple chunks")
	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestChunkText_OversizedParagraphFallsBackToSentences(t *testing.T) {
	chunker := NewTextChunker()

	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("Delivered a measurable improvement to the ingestion pipeline. ")
	}

	chunks := chunker.ChunkText(b.String(), 200, 20)

	assert.Greater(t, len(chunks), 1)
}

func TestChunkText_ConsecutiveChunksOverlap(t *testing.T) {
	chunker := NewTextChunker()

	paragraph := strings.TrimSpace(strings.Repeat("alpha beta gamma ", 10))
	text := paragraph + "\n\n" + paragraph + "\n\n" + paragraph

	overlap := 30
	chunks := chunker.ChunkText(text, 180, overlap)
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		tail := getLastNChars(chunks[i-1], overlap)
		assert.True(t, strings.HasPrefix(chunks[i], tail),
			"chunk %d should start with the tail of chunk %d", i, i-1)
	}
}

func TestChunkText_DefensiveParameterDefaults(t *testing.T) {
	chunker := NewTextChunker()

	// Zero or negative sizes must not panic or loop forever.
	chunks := chunker.ChunkText("short text", 0, -5)
	require.Len(t, chunks, 1)

	// Overlap larger than the chunk size gets reduced instead of rejected.
	chunks = chunker.ChunkText(strings.Repeat("word ", 100), 50, 500)
	assert.NotEmpty(t, chunks)
}

func TestSplitIntoSentences(t *testing.T) {
	sentences := splitIntoSentences("First point. Second point! Third point? Done")
	assert.Equal(t, []string{"First point", "Second point", "Third point", "Done"}, sentences)

	assert.Empty(t, splitIntoSentences(""))
}

func TestGetLastNChars(t *testing.T) {
	assert.Equal(t, "", getLastNChars("hello", 0))
	assert.Equal(t, "llo", getLastNChars("hello", 3))
	assert.Equal(t, "hello", getLastNChars("hello", 50))
}
