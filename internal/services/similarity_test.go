package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	vectors map[string][]float32
	fallbck []float32
	calls   int64
	err     error
}

func (f *fakeEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	if f.fallbck != nil {
		return f.fallbck, nil
	}
	return []float32{1, 0, 0}, nil
}

func (f *fakeEmbedder) callCount() int64 {
	return atomic.LoadInt64(&f.calls)
}

func TestScore_SelfSimilarityIsMaximal(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Python developer with 5 years experience in backend systems": {0.2, 0.7, 0.1},
	}}
	engine := NewSimilarityEngine(embedder)

	text := "Python developer with 5 years experience in backend systems"
	score := engine.Score(context.Background(), Text(text), Text(text))

	assert.InDelta(t, 100.0, score, 0.01)
}

func TestScore_NegativeSimilarityClampsToZero(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {-1, 0},
	}}
	engine := NewSimilarityEngine(embedder)

	score := engine.Score(context.Background(), Text("a"), Text("b"))

	assert.Equal(t, 0.0, score)
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {0.3, 0.9},
		"c": {-0.5, 0.5},
	}}
	engine := NewSimilarityEngine(embedder)

	for _, pair := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}, {"a", "a"}} {
		score := engine.Score(context.Background(), Text(pair[0]), Text(pair[1]))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestScore_EmptyPhraseListShortCircuits(t *testing.T) {
	embedder := &fakeEmbedder{}
	engine := NewSimilarityEngine(embedder)

	score := engine.Score(context.Background(), Phrases(nil), Phrases([]string{"Go"}))
	assert.Equal(t, 0.0, score)

	score = engine.Score(context.Background(), Phrases([]string{"Go"}), Phrases([]string{}))
	assert.Equal(t, 0.0, score)

	// The embedding model must never be invoked for a degenerate input.
	assert.Equal(t, int64(0), embedder.callCount())
}

func TestScore_ShapeMismatchScoresZero(t *testing.T) {
	embedder := &fakeEmbedder{}
	engine := NewSimilarityEngine(embedder)

	score := engine.Score(context.Background(), Text("job description"), Phrases([]string{"Go"}))
	assert.Equal(t, 0.0, score)
	assert.Equal(t, int64(0), embedder.callCount())
}

func TestScore_PhraseOrderAndCountInvariance(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"SQL":           {1, 0},
		"Python":        {0, 1},
		"communication": {0.5, 0.5},
	}}
	engine := NewSimilarityEngine(embedder)
	ctx := context.Background()

	forward := engine.Score(ctx, Phrases([]string{"SQL", "Python"}), Phrases([]string{"communication"}))
	reversed := engine.Score(ctx, Phrases([]string{"Python", "SQL"}), Phrases([]string{"communication"}))

	assert.Equal(t, forward, reversed)
	// mean([1,0],[0,1]) = [0.5,0.5] is exactly the other vector
	assert.InDelta(t, 100.0, forward, 0.01)
}

func TestScore_EmbedderFailureScoresZero(t *testing.T) {
	embedder := &fakeEmbedder{err: fmt.Errorf("model unavailable")}
	engine := NewSimilarityEngine(embedder)

	score := engine.Score(context.Background(), Text("a"), Text("b"))
	assert.Equal(t, 0.0, score)

	score = engine.Score(context.Background(), Phrases([]string{"Go"}), Phrases([]string{"Rust"}))
	assert.Equal(t, 0.0, score)
}

func TestScore_NilEmbedderScoresZero(t *testing.T) {
	engine := NewSimilarityEngine(nil)

	score := engine.Score(context.Background(), Text("a"), Text("b"))
	assert.Equal(t, 0.0, score)
}

func TestScore_ConcurrentUse(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resume": {0.6, 0.8},
		"job":    {0.8, 0.6},
	}}
	engine := NewSimilarityEngine(embedder)

	expected := engine.Score(context.Background(), Text("resume"), Text("job"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			score := engine.Score(context.Background(), Text("resume"), Text("job"))
			assert.Equal(t, expected, score)
		}()
	}
	wg.Wait()
}

func TestWarmup(t *testing.T) {
	t.Run("success marks the engine ready", func(t *testing.T) {
		engine := NewSimilarityEngine(&fakeEmbedder{})
		require.False(t, engine.Ready())

		require.NoError(t, engine.Warmup(context.Background()))
		assert.True(t, engine.Ready())
	})

	t.Run("failure keeps the engine not ready", func(t *testing.T) {
		engine := NewSimilarityEngine(&fakeEmbedder{err: fmt.Errorf("boom")})

		require.Error(t, engine.Warmup(context.Background()))
		assert.False(t, engine.Ready())
	})

	t.Run("nil embedder fails", func(t *testing.T) {
		engine := NewSimilarityEngine(nil)
		require.Error(t, engine.Warmup(context.Background()))
	})
}

func TestEmbedDocument_ChunksLongText(t *testing.T) {
	embedder := &fakeEmbedder{fallbck: []float32{0.5, 0.5}}
	engine := NewSimilarityEngine(embedder)
	engine.maxChunkChars = 100

	longText := strings.Repeat("Delivered measurable impact across projects.\n\n", 20)

	vec, err := engine.EmbedDocument(context.Background(), longText)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, vec)
	assert.Greater(t, embedder.callCount(), int64(1), "long text should be embedded chunk by chunk")
}

func TestMeanVector(t *testing.T) {
	mean, err := meanVector([][]float32{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, mean)

	_, err = meanVector(nil)
	assert.Error(t, err)

	_, err = meanVector([][]float32{{1, 0}, {1, 0, 0}})
	assert.Error(t, err)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 1}, []float32{2, 2}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
