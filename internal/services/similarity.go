package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
)

// Embedder turns one piece of text into a fixed-length vector. GeminiService
// satisfies this; tests substitute an in-memory fake.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// SimilarityInput is either a single text or an ordered list of short phrases.
// The two shapes are scored differently and must not be mixed in one call.
type SimilarityInput struct {
	text    string
	phrases []string
	list    bool
}

func Text(s string) SimilarityInput {
	return SimilarityInput{text: s}
}

func Phrases(p []string) SimilarityInput {
	return SimilarityInput{phrases: p, list: true}
}

// SimilarityEngine computes semantic similarity scores in [0,100] between
// texts or phrase lists. It is read-only after construction and safe for
// concurrent use by in-flight requests.
type SimilarityEngine struct {
	embedder      Embedder
	chunker       TextChunker
	maxChunkChars int
	ready         atomic.Bool
}

func NewSimilarityEngine(embedder Embedder) *SimilarityEngine {
	return &SimilarityEngine{
		embedder:      embedder,
		chunker:       NewTextChunker(),
		maxChunkChars: 8000,
	}
}

var (
	defaultEngine     *SimilarityEngine
	defaultEngineOnce sync.Once
)

// InitSimilarityEngine constructs the process-wide engine exactly once.
// Concurrent first callers all receive the same instance.
func InitSimilarityEngine(embedder Embedder) *SimilarityEngine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewSimilarityEngine(embedder)
	})
	return defaultEngine
}

// Warmup verifies the embedding model is reachable. The service must not
// report itself ready until this succeeds; a failure here is fatal at startup.
func (e *SimilarityEngine) Warmup(ctx context.Context) error {
	if e.embedder == nil {
		return fmt.Errorf("embedder is not configured")
	}

	if _, err := e.embedder.GenerateEmbedding(ctx, "warmup probe"); err != nil {
		return fmt.Errorf("embedding model unavailable: %w", err)
	}

	e.ready.Store(true)
	return nil
}

func (e *SimilarityEngine) Ready() bool {
	return e.ready.Load()
}

// Score returns a similarity percentage in [0,100] between a and b.
//
// Two texts are embedded whole (chunked and mean-pooled when long) and
// compared by cosine similarity. Two phrase lists are embedded phrase by
// phrase and mean-pooled per list first, so the result measures concept-space
// overlap rather than phrase-for-phrase matching and is invariant to phrase
// order and count. An empty list on either side returns 0 without touching
// the embedding model, as does a scalar/list shape mismatch. Internal
// failures are logged and scored 0 so one broken sub-score never aborts a
// request.
func (e *SimilarityEngine) Score(ctx context.Context, a, b SimilarityInput) float64 {
	if e.embedder == nil {
		log.Println("⚠️  Similarity engine has no embedder, scoring 0")
		return 0.0
	}

	if a.list != b.list {
		return 0.0
	}

	var vecA, vecB []float32
	var err error

	if a.list {
		if len(a.phrases) == 0 || len(b.phrases) == 0 {
			return 0.0
		}

		vecA, err = e.embedPhrases(ctx, a.phrases)
		if err == nil {
			vecB, err = e.embedPhrases(ctx, b.phrases)
		}
	} else {
		vecA, err = e.EmbedDocument(ctx, a.text)
		if err == nil {
			vecB, err = e.EmbedDocument(ctx, b.text)
		}
	}

	if err != nil {
		log.Printf("⚠️  Similarity scoring failed: %v\n", err)
		return 0.0
	}

	similarity := cosineSimilarity(vecA, vecB)

	score := math.Round(similarity*100*100) / 100
	return math.Max(0.0, math.Min(100.0, score))
}

// EmbedDocument embeds one text. Texts longer than the chunk limit are split
// and the chunk vectors mean-pooled, so arbitrarily long resumes still map to
// a single comparable vector.
func (e *SimilarityEngine) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	if e.embedder == nil {
		return nil, fmt.Errorf("embedder is not configured")
	}

	if len(text) <= e.maxChunkChars {
		return e.embedder.GenerateEmbedding(ctx, text)
	}

	chunks := e.chunker.ChunkText(text, e.maxChunkChars, 200)
	if len(chunks) == 0 {
		return e.embedder.GenerateEmbedding(ctx, text)
	}

	vectors := make([][]float32, 0, len(chunks))
	for _, chunk := range chunks {
		vec, err := e.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk: %w", err)
		}
		vectors = append(vectors, vec)
	}

	return meanVector(vectors)
}

func (e *SimilarityEngine) embedPhrases(ctx context.Context, phrases []string) ([]float32, error) {
	vectors := make([][]float32, 0, len(phrases))
	for _, phrase := range phrases {
		vec, err := e.embedder.GenerateEmbedding(ctx, phrase)
		if err != nil {
			return nil, fmt.Errorf("failed to embed phrase %q: %w", phrase, err)
		}
		vectors = append(vectors, vec)
	}

	return meanVector(vectors)
}

// meanVector is the elementwise mean of a non-empty set of same-length vectors.
func meanVector(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no vectors to average")
	}

	dim := len(vectors[0])
	sums := make([]float64, dim)

	for _, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("vector dimension mismatch: expected %d, got %d", dim, len(vec))
		}
		for i, v := range vec {
			sums[i] += float64(v)
		}
	}

	mean := make([]float32, dim)
	n := float64(len(vectors))
	for i, sum := range sums {
		mean[i] = float32(sum / n)
	}

	return mean, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
