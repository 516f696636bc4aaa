package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-analyzer/internal/models"
)

type fakeResumeIndex struct {
	mu      sync.Mutex
	indexed []uuid.UUID
}

func (f *fakeResumeIndex) InitCollection() error { return nil }

func (f *fakeResumeIndex) IndexResume(ctx context.Context, analysisID uuid.UUID, jobTitle string, overallScore int, embedding []float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexed = append(f.indexed, analysisID)
	return nil
}

func (f *fakeResumeIndex) FindSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]models.SimilarResume, error) {
	return nil, nil
}

func (f *fakeResumeIndex) indexedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.indexed)
}

func TestIndexWorker_ProcessesEnqueuedJobs(t *testing.T) {
	engine := NewSimilarityEngine(&fakeEmbedder{fallbck: []float32{1, 0, 0}})
	index := &fakeResumeIndex{}

	worker := NewIndexWorker(engine, index, 2)
	worker.Start(context.Background())

	for i := 0; i < 3; i++ {
		worker.Enqueue(IndexJob{
			AnalysisID:   uuid.New(),
			JobTitle:     "Backend Engineer",
			OverallScore: 80,
			ResumeText:   "Go engineer with production experience.",
		})
	}

	require.Eventually(t, func() bool {
		return index.indexedCount() == 3
	}, 2*time.Second, 10*time.Millisecond)

	worker.Stop()
}

func TestIndexWorker_StopDrainsWorkers(t *testing.T) {
	engine := NewSimilarityEngine(&fakeEmbedder{fallbck: []float32{1, 0, 0}})
	worker := NewIndexWorker(engine, &fakeResumeIndex{}, 2)

	worker.Start(context.Background())

	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestIndexWorker_EnqueueAfterStopDoesNotBlock(t *testing.T) {
	engine := NewSimilarityEngine(&fakeEmbedder{fallbck: []float32{1, 0, 0}})
	index := &fakeResumeIndex{}
	worker := NewIndexWorker(engine, index, 1)

	worker.Start(context.Background())
	worker.Stop()

	done := make(chan struct{})
	go func() {
		worker.Enqueue(IndexJob{AnalysisID: uuid.New(), ResumeText: "text"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked after Stop")
	}

	assert.Equal(t, 0, index.indexedCount())
}
