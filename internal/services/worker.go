package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// IndexJob carries one completed analysis to the resume index.
type IndexJob struct {
	AnalysisID   uuid.UUID
	JobTitle     string
	OverallScore int
	ResumeText   string
}

// IndexWorker embeds and indexes analyzed resumes off the request path, so
// indexing latency and failures never touch the analyze response.
type IndexWorker interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(job IndexJob)
}

type indexWorker struct {
	engine      *SimilarityEngine
	resumeIndex ResumeIndexService
	jobQueue    chan IndexJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewIndexWorker(
	engine *SimilarityEngine,
	resumeIndex ResumeIndexService,
	concurrency int,
) IndexWorker {
	return &indexWorker{
		engine:      engine,
		resumeIndex: resumeIndex,
		jobQueue:    make(chan IndexJob, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements IndexWorker.
func (w *indexWorker) Start(ctx context.Context) {
	log.Printf("🚀 Starting index worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements IndexWorker.
func (w *indexWorker) Stop() {
	log.Println("🛑 Stopping index worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Index worker stopped")
}

// Enqueue implements IndexWorker.
func (w *indexWorker) Enqueue(job IndexJob) {
	select {
	case w.jobQueue <- job:
		log.Printf("📥 Index job for analysis %s enqueued\n", job.AnalysisID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue index job for analysis %s\n", job.AnalysisID)
	}
}

func (w *indexWorker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Index worker #%d stopped\n", workerID)
			return
		case job := <-w.jobQueue:
			if err := w.indexResume(ctx, job); err != nil {
				log.Printf("⚠️  Index worker #%d failed to index analysis %s: %v\n", workerID, job.AnalysisID, err)
			} else {
				log.Printf("✅ Index worker #%d indexed analysis %s\n", workerID, job.AnalysisID)
			}
		}
	}
}

func (w *indexWorker) indexResume(ctx context.Context, job IndexJob) error {
	embedding, err := w.engine.EmbedDocument(ctx, job.ResumeText)
	if err != nil {
		return err
	}

	return w.resumeIndex.IndexResume(ctx, job.AnalysisID, job.JobTitle, job.OverallScore, embedding)
}
