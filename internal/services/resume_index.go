package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"ai-resume-analyzer/internal/models"
)

// ResumeIndexService keeps a vector index of analyzed resumes so past
// analyses can be retrieved by semantic similarity.
type ResumeIndexService interface {
	InitCollection() error
	IndexResume(ctx context.Context, analysisID uuid.UUID, jobTitle string, overallScore int, embedding []float32) error
	FindSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]models.SimilarResume, error)
}

type resumeIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewResumeIndexService(urlStr, apiKey, collectionName string) (ResumeIndexService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &resumeIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimension
	}, nil
}

// InitCollection implements ResumeIndexService.
func (q *resumeIndexService) InitCollection() error {
	ctx := context.Background()

	// Check if collection exists
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Resume index collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Resume index collection '%s' created successfully\n", q.collectionName)
	return nil
}

// IndexResume implements ResumeIndexService. The analysis ID doubles as the
// point ID so re-indexing the same analysis stays idempotent.
func (q *resumeIndexService) IndexResume(ctx context.Context, analysisID uuid.UUID, jobTitle string, overallScore int, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(analysisID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"analysis_id":   analysisID.String(),
			"job_title":     jobTitle,
			"overall_score": int64(overallScore),
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert resume point: %w", err)
	}

	return nil
}

// FindSimilar implements ResumeIndexService.
func (q *resumeIndexService) FindSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]models.SimilarResume, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search resume index: %w", err)
	}

	var results []models.SimilarResume
	for _, point := range searchResult {
		payload := point.Payload

		result := models.SimilarResume{
			Similarity: point.Score,
		}

		if id, ok := payload["analysis_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_StringValue); ok {
				result.AnalysisID = val.StringValue
			}
		}

		if title, ok := payload["job_title"]; ok {
			if val, ok := title.GetKind().(*qdrant.Value_StringValue); ok {
				result.JobTitle = val.StringValue
			}
		}

		if score, ok := payload["overall_score"]; ok {
			if val, ok := score.GetKind().(*qdrant.Value_IntegerValue); ok {
				result.OverallScore = int(val.IntegerValue)
			}
		}

		results = append(results, result)
	}

	return results, nil
}
