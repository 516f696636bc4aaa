package main

import (
	"context"
	"log"

	"ai-resume-analyzer/internal/config"
	"ai-resume-analyzer/internal/repositories"
	"ai-resume-analyzer/internal/services"
)

// Rebuilds the Qdrant resume index from stored analyses, for when the
// collection was dropped or the embedding model changed.
func main() {
	log.Println("🚀 Starting resume index backfill...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	docRepo := repositories.NewDocumentRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)

	// Initialize services
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	resumeIndex, err := services.NewResumeIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize resume index: %v", err)
	}

	if err := resumeIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	engine := services.InitSimilarityEngine(geminiService)
	extractor := services.NewDocumentExtractor()

	ctx := context.Background()

	if err := engine.Warmup(ctx); err != nil {
		log.Fatalf("❌ Failed to warm up similarity engine: %v", err)
	}

	analyses, err := analysisRepo.FindRecent(1000)
	if err != nil {
		log.Fatalf("❌ Failed to load analyses: %v", err)
	}

	log.Printf("📋 Found %d analyses to reindex\n", len(analyses))

	indexed := 0
	for _, analysis := range analyses {
		doc, err := docRepo.FindByID(analysis.ResumeDocumentID)
		if err != nil {
			log.Printf("⚠️  Skipping analysis %s: %v\n", analysis.ID, err)
			continue
		}

		resumeText, err := extractor.ExtractText(doc.FilePath)
		if err != nil {
			log.Printf("⚠️  Skipping analysis %s: %v\n", analysis.ID, err)
			continue
		}

		embedding, err := engine.EmbedDocument(ctx, resumeText)
		if err != nil {
			log.Printf("⚠️  Failed to embed analysis %s: %v\n", analysis.ID, err)
			continue
		}

		if err := resumeIndex.IndexResume(ctx, analysis.ID, analysis.JobTitle, analysis.OverallScore, embedding); err != nil {
			log.Printf("⚠️  Failed to index analysis %s: %v\n", analysis.ID, err)
			continue
		}

		indexed++
	}

	log.Printf("✅ Reindexed %d/%d analyses\n", indexed, len(analyses))
}
