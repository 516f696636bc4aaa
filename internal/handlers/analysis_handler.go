package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-analyzer/internal/models"
	"ai-resume-analyzer/internal/repositories"
	"ai-resume-analyzer/internal/services"
)

const similarResultsLimit = 5

type AnalysisHandler struct {
	analysisRepo repositories.AnalysisRepository
	docRepo      repositories.DocumentRepository
	extractor    services.DocumentExtractor
	engine       *services.SimilarityEngine
	resumeIndex  services.ResumeIndexService
}

func NewAnalysisHandler(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	extractor services.DocumentExtractor,
	engine *services.SimilarityEngine,
	resumeIndex services.ResumeIndexService,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisRepo: analysisRepo,
		docRepo:      docRepo,
		extractor:    extractor,
		engine:       engine,
		resumeIndex:  resumeIndex,
	}
}

// HandleGetAnalysis handles GET /analyses/:id
func (h *AnalysisHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	return c.JSON(models.AnalysisResponse{
		ID:           analysis.ID.String(),
		JobTitle:     analysis.JobTitle,
		OverallScore: analysis.OverallScore,
		Scores: models.ScoreComponents{
			ATSCompatibilityScore: analysis.ATSCompatibilityScore,
			SkillMatchScore:       analysis.SkillMatchScore,
			ContentQualityScore:   analysis.ContentQualityScore,
			StructureScore:        analysis.StructureScore,
		},
		CreatedAt: analysis.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}

// HandleFindSimilar handles GET /analyses/:id/similar
func (h *AnalysisHandler) HandleFindSimilar(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	doc, err := h.docRepo.FindByID(analysis.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	resumeText, err := h.extractor.ExtractText(doc.FilePath)
	if err != nil {
		return inputOrServerError(err)
	}

	embedding, err := h.engine.EmbedDocument(c.UserContext(), resumeText)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to embed resume",
		})
	}

	// Ask for one extra hit since the query resume itself is usually indexed.
	hits, err := h.resumeIndex.FindSimilar(c.UserContext(), embedding, similarResultsLimit+1)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to search resume index",
		})
	}

	results := make([]models.SimilarResume, 0, len(hits))
	for _, hit := range hits {
		if hit.AnalysisID == analysis.ID.String() {
			continue
		}
		results = append(results, hit)
		if len(results) == similarResultsLimit {
			break
		}
	}

	return c.JSON(models.SimilarResumesResponse{
		Success: true,
		Results: results,
	})
}
