package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-analyzer/internal/models"
	"ai-resume-analyzer/internal/repositories"
	"ai-resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	docRepo      repositories.DocumentRepository
	analysisRepo repositories.AnalysisRepository
	storage      services.StorageService
	extractor    services.DocumentExtractor
	analyzer     services.AnalyzerService
	indexWorker  services.IndexWorker
	maxFileSize  int64
}

func NewAnalyzeHandler(
	docRepo repositories.DocumentRepository,
	analysisRepo repositories.AnalysisRepository,
	storage services.StorageService,
	extractor services.DocumentExtractor,
	analyzer services.AnalyzerService,
	indexWorker services.IndexWorker,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		docRepo:      docRepo,
		analysisRepo: analysisRepo,
		storage:      storage,
		extractor:    extractor,
		analyzer:     analyzer,
		indexWorker:  indexWorker,
		maxFileSize:  maxFileSize,
	}
}

// HandleAnalyzeResume handles POST /analyze_resume
func (h *AnalyzeHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	jobTitle := c.FormValue("job_title")
	if jobTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_title is required",
		})
	}

	file, err := resumeFormFile(c, h.maxFileSize)
	if err != nil {
		return err
	}

	// Save the upload before touching its contents
	filename, filePath, err := h.storage.SaveFile(file, "resume")
	if err != nil {
		return inputOrServerError(err)
	}

	resumeText, err := h.extractor.ExtractText(filePath)
	if err != nil {
		h.storage.DeleteFile(filename)
		return inputOrServerError(err)
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FileType:         "resume",
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save resume document record",
		})
	}

	result := h.analyzer.AnalyzeResume(c.UserContext(), resumeText, jobDescription, jobTitle)

	analysis := &models.Analysis{
		ID:                    uuid.New(),
		ResumeDocumentID:      doc.ID,
		JobTitle:              jobTitle,
		OverallScore:          result.OverallScore,
		ATSCompatibilityScore: result.Components.ATSCompatibilityScore,
		SkillMatchScore:       result.Components.SkillMatchScore,
		ContentQualityScore:   result.Components.ContentQualityScore,
		StructureScore:        result.Components.StructureScore,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}

	response := models.AnalyzeResponse{
		Success:                true,
		OverallScore:           result.OverallScore,
		Scores:                 result.Components,
		ImprovementsSuggestion: result.Improvements,
	}

	// History and indexing are best-effort: the scores are already computed
	// and the caller gets them either way.
	if err := h.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to persist analysis: %v\n", err)
	} else {
		response.AnalysisID = analysis.ID.String()
		h.indexWorker.Enqueue(services.IndexJob{
			AnalysisID:   analysis.ID,
			JobTitle:     jobTitle,
			OverallScore: result.OverallScore,
			ResumeText:   resumeText,
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
