package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ai-resume-analyzer/internal/models"
	"ai-resume-analyzer/internal/services"
)

type FeedbackHandler struct {
	storage     services.StorageService
	extractor   services.DocumentExtractor
	skills      services.SkillExtractionService
	feedback    services.FeedbackService
	maxFileSize int64
}

func NewFeedbackHandler(
	storage services.StorageService,
	extractor services.DocumentExtractor,
	skills services.SkillExtractionService,
	feedback services.FeedbackService,
	maxFileSize int64,
) *FeedbackHandler {
	return &FeedbackHandler{
		storage:     storage,
		extractor:   extractor,
		skills:      skills,
		feedback:    feedback,
		maxFileSize: maxFileSize,
	}
}

// HandleOptimizeSkills handles POST /optimize-skills
func (h *FeedbackHandler) HandleOptimizeSkills(c *fiber.Ctx) error {
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

	resumeText, err := extractUploadedResume(c, h.storage, h.extractor, h.maxFileSize)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	candidateSkills := h.skills.ExtractCandidateSkills(ctx, resumeText)
	requiredSkills := h.skills.ExtractRequiredSkills(ctx, jobDescription)

	suggestions := h.feedback.SuggestSkills(ctx, candidateSkills, requiredSkills, jobTitle)

	return c.JSON(models.SkillsOptimizationResponse{
		Success:            true,
		SkillsOptimization: suggestions,
	})
}

// HandleStructureFeedback handles POST /optimize_structure_feedback
func (h *FeedbackHandler) HandleStructureFeedback(c *fiber.Ctx) error {
	resumeText, err := extractUploadedResume(c, h.storage, h.extractor, h.maxFileSize)
	if err != nil {
		return err
	}

	feedback := h.feedback.StructureFeedback(c.UserContext(), resumeText)

	return c.JSON(models.StructureFeedbackResponse{
		Success:           true,
		StructureFeedback: feedback,
	})
}

// HandleContentFeedback handles POST /optimize_content_feedback
func (h *FeedbackHandler) HandleContentFeedback(c *fiber.Ctx) error {
	resumeText, err := extractUploadedResume(c, h.storage, h.extractor, h.maxFileSize)
	if err != nil {
		return err
	}

	feedback := h.feedback.ContentFeedback(c.UserContext(), resumeText)

	return c.JSON(models.ContentFeedbackResponse{
		Success:         true,
		ContentFeedback: feedback,
	})
}

// HandleToneStyleFeedback handles POST /optimize_tone_style_feedback
func (h *FeedbackHandler) HandleToneStyleFeedback(c *fiber.Ctx) error {
	resumeText, err := extractUploadedResume(c, h.storage, h.extractor, h.maxFileSize)
	if err != nil {
		return err
	}

	feedback := h.feedback.ToneStyleFeedback(c.UserContext(), resumeText)

	return c.JSON(models.ToneStyleFeedbackResponse{
		Success:           true,
		ToneStyleFeedback: feedback,
	})
}
