package services

import (
	"context"
	"log"
	"time"

	"ai-resume-analyzer/internal/models"
)

// QualityAssessorService grades resume content and structure with the
// generation model. A failed call degrades to a zero score with reasoning
// text explaining the degradation, never to a request failure.
type QualityAssessorService interface {
	AssessContent(ctx context.Context, resumeText, jobTitle string) models.ContentAssessment
	AssessStructure(ctx context.Context, resumeText string) models.StructureAssessment
}

type qualityAssessorService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	timeout       time.Duration
	maxRetries    int
}

func NewQualityAssessorService(gemini GeminiService, timeout time.Duration, maxRetries int) QualityAssessorService {
	return &qualityAssessorService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
		maxRetries:    maxRetries,
	}
}

// AssessContent implements QualityAssessorService.
func (s *qualityAssessorService) AssessContent(ctx context.Context, resumeText, jobTitle string) models.ContentAssessment {
	prompt := s.promptBuilder.BuildContentScorePrompt(resumeText, jobTitle)

	var result models.ContentAssessment
	if err := callLLM(ctx, s.gemini, prompt, s.timeout, s.maxRetries, &result); err != nil {
		log.Printf("⚠️  Content assessment failed: %v\n", err)
		return models.ContentAssessment{
			Score:           0,
			Reasoning:       "Content assessment unavailable.",
			MissingKeywords: []string{},
			ImprovementTips: []string{},
		}
	}

	result.Score = clampScore(result.Score)
	if result.MissingKeywords == nil {
		result.MissingKeywords = []string{}
	}
	if result.ImprovementTips == nil {
		result.ImprovementTips = []string{}
	}

	return result
}

// AssessStructure implements QualityAssessorService.
func (s *qualityAssessorService) AssessStructure(ctx context.Context, resumeText string) models.StructureAssessment {
	prompt := s.promptBuilder.BuildStructureScorePrompt(resumeText)

	var result models.StructureAssessment
	if err := callLLM(ctx, s.gemini, prompt, s.timeout, s.maxRetries, &result); err != nil {
		log.Printf("⚠️  Structure assessment failed: %v\n", err)
		return models.StructureAssessment{
			Score:     0,
			Reasoning: "Structure assessment unavailable.",
		}
	}

	result.Score = clampScore(result.Score)

	return result
}
