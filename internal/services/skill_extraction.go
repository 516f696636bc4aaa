package services

import (
	"context"
	"log"
	"time"

	"ai-resume-analyzer/internal/models"
)

// Resumes shorter than this carry too little signal for skill extraction and
// skip the model call entirely.
const minSkillExtractionChars = 50

// SkillExtractionService pulls categorized skills out of resumes and required
// skills out of job descriptions. Failures degrade to empty results.
type SkillExtractionService interface {
	ExtractCandidateSkills(ctx context.Context, resumeText string) models.CandidateSkills
	ExtractRequiredSkills(ctx context.Context, jobDescription string) models.RequiredSkills
}

type skillExtractionService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	timeout       time.Duration
	maxRetries    int
}

func NewSkillExtractionService(gemini GeminiService, timeout time.Duration, maxRetries int) SkillExtractionService {
	return &skillExtractionService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
		maxRetries:    maxRetries,
	}
}

// ExtractCandidateSkills implements SkillExtractionService.
func (s *skillExtractionService) ExtractCandidateSkills(ctx context.Context, resumeText string) models.CandidateSkills {
	if len(resumeText) < minSkillExtractionChars {
		log.Println("⚠️  Resume text too short for skill extraction, returning empty skill sets")
		return models.CandidateSkills{SkillSets: []models.SkillCategory{}}
	}

	prompt := s.promptBuilder.BuildCandidateSkillsPrompt(resumeText)

	var result models.CandidateSkills
	if err := callLLM(ctx, s.gemini, prompt, s.timeout, s.maxRetries, &result); err != nil {
		log.Printf("⚠️  Candidate skill extraction failed: %v\n", err)
		return models.CandidateSkills{SkillSets: []models.SkillCategory{}}
	}

	if result.SkillSets == nil {
		result.SkillSets = []models.SkillCategory{}
	}

	return result
}

// ExtractRequiredSkills implements SkillExtractionService.
func (s *skillExtractionService) ExtractRequiredSkills(ctx context.Context, jobDescription string) models.RequiredSkills {
	prompt := s.promptBuilder.BuildRequiredSkillsPrompt(jobDescription)

	var result models.RequiredSkills
	if err := callLLM(ctx, s.gemini, prompt, s.timeout, s.maxRetries, &result); err != nil {
		log.Printf("⚠️  Required skill extraction failed: %v\n", err)
		return models.RequiredSkills{TechnicalSkills: []string{}, SoftSkills: []string{}}
	}

	if result.TechnicalSkills == nil {
		result.TechnicalSkills = []string{}
	}
	if result.SoftSkills == nil {
		result.SoftSkills = []string{}
	}

	return result
}
