package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-resume-analyzer/internal/models"
)

// FeedbackService produces the categorized textual feedback surfaces. Each
// method returns its schema's safe default when the model call degrades.
type FeedbackService interface {
	SuggestSkills(ctx context.Context, candidate models.CandidateSkills, required models.RequiredSkills, jobTitle string) models.SkillSuggestions
	StructureFeedback(ctx context.Context, resumeText string) models.Feedback
	ContentFeedback(ctx context.Context, resumeText string) models.Feedback
	ToneStyleFeedback(ctx context.Context, resumeText string) models.Feedback
	ImprovementSummary(ctx context.Context, overallScore int, resumeText, jobTitle string) models.ImprovementSummary
}

type feedbackService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	timeout       time.Duration
	maxRetries    int
}

func NewFeedbackService(gemini GeminiService, timeout time.Duration, maxRetries int) FeedbackService {
	return &feedbackService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
		maxRetries:    maxRetries,
	}
}

// SuggestSkills implements FeedbackService.
func (s *feedbackService) SuggestSkills(ctx context.Context, candidate models.CandidateSkills, required models.RequiredSkills, jobTitle string) models.SkillSuggestions {
	currentSkills, _ := json.Marshal(candidate)
	jobRequirements, _ := json.Marshal(required)

	prompt := s.promptBuilder.BuildSkillOptimizationPrompt(string(currentSkills), string(jobRequirements), jobTitle)

	var result models.SkillSuggestions
	if err := callLLM(ctx, s.gemini, prompt, s.timeout, s.maxRetries, &result); err != nil {
		log.Printf("⚠️  Skill suggestion failed: %v\n", err)
		return models.SkillSuggestions{SkillsToAdd: []string{}}
	}

	if result.SkillsToAdd == nil {
		result.SkillsToAdd = []string{}
	}

	return result
}

// StructureFeedback implements FeedbackService.
func (s *feedbackService) StructureFeedback(ctx context.Context, resumeText string) models.Feedback {
	return s.feedback(ctx, s.promptBuilder.BuildStructureFeedbackPrompt(resumeText), "structure")
}

// ContentFeedback implements FeedbackService.
func (s *feedbackService) ContentFeedback(ctx context.Context, resumeText string) models.Feedback {
	return s.feedback(ctx, s.promptBuilder.BuildContentFeedbackPrompt(resumeText), "content")
}

// ToneStyleFeedback implements FeedbackService.
func (s *feedbackService) ToneStyleFeedback(ctx context.Context, resumeText string) models.Feedback {
	return s.feedback(ctx, s.promptBuilder.BuildToneStyleFeedbackPrompt(resumeText), "tone/style")
}

func (s *feedbackService) feedback(ctx context.Context, prompt, kind string) models.Feedback {
	var result models.Feedback
	if err := callLLM(ctx, s.gemini, prompt, s.timeout, s.maxRetries, &result); err != nil {
		log.Printf("⚠️  %s feedback failed: %v\n", kind, err)
		return models.Feedback{KeyPoints: []string{}, HasIssues: true}
	}

	if result.KeyPoints == nil {
		result.KeyPoints = []string{}
	}

	return result
}

// ImprovementSummary implements FeedbackService.
func (s *feedbackService) ImprovementSummary(ctx context.Context, overallScore int, resumeText, jobTitle string) models.ImprovementSummary {
	prompt := s.promptBuilder.BuildImprovementSummaryPrompt(overallScore, resumeText, jobTitle)

	var result models.ImprovementSummary
	if err := callLLM(ctx, s.gemini, prompt, s.timeout, s.maxRetries, &result); err != nil {
		log.Printf("⚠️  Improvement summary failed: %v\n", err)
		return models.ImprovementSummary{KeyPoints: []string{}}
	}

	if result.KeyPoints == nil {
		result.KeyPoints = []string{}
	}

	return result
}
