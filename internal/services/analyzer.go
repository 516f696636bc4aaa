package services

import (
	"context"
	"log"
	"math"
	"sync"

	"ai-resume-analyzer/internal/models"
)

// Overall score weights. Whole-document relevance dominates, skill alignment
// is secondary, content and structure act as tie-breakers. They sum to 1.0.
const (
	atsWeight       = 0.5
	skillWeight     = 0.3
	contentWeight   = 0.1
	structureWeight = 0.1
)

// Technical alignment counts three times as much as soft-skill alignment:
// a technical-fit mismatch is the harder disqualifier.
const (
	techSkillWeight = 0.75
	softSkillWeight = 0.25
)

// Skill category tags matched case-sensitively against model output.
const (
	CategoryTechnical = "TECHNICAL"
	CategorySoft      = "SOFT"
)

// AnalyzeResult is everything one scoring run produced. Request-scoped;
// discarded at response time.
type AnalyzeResult struct {
	OverallScore        int
	Components          models.ScoreComponents
	CandidateSkills     models.CandidateSkills
	RequiredSkills      models.RequiredSkills
	ContentAssessment   models.ContentAssessment
	StructureAssessment models.StructureAssessment
	Improvements        models.ImprovementSummary
}

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, resumeText, jobDescription, jobTitle string) *AnalyzeResult
}

type analyzerService struct {
	engine    *SimilarityEngine
	skills    SkillExtractionService
	assessors QualityAssessorService
	feedback  FeedbackService
}

func NewAnalyzerService(
	engine *SimilarityEngine,
	skills SkillExtractionService,
	assessors QualityAssessorService,
	feedback FeedbackService,
) AnalyzerService {
	return &analyzerService{
		engine:    engine,
		skills:    skills,
		assessors: assessors,
		feedback:  feedback,
	}
}

// AnalyzeResume runs the full scoring pipeline. The four model calls have no
// ordering dependency and run concurrently; aggregation waits for all of
// them, and the improvement summary runs strictly after aggregation because
// it is keyed to the overall score. Upstream failures have already been
// normalized to safe defaults, so this never fails.
func (a *analyzerService) AnalyzeResume(ctx context.Context, resumeText, jobDescription, jobTitle string) *AnalyzeResult {
	var (
		candidateSkills models.CandidateSkills
		requiredSkills  models.RequiredSkills
		content         models.ContentAssessment
		structure       models.StructureAssessment
	)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		candidateSkills = a.skills.ExtractCandidateSkills(ctx, resumeText)
	}()
	go func() {
		defer wg.Done()
		requiredSkills = a.skills.ExtractRequiredSkills(ctx, jobDescription)
	}()
	go func() {
		defer wg.Done()
		content = a.assessors.AssessContent(ctx, resumeText, jobTitle)
	}()
	go func() {
		defer wg.Done()
		structure = a.assessors.AssessStructure(ctx, resumeText)
	}()

	wg.Wait()

	techPhrases := FirstCategorySkills(candidateSkills.SkillSets, CategoryTechnical)
	softPhrases := FirstCategorySkills(candidateSkills.SkillSets, CategorySoft)

	techScore := a.engine.Score(ctx, Phrases(requiredSkills.TechnicalSkills), Phrases(techPhrases))
	softScore := a.engine.Score(ctx, Phrases(requiredSkills.SoftSkills), Phrases(softPhrases))
	skillMatchScore := SkillMatchScore(techScore, softScore)

	atsScore := a.engine.Score(ctx, Text(jobDescription), Text(resumeText))

	overall := OverallScore(atsScore, skillMatchScore, content.Score, structure.Score)

	log.Printf("📊 Scores computed: ats=%.2f skill=%.2f content=%d structure=%d overall=%d\n",
		atsScore, skillMatchScore, content.Score, structure.Score, overall)

	improvements := a.feedback.ImprovementSummary(ctx, overall, resumeText, jobTitle)

	return &AnalyzeResult{
		OverallScore: overall,
		Components: models.ScoreComponents{
			ATSCompatibilityScore: math.Round(atsScore),
			SkillMatchScore:       math.Round(skillMatchScore),
			ContentQualityScore:   content.Score,
			StructureScore:        structure.Score,
		},
		CandidateSkills:     candidateSkills,
		RequiredSkills:      requiredSkills,
		ContentAssessment:   content,
		StructureAssessment: structure,
		Improvements:        improvements,
	}
}

// FirstCategorySkills returns the skill list of the first entry whose
// category tag matches exactly. Later entries with the same tag are ignored;
// unknown tags never match.
func FirstCategorySkills(sets []models.SkillCategory, category string) []string {
	for _, set := range sets {
		if set.Category == category {
			return set.Skills
		}
	}
	return nil
}

// SkillMatchScore blends technical and soft alignment scores.
func SkillMatchScore(techScore, softScore float64) float64 {
	return techSkillWeight*techScore + softSkillWeight*softScore
}

// OverallScore computes the weighted overall score from unrounded component
// values and rounds exactly once, so display rounding of the components never
// compounds into the final number.
func OverallScore(atsScore, skillMatchScore float64, contentScore, structureScore int) int {
	weighted := atsWeight*atsScore +
		skillWeight*skillMatchScore +
		contentWeight*float64(contentScore) +
		structureWeight*float64(structureScore)

	return int(math.Round(weighted))
}
