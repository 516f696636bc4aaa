package models

// ScoreComponents are the four sub-scores behind an overall score. The two
// similarity scores are rounded to whole numbers for display; the overall score
// is always computed from the unrounded values.
type ScoreComponents struct {
	ATSCompatibilityScore float64 `json:"ats_compatibility_score"`
	SkillMatchScore       float64 `json:"skill_match_score"`
	ContentQualityScore   int     `json:"content_quality_score"`
	StructureScore        int     `json:"structure_score"`
}

type AnalyzeResponse struct {
	Success                bool               `json:"success"`
	AnalysisID             string             `json:"analysis_id,omitempty"`
	OverallScore           int                `json:"overall_score"`
	Scores                 ScoreComponents    `json:"scores"`
	ImprovementsSuggestion ImprovementSummary `json:"improvements_suggestion"`
}

type SkillsOptimizationResponse struct {
	Success            bool             `json:"success"`
	SkillsOptimization SkillSuggestions `json:"skills_optimization"`
}

type StructureFeedbackResponse struct {
	Success           bool     `json:"success"`
	StructureFeedback Feedback `json:"structure_feedback"`
}

type ContentFeedbackResponse struct {
	Success         bool     `json:"success"`
	ContentFeedback Feedback `json:"content_feedback"`
}

type ToneStyleFeedbackResponse struct {
	Success           bool     `json:"success"`
	ToneStyleFeedback Feedback `json:"tone_style_feedback"`
}

type AnalysisResponse struct {
	ID           string          `json:"id"`
	JobTitle     string          `json:"job_title"`
	OverallScore int             `json:"overall_score"`
	Scores       ScoreComponents `json:"scores"`
	CreatedAt    string          `json:"created_at"`
}

// SimilarResume is one hit from the resume index.
type SimilarResume struct {
	AnalysisID   string  `json:"analysis_id"`
	JobTitle     string  `json:"job_title"`
	OverallScore int     `json:"overall_score"`
	Similarity   float32 `json:"similarity"`
}

type SimilarResumesResponse struct {
	Success bool            `json:"success"`
	Results []SimilarResume `json:"results"`
}
