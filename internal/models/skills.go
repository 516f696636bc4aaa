package models

// LLM output schemas. Every field maps 1:1 to the JSON the model is instructed
// to return; callers substitute the zero value of each type when a call fails.

// SkillCategory groups skills under a free-form tag such as TECHNICAL or SOFT.
// Tags are matched case-sensitively; unknown tags are ignored by consumers.
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// CandidateSkills is everything the model extracted from one resume.
type CandidateSkills struct {
	SkillSets []SkillCategory `json:"skill_sets"`
}

// RequiredSkills is what the model extracted from one job description.
type RequiredSkills struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
}

// ContentAssessment scores resume content quality for a target job title.
type ContentAssessment struct {
	Score           int      `json:"score"`
	Reasoning       string   `json:"reasoning"`
	MissingKeywords []string `json:"missing_keywords"`
	ImprovementTips []string `json:"improvement_tips"`
}

// StructureAssessment scores section ordering and layout of the extracted text.
type StructureAssessment struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// SkillSuggestions lists skills worth adding for the target role.
type SkillSuggestions struct {
	SkillsToAdd []string `json:"skills_to_add"`
}

// Feedback carries categorized critique points (structure, content, tone/style).
type Feedback struct {
	KeyPoints []string `json:"key_points"`
	HasIssues bool     `json:"has_issues"`
}

// ImprovementSummary is the score-keyed prioritized improvement list.
type ImprovementSummary struct {
	KeyPoints []string `json:"key_points"`
}
