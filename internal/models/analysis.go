package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is one stored scoring run of a resume against a job description.
type Analysis struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeDocumentID      uuid.UUID `gorm:"type:uuid;not null" json:"resume_document_id"`
	JobTitle              string    `gorm:"type:text" json:"job_title"`
	OverallScore          int       `gorm:"not null" json:"overall_score"`
	ATSCompatibilityScore float64   `gorm:"type:decimal(5,2)" json:"ats_compatibility_score"`
	SkillMatchScore       float64   `gorm:"type:decimal(5,2)" json:"skill_match_score"`
	ContentQualityScore   int       `json:"content_quality_score"`
	StructureScore        int       `json:"structure_score"`
	CreatedAt             time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt             time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
