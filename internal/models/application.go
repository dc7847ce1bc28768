package models

import "time"

// Application is an independent fact with two foreign keys: it references an
// Opportunity and an applicant User but is owned by neither. The compound
// unique index is the authoritative duplicate guard per (opportunity, applicant).
type Application struct {
	BaseModel
	OpportunityID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_opportunity_applicant" json:"opportunity_id"`
	ApplicantID   string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_opportunity_applicant" json:"applicant_id"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter   string            `gorm:"type:text" json:"cover_letter"`
	ReviewNotes   string            `gorm:"type:text" json:"review_notes,omitempty"`
	ReviewedBy    *string           `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty"`

	Opportunity *Opportunity `gorm:"foreignKey:OpportunityID" json:"opportunity,omitempty"`
	Applicant   *User        `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}
