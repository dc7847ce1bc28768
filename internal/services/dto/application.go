package dto

import (
	"time"

	"talentbridge_backend/internal/models"
)

type SubmitApplicationRequest struct {
	CoverLetter string `json:"cover_letter" validate:"max=10000"`
}

type TransitionApplicationRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" validate:"required,application_status"`
	Notes  string                   `json:"notes" validate:"max=10000"`
}

type WithdrawApplicationRequest struct {
	Reason string `json:"reason" validate:"max=2000"`
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	OpportunityID string                   `json:"opportunity_id"`
	ApplicantID   string                   `json:"applicant_id"`
	ApplicantName string                   `json:"applicant_name,omitempty"`
	Opportunity   string                   `json:"opportunity_title,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	CoverLetter   string                   `json:"cover_letter"`
	ReviewNotes   string                   `json:"review_notes,omitempty"`
	ReviewedBy    *string                  `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time               `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`

	// Warnings report best-effort side effects that failed (counter bump,
	// notification emission). The application itself was persisted.
	Warnings []string `json:"warnings,omitempty"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int                    `json:"total"`
}

func NewApplicationResponse(application *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:            application.ID,
		OpportunityID: application.OpportunityID,
		ApplicantID:   application.ApplicantID,
		Status:        application.Status,
		CoverLetter:   application.CoverLetter,
		ReviewNotes:   application.ReviewNotes,
		ReviewedBy:    application.ReviewedBy,
		ReviewedAt:    application.ReviewedAt,
		CreatedAt:     application.CreatedAt,
	}
	if application.Applicant != nil {
		resp.ApplicantName = application.Applicant.Name
	}
	if application.Opportunity != nil {
		resp.Opportunity = application.Opportunity.Title
	}
	return resp
}
