package dto

import (
	"time"

	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/repositories"
)

type CreateOpportunityRequest struct {
	Title         string     `json:"title" binding:"required" validate:"required,min=3,max=200"`
	Description   string     `json:"description" validate:"max=10000"`
	Type          string     `json:"type" binding:"required" validate:"required,opportunity_type"`
	Location      string     `json:"location" validate:"max=200"`
	Tags          []string   `json:"tags"`
	MaxApplicants int        `json:"max_applicants" validate:"min=0"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

type UpdateOpportunityRequest struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=10000"`
	Type          *string    `json:"type,omitempty" validate:"omitempty,opportunity_type"`
	Location      *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	Tags          []string   `json:"tags,omitempty"`
	MaxApplicants *int       `json:"max_applicants,omitempty" validate:"omitempty,min=0"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

type ListOpportunitiesRequest struct {
	Type     string `form:"type"`
	Location string `form:"location"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Size     int    `form:"page_size"`
}

type OpportunityResponse struct {
	ID                string                          `json:"id"`
	ProviderID        string                          `json:"provider_id"`
	ProviderName      string                          `json:"provider_name,omitempty"`
	Title             string                          `json:"title"`
	Description       string                          `json:"description"`
	Type              models.OpportunityType          `json:"type"`
	Location          string                          `json:"location"`
	Tags              []string                        `json:"tags"`
	CurrentApplicants int                             `json:"current_applicants"`
	MaxApplicants     int                             `json:"max_applicants"`
	IsActive          bool                            `json:"is_active"`
	Deadline          *time.Time                      `json:"deadline,omitempty"`
	CreatedAt         time.Time                       `json:"created_at"`
	Stats             *repositories.ApplicationStats  `json:"stats,omitempty"`
}

type OpportunityListResponse struct {
	Opportunities []*OpportunityResponse `json:"opportunities"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
}
