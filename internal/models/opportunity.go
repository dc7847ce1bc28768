package models

import (
	"time"

	"gorm.io/datatypes"
)

type Opportunity struct {
	BaseModel
	ProviderID        string          `gorm:"type:uuid;not null;index" json:"provider_id"`
	Title             string          `gorm:"not null" json:"title"`
	Description       string          `gorm:"type:text" json:"description"`
	Type              OpportunityType `gorm:"type:varchar(20);not null" json:"type"`
	Location          string          `json:"location"`
	Tags              datatypes.JSON  `gorm:"type:jsonb" json:"tags"` // ["remote", "part-time", ...]
	CurrentApplicants int             `gorm:"default:0" json:"current_applicants"`
	MaxApplicants     int             `gorm:"default:0" json:"max_applicants"` // 0 = unlimited
	IsActive          bool            `gorm:"default:false" json:"is_active"`
	Deadline          *time.Time      `json:"deadline,omitempty"`

	Provider *User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

// AcceptsApplications reports whether the opportunity may receive a new
// application at the given moment. Deadline exclusion is derived here at
// query time, never stored as a status transition.
func (o *Opportunity) AcceptsApplications(now time.Time) bool {
	if !o.IsActive {
		return false
	}
	if o.Deadline != nil && o.Deadline.Before(now) {
		return false
	}
	return true
}
