package models

type UserRole string
type UserStatus string
type OpportunityType string
type ApplicationStatus string

const (
	UserRoleTalent   UserRole = "talent"
	UserRoleProvider UserRole = "provider"
	UserRoleAdmin    UserRole = "admin"

	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusRejected  UserStatus = "rejected"

	OpportunityTypeJob         OpportunityType = "job"
	OpportunityTypeScholarship OpportunityType = "scholarship"
	OpportunityTypeInternship  OpportunityType = "internship"
	OpportunityTypeMentorship  OpportunityType = "mentorship"
	OpportunityTypeFunding     OpportunityType = "funding"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// ReviewerStatuses are the statuses a provider or admin may assign through
// the review flow. Withdrawn is reserved for the applicant.
var ReviewerStatuses = map[ApplicationStatus]bool{
	ApplicationStatusPending:     true,
	ApplicationStatusUnderReview: true,
	ApplicationStatusAccepted:    true,
	ApplicationStatusRejected:    true,
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusUnderReview,
		ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

func (t OpportunityType) Valid() bool {
	switch t {
	case OpportunityTypeJob, OpportunityTypeScholarship, OpportunityTypeInternship,
		OpportunityTypeMentorship, OpportunityTypeFunding:
		return true
	}
	return false
}
