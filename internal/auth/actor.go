package auth

import "talentbridge_backend/internal/models"

// Actor is the authenticated caller as supplied by the transport layer.
// Services trust it and perform no credential verification of their own.
type Actor struct {
	ID   string
	Role models.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.UserRoleAdmin
}

func (a Actor) IsProvider() bool {
	return a.Role == models.UserRoleProvider
}

func (a Actor) IsTalent() bool {
	return a.Role == models.UserRoleTalent
}

// CanManageOpportunity reports whether the actor may mutate an opportunity
// owned by providerID. Ownership is the authorization boundary; admins
// override it.
func (a Actor) CanManageOpportunity(providerID string) bool {
	return a.IsAdmin() || a.ID == providerID
}

// CanReviewApplications reports whether the actor may transition applications
// against an opportunity owned by providerID.
func (a Actor) CanReviewApplications(providerID string) bool {
	return a.IsAdmin() || a.ID == providerID
}
