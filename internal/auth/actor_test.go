package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talentbridge_backend/internal/models"
)

func TestActorOwnershipChecks(t *testing.T) {
	owner := Actor{ID: "p1", Role: models.UserRoleProvider}
	other := Actor{ID: "p2", Role: models.UserRoleProvider}
	admin := Actor{ID: "a1", Role: models.UserRoleAdmin}
	talent := Actor{ID: "t1", Role: models.UserRoleTalent}

	assert.True(t, owner.CanManageOpportunity("p1"))
	assert.False(t, other.CanManageOpportunity("p1"))
	assert.True(t, admin.CanManageOpportunity("p1"))
	assert.False(t, talent.CanManageOpportunity("p1"))

	assert.True(t, owner.CanReviewApplications("p1"))
	assert.False(t, other.CanReviewApplications("p1"))
	assert.True(t, admin.CanReviewApplications("p1"))
}
