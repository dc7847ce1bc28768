package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title" validate:"required,min=3"`
	Type  string `json:"type" validate:"omitempty,opportunity_type"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email", Title: "ok title"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
	assert.Equal(t, "must be a valid email address", verr.Errors["email"])
}

func TestValidateRequiredAndMin(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "a@b.com", Title: "ab"})
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Contains(t, verr.Errors, "title")

	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", Title: "abc"}))
}

func TestOpportunityTypeRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", Title: "abc", Type: "scholarship"}))

	err := v.Validate(&sampleRequest{Email: "a@b.com", Title: "abc", Type: "lottery"})
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Equal(t, "must be a valid opportunity type", verr.Errors["type"])
}

type statusRequest struct {
	Status string `json:"status" validate:"required,application_status"`
}

func TestApplicationStatusRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&statusRequest{Status: "under_review"}))
	assert.Error(t, v.Validate(&statusRequest{Status: "archived"}))
}
