package validator

import (
	"github.com/go-playground/validator/v10"

	"talentbridge_backend/internal/models"
)

func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("opportunity_type", validOpportunityType); err != nil {
		return err
	}
	return v.RegisterValidation("application_status", validApplicationStatus)
}

func validOpportunityType(fl validator.FieldLevel) bool {
	return models.OpportunityType(fl.Field().String()).Valid()
}

func validApplicationStatus(fl validator.FieldLevel) bool {
	return models.ApplicationStatus(fl.Field().String()).Valid()
}
