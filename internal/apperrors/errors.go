package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

// AppError is the typed failure every service operation returns. HTTPCode is
// transport mapping only; it never leaks into the JSON body.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

var (
	// Auth
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound      = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyTaken = New(CodeEmailAlreadyTaken, "Email already registered", http.StatusConflict)
	ErrUserSuspended     = New(CodeUserSuspended, "User account suspended", http.StatusForbidden)
	ErrUserNotActive     = New(CodeUserNotActive, "User account is not active", http.StatusForbidden)
	ErrInvalidUserRole   = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrInvalidUserStatus = New(CodeInvalidUserStatus, "Invalid user status", http.StatusBadRequest)
	ErrWeakPassword      = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)

	// Opportunities
	ErrOpportunityNotFound         = New(CodeOpportunityNotFound, "Opportunity not found", http.StatusNotFound)
	ErrOpportunityInactive         = New(CodeOpportunityInactive, "Opportunity is not accepting applications", http.StatusUnprocessableEntity)
	ErrOpportunityExpired          = New(CodeOpportunityExpired, "Opportunity deadline has passed", http.StatusUnprocessableEntity)
	ErrOpportunityCapacityReached  = New(CodeOpportunityCapacity, "Opportunity has reached its applicant limit", http.StatusUnprocessableEntity)
	ErrCannotApplyToOwn            = New(CodeCannotApplyToOwn, "Cannot apply to your own opportunity", http.StatusBadRequest)
	ErrOpportunityAlreadyPublished = New(CodeOpportunityPublished, "Opportunity is already published", http.StatusConflict)

	// Applications
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrApplicationExists   = New(CodeApplicationExists, "Application already exists for this opportunity", http.StatusConflict)
	ErrInvalidTransition   = New(CodeInvalidTransition, "Status value is not assignable", http.StatusBadRequest)

	// Notifications
	ErrNotificationNotFound = New(CodeNotificationNotFound, "Notification not found", http.StatusNotFound)
)

func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "Validation failed", http.StatusBadRequest).WithDetails(details)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}
