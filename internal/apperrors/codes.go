package apperrors

const (
	// General
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Auth
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Users
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyTaken ErrorCode = "EMAIL_ALREADY_TAKEN"
	CodeUserSuspended     ErrorCode = "USER_SUSPENDED"
	CodeUserNotActive     ErrorCode = "USER_NOT_ACTIVE"
	CodeInvalidUserRole   ErrorCode = "INVALID_USER_ROLE"
	CodeInvalidUserStatus ErrorCode = "INVALID_USER_STATUS"
	CodeWeakPassword      ErrorCode = "WEAK_PASSWORD"

	// Opportunities
	CodeOpportunityNotFound  ErrorCode = "OPPORTUNITY_NOT_FOUND"
	CodeOpportunityInactive  ErrorCode = "OPPORTUNITY_INACTIVE"
	CodeOpportunityExpired   ErrorCode = "OPPORTUNITY_EXPIRED"
	CodeInvalidOpportunity   ErrorCode = "INVALID_OPPORTUNITY"
	CodeOpportunityCapacity  ErrorCode = "OPPORTUNITY_CAPACITY_REACHED"
	CodeCannotApplyToOwn     ErrorCode = "CANNOT_APPLY_TO_OWN_OPPORTUNITY"
	CodeOpportunityPublished ErrorCode = "OPPORTUNITY_ALREADY_PUBLISHED"

	// Applications
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeApplicationExists   ErrorCode = "APPLICATION_ALREADY_EXISTS"
	CodeInvalidTransition   ErrorCode = "INVALID_STATUS_TRANSITION"

	// Notifications
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"
)
