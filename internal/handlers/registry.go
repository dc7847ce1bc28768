package handlers

// AppHandlers bundles all constructed handlers for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	OpportunityHandler  *OpportunityHandler
	ApplicationHandler  *ApplicationHandler
	NotificationHandler *NotificationHandler
}
