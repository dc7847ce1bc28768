package services

// ServiceContainer bundles all constructed services for handler wiring.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	OpportunityService  OpportunityService
	ApplicationService  ApplicationService
	NotificationService NotificationService
}
