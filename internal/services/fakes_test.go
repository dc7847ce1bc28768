package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"talentbridge_backend/internal/email"
	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/repositories"
)

// In-memory repository fakes. They reproduce the contracts the gorm
// implementations provide, including the duplicate-pair rejection the
// unique index enforces, so service behavior under races is testable
// without a database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Status = status
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.LastLoginAt = &at
	return nil
}

func (r *fakeUserRepo) Deactivate(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsActive = false
	return nil
}

func (r *fakeUserRepo) FindActiveTalents() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var talents []models.User
	for _, user := range r.users {
		if user.Role == models.UserRoleTalent && user.Status == models.UserStatusActive && user.IsActive {
			talents = append(talents, *user)
		}
	}
	return talents, nil
}

func (r *fakeUserRepo) FindWithFilter(criteria repositories.UserFilter) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []models.User
	for _, user := range r.users {
		if criteria.Role != "" && user.Role != criteria.Role {
			continue
		}
		if criteria.Status != "" && user.Status != criteria.Status {
			continue
		}
		users = append(users, *user)
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeOpportunityRepo struct {
	mu            sync.Mutex
	opportunities map[string]*models.Opportunity
	failIncrement bool
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{opportunities: make(map[string]*models.Opportunity)}
}

func (r *fakeOpportunityRepo) add(opportunity *models.Opportunity) *models.Opportunity {
	r.mu.Lock()
	defer r.mu.Unlock()
	if opportunity.ID == "" {
		opportunity.ID = uuid.NewString()
	}
	opportunity.CreatedAt = time.Now()
	r.opportunities[opportunity.ID] = opportunity
	return opportunity
}

func (r *fakeOpportunityRepo) Create(opportunity *models.Opportunity) error {
	r.add(opportunity)
	return nil
}

func (r *fakeOpportunityRepo) FindByID(id string) (*models.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	opportunity, ok := r.opportunities[id]
	if !ok {
		return nil, repositories.ErrOpportunityNotFound
	}
	clone := *opportunity
	return &clone, nil
}

func (r *fakeOpportunityRepo) Update(opportunity *models.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.opportunities[opportunity.ID]; !ok {
		return repositories.ErrOpportunityNotFound
	}
	clone := *opportunity
	r.opportunities[opportunity.ID] = &clone
	return nil
}

func (r *fakeOpportunityRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.opportunities[id]; !ok {
		return repositories.ErrOpportunityNotFound
	}
	delete(r.opportunities, id)
	return nil
}

func (r *fakeOpportunityRepo) IncrementApplicants(id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIncrement {
		return fmt.Errorf("increment unavailable")
	}
	opportunity, ok := r.opportunities[id]
	if !ok {
		return repositories.ErrOpportunityNotFound
	}
	opportunity.CurrentApplicants += delta
	return nil
}

func (r *fakeOpportunityRepo) FindPublic(criteria repositories.OpportunityFilter) ([]models.Opportunity, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var result []models.Opportunity
	for _, opportunity := range r.opportunities {
		if !opportunity.AcceptsApplications(now) {
			continue
		}
		if criteria.Type != "" && opportunity.Type != criteria.Type {
			continue
		}
		result = append(result, *opportunity)
	}
	return result, int64(len(result)), nil
}

func (r *fakeOpportunityRepo) FindByProvider(providerID string) ([]models.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Opportunity
	for _, opportunity := range r.opportunities {
		if opportunity.ProviderID == providerID {
			result = append(result, *opportunity)
		}
	}
	return result, nil
}

func (r *fakeOpportunityRepo) DeactivateExpired(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var affected int64
	for _, opportunity := range r.opportunities {
		if opportunity.IsActive && opportunity.Deadline != nil && opportunity.Deadline.Before(now) {
			opportunity.IsActive = false
			affected++
		}
	}
	return affected, nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	pairs        map[string]string // "opportunityID/applicantID" -> application ID
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*models.Application),
		pairs:        make(map[string]string),
	}
}

func pairKey(opportunityID, applicantID string) string {
	return opportunityID + "/" + applicantID
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey(application.OpportunityID, application.ApplicantID)
	if _, exists := r.pairs[key]; exists {
		return repositories.ErrApplicationAlreadyExists
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.CreatedAt = time.Now()
	clone := *application
	r.applications[application.ID] = &clone
	r.pairs[key] = application.ID
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	clone := *application
	return &clone, nil
}

func (r *fakeApplicationRepo) FindByPair(opportunityID, applicantID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.pairs[pairKey(opportunityID, applicantID)]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	clone := *r.applications[id]
	return &clone, nil
}

func (r *fakeApplicationRepo) FindByOpportunity(opportunityID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Application
	for _, application := range r.applications {
		if application.OpportunityID == opportunityID {
			result = append(result, *application)
		}
	}
	return result, nil
}

func (r *fakeApplicationRepo) FindByApplicant(applicantID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Application
	for _, application := range r.applications {
		if application.ApplicantID == applicantID {
			result = append(result, *application)
		}
	}
	return result, nil
}

func (r *fakeApplicationRepo) UpdateReview(id string, status models.ApplicationStatus, notes string, reviewerID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Status = status
	application.ReviewNotes = notes
	application.ReviewedBy = &reviewerID
	application.ReviewedAt = &at
	return nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Status = status
	return nil
}

func (r *fakeApplicationRepo) CountByOpportunity(opportunityID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, application := range r.applications {
		if application.OpportunityID == opportunityID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) StatsByOpportunity(opportunityID string) (*repositories.ApplicationStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &repositories.ApplicationStats{}
	for _, application := range r.applications {
		if application.OpportunityID != opportunityID {
			continue
		}
		stats.Total++
		switch application.Status {
		case models.ApplicationStatusPending:
			stats.Pending++
		case models.ApplicationStatusUnderReview:
			stats.UnderReview++
		case models.ApplicationStatusAccepted:
			stats.Accepted++
		case models.ApplicationStatusRejected:
			stats.Rejected++
		case models.ApplicationStatusWithdrawn:
			stats.Withdrawn++
		}
	}
	return stats, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*models.Notification
	failCreate    bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return fmt.Errorf("notification store unavailable")
	}
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notification.CreatedAt = time.Now()
	clone := *notification
	r.notifications[notification.ID] = &clone
	return nil
}

func (r *fakeNotificationRepo) CreateBulk(notifications []*models.Notification) error {
	for _, notification := range notifications {
		if err := r.Create(notification); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok {
		return nil, repositories.ErrNotificationNotFound
	}
	clone := *notification
	return &clone, nil
}

func (r *fakeNotificationRepo) FindByUser(userID string, criteria repositories.NotificationFilter) ([]models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Notification
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			continue
		}
		if criteria.UnreadOnly && notification.IsRead {
			continue
		}
		if criteria.Type != "" && notification.Type != criteria.Type {
			continue
		}
		result = append(result, *notification)
	}
	return result, int64(len(result)), nil
}

func (r *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok {
		return repositories.ErrNotificationNotFound
	}
	notification.IsRead = true
	notification.ReadAt = &at
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			notification.IsRead = true
			notification.ReadAt = &at
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[id]; !ok {
		return repositories.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}

func (r *fakeNotificationRepo) DeleteReadOlderThan(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, notification := range r.notifications {
		if notification.IsRead && notification.CreatedAt.Before(cutoff) {
			delete(r.notifications, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeNotificationRepo) byUser(userID string) []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Notification
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			result = append(result, *notification)
		}
	}
	return result
}

// recordingEmailProvider captures sent mail for assertions.
type recordingEmailProvider struct {
	mu   sync.Mutex
	sent []*email.Email
}

func (p *recordingEmailProvider) Send(e *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, e)
	return nil
}

func (p *recordingEmailProvider) Close() error { return nil }
