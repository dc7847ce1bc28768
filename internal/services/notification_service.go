package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"talentbridge_backend/internal/apperrors"
	"talentbridge_backend/internal/email"
	"talentbridge_backend/internal/logger"
	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/repositories"
	"talentbridge_backend/internal/services/dto"
)

const (
	NotificationTypeNewOpportunity    = "new_opportunity"
	NotificationTypeNewApplication    = "new_application"
	NotificationTypeApplicationStatus = "application_status"
)

type NotificationService interface {
	GetUserNotifications(userID string, criteria dto.ListNotificationsRequest) (*dto.NotificationListResponse, error)
	GetUnreadCount(userID string) (int64, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	DeleteNotification(userID, notificationID string) error
	CleanOldNotifications(retentionDays int) (int64, error)

	// Fan-out. Invoked after the triggering entity's write has committed.
	// Failures are the caller's to log or surface as warnings; they never
	// become failures of the triggering operation.
	NotifyNewApplication(providerID string, opportunity *models.Opportunity, application *models.Application, applicantName string) error
	NotifyApplicationStatus(applicantID string, opportunity *models.Opportunity, application *models.Application) error
	FanOutNewOpportunity(opportunity *models.Opportunity) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

// ---------------- Recipient-facing operations ----------------

func (s *notificationService) GetUserNotifications(userID string, criteria dto.ListNotificationsRequest) (*dto.NotificationListResponse, error) {
	filter := repositories.NotificationFilter{
		UnreadOnly: criteria.UnreadOnly,
		Type:       criteria.Type,
		Page:       criteria.Page,
		PageSize:   criteria.Size,
	}

	notifications, total, err := s.notificationRepo.FindByUser(userID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.NewNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
		Page:          filter.Page,
	}, nil
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return apperrors.ErrForbidden
	}

	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkAsRead(notificationID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) DeleteNotification(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return apperrors.ErrForbidden
	}

	if err := s.notificationRepo.Delete(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) CleanOldNotifications(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.notificationRepo.DeleteReadOlderThan(cutoff)
}

// ---------------- Fan-out ----------------

func (s *notificationService) NotifyNewApplication(providerID string, opportunity *models.Opportunity, application *models.Application, applicantName string) error {
	data, _ := json.Marshal(map[string]string{
		"opportunity_id": opportunity.ID,
		"application_id": application.ID,
	})

	notification := &models.Notification{
		UserID:  providerID,
		Type:    NotificationTypeNewApplication,
		Title:   "New application received",
		Message: fmt.Sprintf("%s applied to \"%s\"", applicantName, opportunity.Title),
		Data:    datatypes.JSON(data),
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return err
	}

	s.sendEmailBestEffort(providerID, notification.Title, notification.Message)
	return nil
}

func (s *notificationService) NotifyApplicationStatus(applicantID string, opportunity *models.Opportunity, application *models.Application) error {
	data, _ := json.Marshal(map[string]string{
		"opportunity_id": opportunity.ID,
		"application_id": application.ID,
	})

	notification := &models.Notification{
		UserID:  applicantID,
		Type:    NotificationTypeApplicationStatus,
		Title:   "Application status updated",
		Message: fmt.Sprintf("Your application to \"%s\" is now %s", opportunity.Title, application.Status),
		Data:    datatypes.JSON(data),
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return err
	}

	s.sendEmailBestEffort(applicantID, notification.Title, notification.Message)
	return nil
}

// FanOutNewOpportunity creates one notification per eligible talent from the
// user snapshot taken now. Talents registered later get nothing retroactively.
func (s *notificationService) FanOutNewOpportunity(opportunity *models.Opportunity) error {
	talents, err := s.userRepo.FindActiveTalents()
	if err != nil {
		return fmt.Errorf("load talent snapshot: %w", err)
	}

	if len(talents) == 0 {
		return nil
	}

	data, _ := json.Marshal(map[string]string{
		"opportunity_id": opportunity.ID,
	})

	notifications := make([]*models.Notification, 0, len(talents))
	for i := range talents {
		notifications = append(notifications, &models.Notification{
			UserID:  talents[i].ID,
			Type:    NotificationTypeNewOpportunity,
			Title:   "New opportunity posted",
			Message: fmt.Sprintf("\"%s\" (%s) is now open for applications", opportunity.Title, opportunity.Type),
			Data:    datatypes.JSON(data),
		})
	}

	if err := s.notificationRepo.CreateBulk(notifications); err != nil {
		return fmt.Errorf("persist fan-out batch: %w", err)
	}

	logger.Info("opportunity fan-out complete",
		"opportunity_id", opportunity.ID,
		"recipients", len(notifications),
	)
	return nil
}

// sendEmailBestEffort mirrors the in-app notification over SMTP. Email is an
// auxiliary channel: failures are logged and swallowed here.
func (s *notificationService) sendEmailBestEffort(userID, subject, body string) {
	recipient, err := s.userRepo.FindByID(userID)
	if err != nil {
		logger.Warn("email skipped, recipient lookup failed", "user_id", userID, "error", err.Error())
		return
	}

	err = s.emailProvider.Send(&email.Email{
		To:      []string{recipient.Email},
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		logger.Warn("notification email failed", "user_id", userID, "error", err.Error())
	}
}
