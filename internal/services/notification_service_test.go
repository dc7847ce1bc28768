package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbridge_backend/internal/apperrors"
	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/services/dto"
)

type notificationFixture struct {
	users         *fakeUserRepo
	notifications *fakeNotificationRepo
	emails        *recordingEmailProvider
	svc           NotificationService
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	t.Helper()

	f := &notificationFixture{
		users:         newFakeUserRepo(),
		notifications: newFakeNotificationRepo(),
		emails:        &recordingEmailProvider{},
	}
	f.svc = NewNotificationService(f.notifications, f.users, f.emails)
	return f
}

func (f *notificationFixture) seed(userID, notificationType string, read bool) *models.Notification {
	notification := &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   "t",
		Message: "m",
		IsRead:  read,
	}
	if err := f.notifications.Create(notification); err != nil {
		panic(err)
	}
	return notification
}

func TestGetUserNotificationsFiltersUnread(t *testing.T) {
	f := newNotificationFixture(t)

	f.seed("user-1", NotificationTypeNewOpportunity, false)
	f.seed("user-1", NotificationTypeApplicationStatus, true)
	f.seed("user-2", NotificationTypeNewOpportunity, false)

	all, err := f.svc.GetUserNotifications("user-1", dto.ListNotificationsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)
	assert.EqualValues(t, 1, all.UnreadCount)

	unread, err := f.svc.GetUserNotifications("user-1", dto.ListNotificationsRequest{UnreadOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread.Total)
}

func TestMarkAsReadOwnershipEnforced(t *testing.T) {
	f := newNotificationFixture(t)
	notification := f.seed("user-1", NotificationTypeNewOpportunity, false)

	err := f.svc.MarkAsRead("user-2", notification.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, f.svc.MarkAsRead("user-1", notification.ID))

	stored, err := f.notifications.FindByID(notification.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
	assert.NotNil(t, stored.ReadAt)

	// Re-reading an already-read notification is a no-op.
	assert.NoError(t, f.svc.MarkAsRead("user-1", notification.ID))
}

func TestMarkAsReadUnknownNotification(t *testing.T) {
	f := newNotificationFixture(t)

	err := f.svc.MarkAsRead("user-1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestMarkAllAsRead(t *testing.T) {
	f := newNotificationFixture(t)
	f.seed("user-1", NotificationTypeNewOpportunity, false)
	f.seed("user-1", NotificationTypeNewApplication, false)
	f.seed("user-2", NotificationTypeNewOpportunity, false)

	require.NoError(t, f.svc.MarkAllAsRead("user-1"))

	count, err := f.svc.GetUnreadCount("user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	other, err := f.svc.GetUnreadCount("user-2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, other)
}

func TestDeleteNotificationOwnershipEnforced(t *testing.T) {
	f := newNotificationFixture(t)
	notification := f.seed("user-1", NotificationTypeNewOpportunity, false)

	assert.ErrorIs(t, f.svc.DeleteNotification("user-2", notification.ID), apperrors.ErrForbidden)
	require.NoError(t, f.svc.DeleteNotification("user-1", notification.ID))

	_, err := f.notifications.FindByID(notification.ID)
	assert.Error(t, err)
}

func TestFanOutUsesTalentSnapshot(t *testing.T) {
	f := newNotificationFixture(t)

	f.users.add(&models.User{
		BaseModel: models.BaseModel{ID: "talent-1"}, Email: "t1@example.com",
		Role: models.UserRoleTalent, Status: models.UserStatusActive, IsActive: true,
	})
	f.users.add(&models.User{
		BaseModel: models.BaseModel{ID: "talent-pending"}, Email: "tp@example.com",
		Role: models.UserRoleTalent, Status: models.UserStatusPending, IsActive: true,
	})
	f.users.add(&models.User{
		BaseModel: models.BaseModel{ID: "provider-1"}, Email: "p@example.com",
		Role: models.UserRoleProvider, Status: models.UserStatusActive, IsActive: true,
	})

	opportunity := &models.Opportunity{
		BaseModel: models.BaseModel{ID: "opp-1"},
		Title:     "Junior Developer",
		Type:      models.OpportunityTypeJob,
	}
	require.NoError(t, f.svc.FanOutNewOpportunity(opportunity))

	assert.Len(t, f.notifications.byUser("talent-1"), 1)
	assert.Empty(t, f.notifications.byUser("talent-pending"))
	assert.Empty(t, f.notifications.byUser("provider-1"))

	// New talents registered after the fan-out get nothing retroactively.
	f.users.add(&models.User{
		BaseModel: models.BaseModel{ID: "talent-late"}, Email: "late@example.com",
		Role: models.UserRoleTalent, Status: models.UserStatusActive, IsActive: true,
	})
	assert.Empty(t, f.notifications.byUser("talent-late"))
}

func TestFanOutWithNoTalents(t *testing.T) {
	f := newNotificationFixture(t)

	opportunity := &models.Opportunity{BaseModel: models.BaseModel{ID: "opp-1"}, Title: "x"}
	assert.NoError(t, f.svc.FanOutNewOpportunity(opportunity))
}

func TestCleanOldNotificationsKeepsUnread(t *testing.T) {
	f := newNotificationFixture(t)

	oldRead := f.seed("user-1", NotificationTypeNewOpportunity, true)
	oldUnread := f.seed("user-1", NotificationTypeNewOpportunity, false)
	f.notifications.mu.Lock()
	f.notifications.notifications[oldRead.ID].CreatedAt = time.Now().AddDate(0, 0, -120)
	f.notifications.notifications[oldUnread.ID].CreatedAt = time.Now().AddDate(0, 0, -120)
	f.notifications.mu.Unlock()
	recent := f.seed("user-1", NotificationTypeNewOpportunity, true)

	deleted, err := f.svc.CleanOldNotifications(90)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = f.notifications.FindByID(oldRead.ID)
	assert.Error(t, err)
	_, err = f.notifications.FindByID(oldUnread.ID)
	assert.NoError(t, err)
	_, err = f.notifications.FindByID(recent.ID)
	assert.NoError(t, err)
}
