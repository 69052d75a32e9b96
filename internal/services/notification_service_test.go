package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"gorm.io/gorm"
)

func createTestNotification(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, createdAt time.Time) *models.Notification {
	t.Helper()

	notification := &models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   "status update",
		Type:      models.NotificationTypeBidStatus,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(notification).Error)
	return notification
}

func TestNotificationService_ListMine_CappedAndOwned(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	owner := createTestUser(t, db, "owner@example.com", "user")
	other := createTestUser(t, db, "other@example.com", "user")

	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < 55; i++ {
		createTestNotification(t, db, owner.ID, fmt.Sprintf("update %d", i), base.Add(time.Duration(i)*time.Minute))
	}
	createTestNotification(t, db, other.ID, "not yours", base)

	notifications, err := svc.ListMine(owner.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 50)

	// newest first, and only the owner's rows
	assert.Equal(t, "update 54", notifications[0].Title)
	for _, n := range notifications {
		assert.Equal(t, owner.ID, n.UserID)
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	owner := createTestUser(t, db, "owner@example.com", "user")
	other := createTestUser(t, db, "other@example.com", "user")
	notification := createTestNotification(t, db, owner.ID, "update", time.Now())

	// not the owner: reads as not found
	_, err := svc.MarkRead(notification.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	updated, err := svc.MarkRead(notification.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)

	_, err = svc.MarkRead(uuid.New(), owner.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	owner := createTestUser(t, db, "owner@example.com", "user")
	other := createTestUser(t, db, "other@example.com", "user")

	now := time.Now()
	createTestNotification(t, db, owner.ID, "one", now)
	createTestNotification(t, db, owner.ID, "two", now)
	createTestNotification(t, db, other.ID, "theirs", now)

	require.NoError(t, svc.MarkAllRead(owner.ID))

	var unread int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", owner.ID, false).Count(&unread)
	assert.Zero(t, unread)

	// other users' rows are untouched
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", other.ID, false).Count(&unread)
	assert.EqualValues(t, 1, unread)
}
