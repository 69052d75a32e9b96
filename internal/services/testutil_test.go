package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tenderdesk/tenderdesk-backend/internal/config"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tender{},
		&models.Bid{},
		&models.Notification{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpiry:          24 * time.Hour,
		SuperAdminEmail:    "admin@gmail.com",
		SuperAdminPassword: "admin123",
		SuperAdminName:     "Super Admin",
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTender(t *testing.T, db *gorm.DB, title, status string, createdBy uuid.UUID) *models.Tender {
	t.Helper()

	tender := &models.Tender{
		Title:       title,
		Description: "Road resurfacing across the northern district",
		Budget:      250000,
		StartDate:   time.Now().Add(24 * time.Hour),
		Deadline:    time.Now().Add(30 * 24 * time.Hour),
		Department:  "Public Works",
		Status:      status,
		CreatedBy:   createdBy,
	}
	require.NoError(t, db.Create(tender).Error)
	return tender
}

func createTestBid(t *testing.T, db *gorm.DB, tenderID, bidderID uuid.UUID, amount float64, createdAt time.Time) *models.Bid {
	t.Helper()

	bid := &models.Bid{
		TenderID:  tenderID,
		BidderID:  bidderID,
		Amount:    amount,
		Proposal:  "We can deliver on schedule",
		Status:    models.BidStatusPending,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(bid).Error)
	return bid
}
