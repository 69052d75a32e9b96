package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"github.com/tenderdesk/tenderdesk-backend/internal/seed"
)

func TestAuthService_Register(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	err := svc.Register(&dto.RegisterRequest{
		Name: "Asha Contractor", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&user).Error)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "secret123", user.Password) // stored hashed
	assert.False(t, user.IsSuperAdmin)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	err := svc.Register(&dto.RegisterRequest{Email: "a@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrMissingFields)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	createTestUser(t, db, "taken@example.com", "user")

	err := svc.Register(&dto.RegisterRequest{
		Name: "Other", Email: "taken@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	user := createTestUser(t, db, "bidder@example.com", "user")

	resp, err := svc.Login(&dto.LoginRequest{Email: "bidder@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "bidder@example.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	createTestUser(t, db, "bidder@example.com", "user")

	_, err := svc.Login(&dto.LoginRequest{Email: "bidder@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_BlockedUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	user := createTestUser(t, db, "blocked@example.com", "user")
	require.NoError(t, db.Model(user).Update("is_blocked", true).Error)

	_, err := svc.Login(&dto.LoginRequest{Email: "blocked@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

// The reserved account is materialized at process start, so logging in with
// its configured password works without any registration call.
func TestAuthService_Login_SeededSuperAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	require.NoError(t, seed.SuperAdmin(db, cfg))

	svc := NewAuthService(db, cfg)
	resp, err := svc.Login(&dto.LoginRequest{Email: "admin@gmail.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Role)
}
