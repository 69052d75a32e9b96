package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenderdesk/tenderdesk-backend/internal/config"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/handlers"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"github.com/tenderdesk/tenderdesk-backend/internal/seed"
	"github.com/tenderdesk/tenderdesk-backend/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Tender{}, &models.Bid{}, &models.Notification{},
	))

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpiry:          time.Hour,
		SuperAdminEmail:    "admin@gmail.com",
		SuperAdminPassword: "admin123",
		SuperAdminName:     "Super Admin",
	}
	require.NoError(t, seed.SuperAdmin(db, cfg))

	h := &Handlers{
		Auth:         handlers.NewAuthHandler(services.NewAuthService(db, cfg)),
		User:         handlers.NewUserHandler(services.NewUserService(db, cfg)),
		Tender:       handlers.NewTenderHandler(services.NewTenderService(db)),
		Bid:          handlers.NewBidHandler(services.NewBidService(db)),
		Notification: handlers.NewNotificationHandler(services.NewNotificationService(db)),
		Stats:        handlers.NewStatsHandler(services.NewStatsService(db)),
		Health:       handlers.NewHealthHandler(),
	}

	app := fiber.New()
	Setup(app, cfg, h)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func loginAs(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: email, Password: password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// Walks the whole lifecycle over HTTP: an admin publishes a tender, a
// contractor registers, bids, gets approved and sees the tracking timeline
// plus the notification.
func TestRoutes_TenderLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	adminToken := loginAs(t, app, "admin@gmail.com", "admin123")

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Sharma Constructions", Email: "sharma@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	bidderToken := loginAs(t, app, "sharma@example.com", "password123")

	resp = doRequest(t, app, fiber.MethodPost, "/api/tenders/", adminToken, dto.TenderRequest{
		Title:       "Highway Bridge Construction",
		Description: "Four-lane bridge over the river",
		Budget:      5000000,
		StartDate:   "2026-10-01",
		Deadline:    "2026-12-31",
		Department:  "Public Works",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Message string        `json:"message"`
		Tender  models.Tender `json:"tender"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, models.TenderStatusDraft, created.Tender.Status)
	tenderID := created.Tender.ID.String()

	resp = doRequest(t, app, fiber.MethodPut, "/api/tenders/"+tenderID+"/publish", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var published models.Tender
	decodeBody(t, resp, &published)
	assert.Equal(t, models.TenderStatusPublished, published.Status)

	// contractor sees only published tenders
	resp = doRequest(t, app, fiber.MethodGet, "/api/tenders/", bidderToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var visible []models.Tender
	decodeBody(t, resp, &visible)
	require.Len(t, visible, 1)
	assert.Equal(t, "Highway Bridge Construction", visible[0].Title)

	resp = doRequest(t, app, fiber.MethodPost, "/api/bids/", bidderToken, dto.PlaceBidRequest{
		TenderID: tenderID, Amount: 4800000, Proposal: "Completed 3 similar bridges",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var placed struct {
		Message string     `json:"message"`
		Bid     models.Bid `json:"bid"`
	}
	decodeBody(t, resp, &placed)
	assert.Equal(t, models.BidStatusPending, placed.Bid.Status)
	bidID := placed.Bid.ID.String()

	resp = doRequest(t, app, fiber.MethodPut, "/api/bids/"+bidID, adminToken, dto.UpdateBidStatusRequest{
		Status: models.BidStatusAccepted,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodGet, "/api/bids/"+bidID+"/tracking", bidderToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tracking dto.TrackingResponse
	decodeBody(t, resp, &tracking)
	assert.Equal(t, services.TrackingApproved, tracking.CurrentStatus)
	assert.Equal(t, "Highway Bridge Construction", tracking.TenderTitle)
	require.Len(t, tracking.Timeline, 5)
	assert.Equal(t, "Bid approved", tracking.Timeline[4].Note)

	resp = doRequest(t, app, fiber.MethodGet, "/api/public/notifications", bidderToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notifications []models.Notification
	decodeBody(t, resp, &notifications)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Bid Approved", notifications[0].Title)
	assert.False(t, notifications[0].IsRead)
}

func TestRoutes_AuthGates(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodGet, "/api/tenders/", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errResp dto.ErrorResponse
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "Access token required", errResp.Message)

	resp = doRequest(t, app, fiber.MethodGet, "/api/tenders/", "not-a-token", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "Invalid token", errResp.Message)
}

func TestRoutes_AdminGates(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Bidder", Email: "bidder@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	token := loginAs(t, app, "bidder@example.com", "password123")

	for _, tc := range []struct {
		method string
		path   string
		body   interface{}
	}{
		{fiber.MethodPost, "/api/tenders/", dto.TenderRequest{}},
		{fiber.MethodGet, "/api/auth/users", nil},
		{fiber.MethodPut, "/api/bids/00000000-0000-0000-0000-000000000000", dto.UpdateBidStatusRequest{Status: "accepted"}},
	} {
		resp := doRequest(t, app, tc.method, tc.path, token, tc.body)
		require.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s", tc.method, tc.path)
		var errResp dto.ErrorResponse
		decodeBody(t, resp, &errResp)
		assert.Equal(t, "Admin access required", errResp.Message)
	}
}

func TestRoutes_PublicSurface(t *testing.T) {
	app, db := newTestApp(t)

	admin := models.User{Name: "Admin", Email: "clerk@example.com", Password: "x", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)
	tender := models.Tender{
		Title: "Road Repair", Description: "d", Budget: 100000,
		StartDate: time.Now(), Deadline: time.Now().Add(48 * time.Hour),
		Department: "Roads", Status: models.TenderStatusPublished, CreatedBy: admin.ID,
	}
	require.NoError(t, db.Create(&tender).Error)

	resp := doRequest(t, app, fiber.MethodGet, "/api/public/landing-stats", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats dto.LandingStatsResponse
	decodeBody(t, resp, &stats)
	assert.EqualValues(t, 1, stats.ActiveTenders)

	// per-tender bid listing is open
	resp = doRequest(t, app, fiber.MethodGet, "/api/bids/tender/"+tender.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bids []models.Bid
	decodeBody(t, resp, &bids)
	assert.Empty(t, bids)
}

func TestRoutes_BlockedUserCannotLogin(t *testing.T) {
	app, db := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Bidder", Email: "blocked@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "blocked@example.com").
		Update("is_blocked", true).Error)

	resp = doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "blocked@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errResp dto.ErrorResponse
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "Your account has been blocked", errResp.Message)
}
