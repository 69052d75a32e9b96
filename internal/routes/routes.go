package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tenderdesk/tenderdesk-backend/internal/config"
	"github.com/tenderdesk/tenderdesk-backend/internal/handlers"
	"github.com/tenderdesk/tenderdesk-backend/internal/middleware"
)

// Handlers bundles everything Setup mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Tender       *handlers.TenderHandler
	Bid          *handlers.BidHandler
	Notification *handlers.NotificationHandler
	Stats        *handlers.StatsHandler
	Health       *handlers.HealthHandler
}

// Setup is the single route table. Each route declares its full auth chain
// here, so the required capability for any endpoint can be read in one place.
func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	protected := middleware.JWTProtected(cfg)
	adminOnly := middleware.AdminRequired()

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Stricter rate limit on credential endpoints
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)

	// Admin user management (kept under /auth for dashboard compatibility)
	auth.Get("/users", protected, adminOnly, h.User.List)
	auth.Put("/users/:id/role", protected, adminOnly, h.User.SetRole)
	auth.Put("/block-user/:id", protected, adminOnly, h.User.ToggleBlock)
	auth.Delete("/delete-user/:id", protected, adminOnly, h.User.Delete)

	// Tenders
	tenders := api.Group("/tenders")
	tenders.Get("/", protected, h.Tender.List)
	tenders.Post("/", protected, adminOnly, h.Tender.Create)
	tenders.Get("/:id", protected, adminOnly, h.Tender.GetByID)
	tenders.Put("/:id", protected, adminOnly, h.Tender.Update)
	tenders.Put("/:id/publish", protected, adminOnly, h.Tender.Publish)
	tenders.Put("/:id/close", protected, adminOnly, h.Tender.Close)
	tenders.Delete("/:id", protected, adminOnly, h.Tender.Delete)

	// Bids. The per-tender listing is unauthenticated to serve the public
	// dashboards; the status update is admin-gated.
	bids := api.Group("/bids")
	bids.Get("/", protected, h.Bid.ListAll)
	bids.Post("/", protected, h.Bid.Place)
	bids.Get("/tender/:tenderId", h.Bid.ListForTender)
	bids.Get("/my-bids", protected, h.Bid.ListMine)
	bids.Put("/:id", protected, adminOnly, h.Bid.UpdateStatus)
	bids.Get("/:id/tracking", protected, h.Bid.Tracking)

	// Public dashboard surface
	public := api.Group("/public")
	public.Get("/landing-stats", h.Stats.LandingStats)
	public.Get("/bids/stats", protected, h.Bid.Stats)
	public.Get("/notifications", protected, h.Notification.ListMine)
	public.Patch("/notifications/read-all", protected, h.Notification.MarkAllRead)
	public.Patch("/notifications/:id/read", protected, h.Notification.MarkRead)
	public.Get("/profile", protected, h.User.Profile)
	public.Put("/profile", protected, h.User.UpdateProfile)
}
