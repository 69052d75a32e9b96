package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tenderdesk/tenderdesk-backend/internal/auth"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/rbac"
)

// AdminRequired gates admin routes on the role claim. Every admin-only route
// declares this in the route table rather than checking inside handlers.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rbac.Role(auth.Role(c)) != rbac.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
