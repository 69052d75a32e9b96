package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tenderdesk/tenderdesk-backend/internal/auth"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/services"
)

// UserHandler serves the admin user-management panel and self-service
// profile routes.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	callerID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	users, err := h.userService.List(callerID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "User not found")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.SetRole(targetID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return badRequest(c, "Invalid role provided")
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, "User not found")
		case errors.Is(err, services.ErrSuperAdminImmutable):
			return forbidden(c, "Cannot modify Super Admin")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User role updated to " + user.Role + " successfully",
		"user":    user,
	})
}

func (h *UserHandler) ToggleBlock(c *fiber.Ctx) error {
	callerID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "User not found")
	}

	user, err := h.userService.ToggleBlock(targetID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfAction):
			return badRequest(c, "You cannot block your own account")
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, "User not found")
		case errors.Is(err, services.ErrSuperAdminImmutable):
			return forbidden(c, "Cannot modify Super Admin")
		}
		return serverError(c, err)
	}

	message := "User unblocked successfully"
	if user.IsBlocked {
		message = "User blocked successfully"
	}
	return c.JSON(fiber.Map{"message": message, "user": user})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	callerID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "User not found")
	}

	if err := h.userService.Delete(targetID, callerID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfAction):
			return badRequest(c, "You cannot delete your own account")
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, "User not found")
		case errors.Is(err, services.ErrSuperAdminImmutable):
			return forbidden(c, "Cannot modify Super Admin")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	user, err := h.userService.Profile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
