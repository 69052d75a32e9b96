package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tenderdesk/tenderdesk-backend/internal/auth"
	"github.com/tenderdesk/tenderdesk-backend/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	notifications, err := h.notificationService.ListMine(userID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(notifications)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Notification not found")
	}

	notification, err := h.notificationService.MarkRead(id, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return notFound(c, "Notification not found")
		}
		return serverError(c, err)
	}
	return c.JSON(notification)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
