package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tenderdesk/tenderdesk-backend/internal/auth"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/services"
)

type TenderHandler struct {
	tenderService *services.TenderService
}

func NewTenderHandler(tenderService *services.TenderService) *TenderHandler {
	return &TenderHandler{tenderService: tenderService}
}

func (h *TenderHandler) Create(c *fiber.Ctx) error {
	callerID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	var req dto.TenderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tender, err := h.tenderService.Create(&req, callerID)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			return badRequest(c, msg)
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tender created successfully",
		"tender":  tender,
	})
}

func (h *TenderHandler) List(c *fiber.Ctx) error {
	tenders, err := h.tenderService.List(auth.Role(c))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(tenders)
}

func (h *TenderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Tender not found")
	}

	tender, err := h.tenderService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTenderNotFound) {
			return notFound(c, "Tender not found")
		}
		return serverError(c, err)
	}
	return c.JSON(tender)
}

func (h *TenderHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Tender not found")
	}

	var req dto.TenderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tender, err := h.tenderService.Update(id, &req)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			return badRequest(c, msg)
		}
		if errors.Is(err, services.ErrTenderNotFound) {
			return notFound(c, "Tender not found")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Tender updated successfully",
		"tender":  tender,
	})
}

func (h *TenderHandler) Publish(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Tender not found")
	}

	tender, err := h.tenderService.Publish(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTenderNotFound):
			return notFound(c, "Tender not found")
		case errors.Is(err, services.ErrTenderNotDraft):
			return badRequest(c, "Only draft tenders can be published")
		}
		return serverError(c, err)
	}
	return c.JSON(tender)
}

func (h *TenderHandler) Close(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Tender not found")
	}

	tender, err := h.tenderService.Close(id)
	if err != nil {
		if errors.Is(err, services.ErrTenderNotFound) {
			return notFound(c, "Tender not found")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Tender closed successfully",
		"tender":  tender,
	})
}

func (h *TenderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Tender not found")
	}

	if err := h.tenderService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTenderNotFound) {
			return notFound(c, "Tender not found")
		}
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tender deleted successfully"})
}
