package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tenderdesk/tenderdesk-backend/internal/auth"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/services"
)

type BidHandler struct {
	bidService *services.BidService
}

func NewBidHandler(bidService *services.BidService) *BidHandler {
	return &BidHandler{bidService: bidService}
}

func (h *BidHandler) Place(c *fiber.Ctx) error {
	bidderID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	var req dto.PlaceBidRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	bid, err := h.bidService.Place(&req, bidderID)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			return badRequest(c, msg)
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Bid placed successfully",
		"bid":     bid,
	})
}

func (h *BidHandler) ListForTender(c *fiber.Ctx) error {
	tenderID, err := parseIDParam(c, "tenderId")
	if err != nil {
		return notFound(c, "Tender not found")
	}

	bids, err := h.bidService.ListForTender(tenderID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(bids)
}

func (h *BidHandler) ListMine(c *fiber.Ctx) error {
	bidderID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	filters := dto.BidFilters{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}

	bids, err := h.bidService.ListMine(bidderID, &filters)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(bids)
}

func (h *BidHandler) UpdateStatus(c *fiber.Ctx) error {
	bidID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Bid not found")
	}

	var req dto.UpdateBidStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	bid, err := h.bidService.UpdateStatus(bidID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBidStatus):
			return badRequest(c, "Invalid status")
		case errors.Is(err, services.ErrBidNotFound):
			return notFound(c, "Bid not found")
		}
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Bid status updated successfully",
		"bid":     bid,
	})
}

func (h *BidHandler) Tracking(c *fiber.Ctx) error {
	callerID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	bidID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid bid ID")
	}

	tracking, err := h.bidService.Tracking(bidID, callerID)
	if err != nil {
		if errors.Is(err, services.ErrBidNotFound) {
			return notFound(c, "Bid not found")
		}
		return serverError(c, err)
	}
	return c.JSON(tracking)
}

func (h *BidHandler) ListAll(c *fiber.Ctx) error {
	bids, err := h.bidService.ListAll()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(bids)
}

func (h *BidHandler) Stats(c *fiber.Ctx) error {
	callerID, err := auth.UserID(c)
	if err != nil {
		return forbidden(c, "Invalid token")
	}

	stats, err := h.bidService.Stats(callerID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(stats)
}
