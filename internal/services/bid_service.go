package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrBidNotFound      = errors.New("bid not found")
	ErrInvalidBidStatus = errors.New("invalid status")
)

type BidService struct {
	db *gorm.DB
}

func NewBidService(db *gorm.DB) *BidService {
	return &BidService{db: db}
}

// Place stores a new pending bid. A user may submit any number of bids per
// tender.
func (s *BidService) Place(req *dto.PlaceBidRequest, bidderID uuid.UUID) (*models.Bid, error) {
	if req.TenderID == "" || req.Amount == 0 {
		return nil, validationErr("Missing required fields")
	}
	if req.Amount < 0 {
		return nil, validationErr("Bid amount must be a positive number")
	}

	tenderID, err := uuid.Parse(req.TenderID)
	if err != nil {
		return nil, validationErr("Invalid tender ID")
	}

	bid := models.Bid{
		TenderID: tenderID,
		BidderID: bidderID,
		Amount:   req.Amount,
		Proposal: strings.TrimSpace(req.Proposal),
		Status:   models.BidStatusPending,
	}

	if err := s.db.Create(&bid).Error; err != nil {
		return nil, fmt.Errorf("failed to create bid: %w", err)
	}
	return &bid, nil
}

// ListForTender returns every bid against a tender, newest-first.
func (s *BidService) ListForTender(tenderID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	if err := s.db.Where("tender_id = ?", tenderID).Order("created_at DESC").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return bids, nil
}

// ListMine returns the caller's bids with the tender joined. Status and date
// range narrow the query; title search and amount sorts are applied to the
// fetched set.
func (s *BidService) ListMine(bidderID uuid.UUID, filters *dto.BidFilters) ([]models.Bid, error) {
	query := s.db.Preload("Tender").Where("bidder_id = ?", bidderID)

	if filters.Status != "" && filters.Status != "all" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.From != "" {
		if from, err := parseDate(filters.From); err == nil {
			query = query.Where("created_at >= ?", from)
		}
	}
	if filters.To != "" {
		if to, err := parseDate(filters.To); err == nil {
			query = query.Where("created_at <= ?", to)
		}
	}

	var bids []models.Bid
	if err := query.Order("created_at DESC").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}

	if filters.Search != "" {
		needle := strings.ToLower(filters.Search)
		filtered := bids[:0]
		for _, bid := range bids {
			if bid.Tender != nil && strings.Contains(strings.ToLower(bid.Tender.Title), needle) {
				filtered = append(filtered, bid)
			}
		}
		bids = filtered
	}

	switch filters.Sort {
	case "oldest":
		sort.SliceStable(bids, func(i, j int) bool { return bids[i].CreatedAt.Before(bids[j].CreatedAt) })
	case "highest":
		sort.SliceStable(bids, func(i, j int) bool { return bids[i].Amount > bids[j].Amount })
	case "lowest":
		sort.SliceStable(bids, func(i, j int) bool { return bids[i].Amount < bids[j].Amount })
	default:
		// already newest-first
	}

	return bids, nil
}

// UpdateStatus sets the bid's status and, on an actual change, writes one
// notification for the bidder. Status and notification are two independent
// writes; there is no transaction tying them together.
func (s *BidService) UpdateStatus(bidID uuid.UUID, status string) (*models.Bid, error) {
	switch status {
	case models.BidStatusPending, models.BidStatusAccepted, models.BidStatusRejected:
	default:
		return nil, ErrInvalidBidStatus
	}

	var bid models.Bid
	if err := s.db.Preload("Tender").Preload("Bidder").First(&bid, "id = ?", bidID).Error; err != nil {
		return nil, ErrBidNotFound
	}

	if bid.Status == status {
		return &bid, nil
	}

	if err := s.db.Model(&bid).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update bid status: %w", err)
	}

	tenderTitle := "Tender"
	if bid.Tender != nil {
		tenderTitle = bid.Tender.Title
	}

	var title, message string
	switch status {
	case models.BidStatusAccepted:
		title = "Bid Approved"
		message = fmt.Sprintf("Congratulations! Your bid for %q has been approved.", tenderTitle)
	case models.BidStatusRejected:
		title = "Bid Rejected"
		message = fmt.Sprintf("Your bid for %q has been rejected.", tenderTitle)
	default:
		title = "Bid Status Updated"
		message = fmt.Sprintf("Your bid status for %q has been updated to %s.", tenderTitle, status)
	}

	notification := models.Notification{
		UserID:  bid.BidderID,
		Title:   title,
		Message: message,
		Type:    models.NotificationTypeBidStatus,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		// The status change already landed; surface the gap in the logs.
		slog.Error("failed to create bid status notification", "bid_id", bidID, "error", err)
	}

	return &bid, nil
}

// Tracking returns the derived review timeline for one of the caller's own
// bids. Foreign bids read as not found rather than forbidden.
func (s *BidService) Tracking(bidID, callerID uuid.UUID) (*dto.TrackingResponse, error) {
	var bid models.Bid
	err := s.db.Preload("Tender").
		Where("id = ? AND bidder_id = ?", bidID, callerID).
		First(&bid).Error
	if err != nil {
		return nil, ErrBidNotFound
	}

	return BuildTracking(&bid), nil
}

// ListAll is the admin-facing unfiltered listing with tender and bidder
// names joined.
func (s *BidService) ListAll() ([]models.Bid, error) {
	var bids []models.Bid
	err := s.db.Preload("Tender").Preload("Bidder").
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return bids, nil
}

// Stats counts the caller's bids by status.
func (s *BidService) Stats(callerID uuid.UUID) (*dto.BidStatsResponse, error) {
	stats := &dto.BidStatsResponse{}
	base := s.db.Model(&models.Bid{}).Where("bidder_id = ?", callerID)

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalBids).Error; err != nil {
		return nil, fmt.Errorf("failed to count bids: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", models.BidStatusAccepted).Count(&stats.ApprovedBids).Error; err != nil {
		return nil, fmt.Errorf("failed to count bids: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", models.BidStatusRejected).Count(&stats.RejectedBids).Error; err != nil {
		return nil, fmt.Errorf("failed to count bids: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", models.BidStatusPending).Count(&stats.PendingBids).Error; err != nil {
		return nil, fmt.Errorf("failed to count bids: %w", err)
	}

	return stats, nil
}
