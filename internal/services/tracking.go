package services

import (
	"time"

	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
)

// Tracking status codes shown to bidders.
const (
	TrackingUnderReview = "UNDER_REVIEW"
	TrackingApproved    = "APPROVED"
	TrackingRejected    = "REJECTED"
	TrackingPending     = "PENDING"
)

// BuildTracking maps a bid onto the fixed five-stage review timeline. This is
// a display approximation: the intermediate stages are never persisted, and
// every step after SUBMITTED shares the bid's last-update time once the bid
// leaves pending.
func BuildTracking(bid *models.Bid) *dto.TrackingResponse {
	currentStatus := TrackingPending
	switch bid.Status {
	case models.BidStatusPending:
		currentStatus = TrackingUnderReview
	case models.BidStatusAccepted:
		currentStatus = TrackingApproved
	case models.BidStatusRejected:
		currentStatus = TrackingRejected
	}

	var reviewTime *time.Time
	if bid.Status != models.BidStatusPending {
		t := bid.UpdatedAt
		reviewTime = &t
	}

	decisionNote := "Final decision pending"
	switch bid.Status {
	case models.BidStatusAccepted:
		decisionNote = "Bid approved"
	case models.BidStatusRejected:
		decisionNote = "Bid rejected"
	}

	submitted := bid.CreatedAt
	timeline := []dto.TimelineStep{
		{Step: "SUBMITTED", Label: "Submitted", Time: &submitted, Note: "Bid submitted successfully"},
		{Step: "UNDER_REVIEW", Label: "Under Review", Time: reviewTime, Note: "Department is reviewing your bid"},
		{Step: "TECHNICAL_EVAL", Label: "Technical Evaluation", Time: reviewTime, Note: "Technical evaluation in progress"},
		{Step: "FINANCIAL_EVAL", Label: "Financial Evaluation", Time: reviewTime, Note: "Financial evaluation in progress"},
		{Step: "FINAL_DECISION", Label: "Final Decision", Time: reviewTime, Note: decisionNote},
	}

	resp := &dto.TrackingResponse{
		BidID:          bid.ID,
		TenderID:       bid.TenderID,
		BidAmount:      bid.Amount,
		SubmissionDate: bid.CreatedAt,
		CurrentStatus:  currentStatus,
		Timeline:       timeline,
	}
	if bid.Tender != nil {
		resp.TenderTitle = bid.Tender.Title
	}
	return resp
}
