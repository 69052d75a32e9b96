package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlaceBidRequest struct {
	TenderID string  `json:"tenderId"`
	Amount   float64 `json:"amount"`
	Proposal string  `json:"proposal"`
}

type UpdateBidStatusRequest struct {
	Status string `json:"status"`
}

// BidFilters narrows the caller's own bid listing.
type BidFilters struct {
	Status string
	Search string
	Sort   string
	From   string
	To     string
}

type TimelineStep struct {
	Step  string     `json:"step"`
	Label string     `json:"label"`
	Time  *time.Time `json:"time"`
	Note  string     `json:"note"`
}

// TrackingResponse is the derived five-stage view of a bid's review
// progress. The intermediate steps are not persisted anywhere.
type TrackingResponse struct {
	BidID          uuid.UUID      `json:"bidId"`
	TenderID       uuid.UUID      `json:"tenderId"`
	TenderTitle    string         `json:"tenderTitle"`
	BidAmount      float64        `json:"bidAmount"`
	SubmissionDate time.Time      `json:"submissionDate"`
	CurrentStatus  string         `json:"currentStatus"`
	Timeline       []TimelineStep `json:"timeline"`
}

type BidStatsResponse struct {
	TotalBids    int64 `json:"totalBids"`
	ApprovedBids int64 `json:"approvedBids"`
	RejectedBids int64 `json:"rejectedBids"`
	PendingBids  int64 `json:"pendingBids"`
}

type LandingStatsResponse struct {
	ActiveTenders int64 `json:"activeTenders"`
	TotalBids     int64 `json:"totalBids"`
	TotalUsers    int64 `json:"totalUsers"`
}
