package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bid status values. Accepted and rejected are terminal; nothing exposes a
// transition back to pending.
const (
	BidStatusPending  = "pending"
	BidStatusAccepted = "accepted"
	BidStatusRejected = "rejected"
)

type Bid struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenderId"`
	Tender    *Tender   `gorm:"foreignKey:TenderID" json:"tender,omitempty"`
	BidderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"bidderId"`
	Bidder    *User     `gorm:"foreignKey:BidderID" json:"bidder,omitempty"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Proposal  string    `gorm:"type:text" json:"proposal"`
	Status    string    `gorm:"size:20;default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
