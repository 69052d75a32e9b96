package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tender status values. Awarded and completed are part of the schema but no
// endpoint transitions into them.
const (
	TenderStatusDraft     = "draft"
	TenderStatusPublished = "published"
	TenderStatusClosed    = "closed"
	TenderStatusAwarded   = "awarded"
	TenderStatusCompleted = "completed"
)

type Tender struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Budget      float64   `gorm:"not null" json:"budget"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	Deadline    time.Time `gorm:"not null" json:"deadline"`
	Department  string    `gorm:"size:255;not null" json:"department"`
	Status      string    `gorm:"size:20;default:'draft';index" json:"status"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index" json:"createdBy"`
	Creator     *User     `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Tender) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
