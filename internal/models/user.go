package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User covers both contractor accounts and administrators. The single
// super-admin row is flagged with IsSuperAdmin and protected in rbac.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Email            string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	Role             string    `gorm:"size:20;default:'user'" json:"role"`
	IsSuperAdmin     bool      `gorm:"default:false" json:"isSuperAdmin"`
	IsBlocked        bool      `gorm:"default:false" json:"isBlocked"`
	CompanyName      string    `gorm:"size:255" json:"companyName"`
	BusinessCategory string    `gorm:"size:100" json:"businessCategory"`
	Phone            string    `gorm:"size:30" json:"phone"`
	Address          string    `gorm:"type:text" json:"address"`
	GSTNumber        string    `gorm:"size:30" json:"gstNumber"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
