package services

import (
	"fmt"

	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"github.com/tenderdesk/tenderdesk-backend/internal/rbac"
	"gorm.io/gorm"
)

// StatsService produces the unauthenticated landing page counters.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) LandingStats() (*dto.LandingStatsResponse, error) {
	stats := &dto.LandingStatsResponse{}

	if err := s.db.Model(&models.Tender{}).Where("status = ?", models.TenderStatusPublished).Count(&stats.ActiveTenders).Error; err != nil {
		return nil, fmt.Errorf("failed to count tenders: %w", err)
	}
	if err := s.db.Model(&models.Bid{}).Count(&stats.TotalBids).Error; err != nil {
		return nil, fmt.Errorf("failed to count bids: %w", err)
	}
	if err := s.db.Model(&models.User{}).Where("role = ?", string(rbac.RoleUser)).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	return stats, nil
}
