package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tenderdesk/tenderdesk-backend/internal/config"
	"github.com/tenderdesk/tenderdesk-backend/internal/dto"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"github.com/tenderdesk/tenderdesk-backend/internal/rbac"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidRole         = errors.New("invalid role provided")
	ErrSuperAdminImmutable = errors.New("cannot modify super admin")
	ErrSelfAction          = errors.New("you cannot perform this action on your own account")
)

// UserService implements the admin user-management operations plus
// self-service profile reads and writes.
type UserService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, cfg: cfg}
}

// List returns all users newest-first. Super-admin rows are hidden unless
// the caller is the super-admin.
func (s *UserService) List(callerID uuid.UUID) ([]models.User, error) {
	var caller models.User
	if err := s.db.First(&caller, "id = ?", callerID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	query := s.db.Order("created_at DESC")
	if !caller.IsSuperAdmin {
		query = query.Where("is_super_admin = ?", false)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetRole changes the target's role to admin or user.
func (s *UserService) SetRole(targetID uuid.UUID, role string) (*models.User, error) {
	if !rbac.Valid(role) {
		return nil, ErrInvalidRole
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if !rbac.CanChangeRole(&user, rbac.Role(role), s.cfg.SuperAdminEmail) {
		return nil, ErrSuperAdminImmutable
	}

	user.Role = role
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return &user, nil
}

// ToggleBlock flips the target's blocked flag.
func (s *UserService) ToggleBlock(targetID, callerID uuid.UUID) (*models.User, error) {
	if targetID == callerID {
		return nil, ErrSelfAction
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if !rbac.CanBlockOrDelete(&user) {
		return nil, ErrSuperAdminImmutable
	}

	user.IsBlocked = !user.IsBlocked
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update block state: %w", err)
	}
	return &user, nil
}

// Delete hard-removes the target row.
func (s *UserService) Delete(targetID, callerID uuid.UUID) error {
	if targetID == callerID {
		return ErrSelfAction
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		return ErrUserNotFound
	}

	if !rbac.CanBlockOrDelete(&user) {
		return ErrSuperAdminImmutable
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Profile returns the caller's own row.
func (s *UserService) Profile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// UpdateProfile applies the provided company/profile fields, leaving omitted
// ones untouched.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.BusinessCategory != nil {
		updates["business_category"] = *req.BusinessCategory
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.GSTNumber != nil {
		updates["gst_number"] = *req.GSTNumber
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}
	return &user, nil
}
