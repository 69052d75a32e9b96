package seed

import (
	"fmt"
	"log/slog"

	"github.com/tenderdesk/tenderdesk-backend/internal/config"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
	"github.com/tenderdesk/tenderdesk-backend/internal/rbac"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SuperAdmin upserts the reserved super-admin row. It runs at process
// initialization and resets the account's password hash, role and blocked
// state on every boot.
func SuperAdmin(db *gorm.DB, cfg *config.Config) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash super admin password: %w", err)
	}

	var user models.User
	err = db.Where("email = ?", cfg.SuperAdminEmail).First(&user).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"password":       string(hash),
			"role":           string(rbac.RoleAdmin),
			"is_super_admin": true,
			"is_blocked":     false,
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update super admin: %w", err)
		}
		slog.Info("super admin credentials reset", "email", cfg.SuperAdminEmail)
	default:
		user = models.User{
			Name:         cfg.SuperAdminName,
			Email:        cfg.SuperAdminEmail,
			Password:     string(hash),
			Role:         string(rbac.RoleAdmin),
			IsSuperAdmin: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create super admin: %w", err)
		}
		slog.Info("super admin created", "email", cfg.SuperAdminEmail)
	}

	return nil
}
