package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tenderdesk/tenderdesk-backend/internal/config"
	"github.com/tenderdesk/tenderdesk-backend/internal/models"
)

// GenerateToken issues the signed session token: HS256, 24h by default,
// carrying the user id and role.
func GenerateToken(cfg *config.Config, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
