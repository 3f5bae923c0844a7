package services

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/platform/config"
	"github.com/SscSPs/customer_reviews_app/internal/utils"
)

// authService authenticates the configured moderator account and issues bearer tokens.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogInfo(ctx, "Login attempted while moderator login is disabled")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		s.LogInfo(ctx, "Invalid moderator credentials", slog.String("username", username))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateJWT(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign moderator token")
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *authService) ValidateToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}
