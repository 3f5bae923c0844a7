package repositories

import (
	"context"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
)

// CaptchaSettingsRepository persists the administrator-configured reCAPTCHA keys.
type CaptchaSettingsRepository interface {
	// GetCaptchaSettings returns apperrors.ErrNotFound when nothing was saved yet.
	GetCaptchaSettings(ctx context.Context) (*domain.CaptchaSettings, error)

	// SaveCaptchaSettings upserts the settings row.
	SaveCaptchaSettings(ctx context.Context, settings domain.CaptchaSettings) error
}
