package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/SscSPs/customer_reviews_app/internal/utils/sanitize"
)

// CaptchaSettingsService resolves the effective reCAPTCHA keys: a saved row wins,
// otherwise the keys from the process configuration are used.
type CaptchaSettingsService struct {
	BaseService
	repo     portsrepo.CaptchaSettingsRepository
	defaults domain.CaptchaSettings
	now      func() time.Time
}

// NewCaptchaSettingsService creates a CaptchaSettingsService.
func NewCaptchaSettingsService(repo portsrepo.CaptchaSettingsRepository, defaults domain.CaptchaSettings) *CaptchaSettingsService {
	return &CaptchaSettingsService{repo: repo, defaults: defaults, now: time.Now}
}

var _ portssvc.CaptchaSettingsSvc = (*CaptchaSettingsService)(nil)

func (s *CaptchaSettingsService) CaptchaSettings(ctx context.Context) (domain.CaptchaSettings, error) {
	stored, err := s.repo.GetCaptchaSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.defaults, nil
		}
		s.LogError(ctx, err, "Failed to load captcha settings")
		return domain.CaptchaSettings{}, err
	}
	return *stored, nil
}

func (s *CaptchaSettingsService) UpdateCaptchaSettings(ctx context.Context, req dto.UpdateCaptchaSettingsRequest, actor string) (domain.CaptchaSettings, error) {
	current, err := s.CaptchaSettings(ctx)
	if err != nil {
		return domain.CaptchaSettings{}, fmt.Errorf("%w: %w", apperrors.ErrStoreFailure, err)
	}

	updated := current
	if req.SiteKey != nil {
		updated.SiteKey = sanitize.PlainText(*req.SiteKey)
	}
	if req.SecretKey != nil {
		updated.SecretKey = sanitize.PlainText(*req.SecretKey)
	}
	updated.UpdatedAt = s.now().UTC()
	updated.UpdatedBy = actor

	if err := s.repo.SaveCaptchaSettings(ctx, updated); err != nil {
		s.ReportError(ctx, err, "save_captcha_settings", map[string]string{"component": "settings"})
		return domain.CaptchaSettings{}, fmt.Errorf("%w: %w", apperrors.ErrStoreFailure, err)
	}

	s.LogInfo(ctx, "Captcha settings updated",
		slog.String("moderator", actor),
		slog.Bool("site_key_changed", req.SiteKey != nil),
		slog.Bool("secret_changed", req.SecretKey != nil),
	)
	return updated, nil
}
