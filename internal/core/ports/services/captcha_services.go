package services

import (
	"context"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
)

// CaptchaVerifier asks the human-verification backend whether a response token is genuine.
// Every failure mode, including timeouts and malformed replies, yields false.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) bool
}

// CaptchaSettingsSource supplies the effective reCAPTCHA keys.
type CaptchaSettingsSource interface {
	CaptchaSettings(ctx context.Context) (domain.CaptchaSettings, error)
}

// CaptchaSettingsSvc manages the administrator-configured reCAPTCHA keys.
type CaptchaSettingsSvc interface {
	CaptchaSettingsSource

	// UpdateCaptchaSettings stores new keys; nil fields keep their current value.
	UpdateCaptchaSettings(ctx context.Context, req dto.UpdateCaptchaSettingsRequest, actor string) (domain.CaptchaSettings, error)
}
