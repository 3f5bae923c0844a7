package dto

import (
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
)

// UpdateCaptchaSettingsRequest updates the reCAPTCHA keys. A nil field keeps the stored value.
type UpdateCaptchaSettingsRequest struct {
	SiteKey   *string `json:"siteKey" binding:"omitempty,max=200"`
	SecretKey *string `json:"secretKey" binding:"omitempty,max=200"`
}

// CaptchaSettingsResponse never includes the secret itself.
type CaptchaSettingsResponse struct {
	SiteKey          string    `json:"siteKey"`
	SecretConfigured bool      `json:"secretConfigured"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
	UpdatedBy        string    `json:"updatedBy,omitempty"`
}

// ToCaptchaSettingsResponse converts domain.CaptchaSettings to its response DTO
func ToCaptchaSettingsResponse(s domain.CaptchaSettings) CaptchaSettingsResponse {
	return CaptchaSettingsResponse{
		SiteKey:          s.SiteKey,
		SecretConfigured: s.HasSecret(),
		UpdatedAt:        s.UpdatedAt,
		UpdatedBy:        s.UpdatedBy,
	}
}
