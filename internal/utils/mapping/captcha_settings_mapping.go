package mapping

import (
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/SscSPs/customer_reviews_app/internal/models"
)

// ToModelCaptchaSettings converts domain CaptchaSettings to the model
func ToModelCaptchaSettings(d domain.CaptchaSettings) models.CaptchaSettings {
	return models.CaptchaSettings{
		SiteKey:   d.SiteKey,
		SecretKey: d.SecretKey,
		UpdatedAt: d.UpdatedAt,
		UpdatedBy: d.UpdatedBy,
	}
}

// ToDomainCaptchaSettings converts model CaptchaSettings to the domain type
func ToDomainCaptchaSettings(m models.CaptchaSettings) domain.CaptchaSettings {
	return domain.CaptchaSettings{
		SiteKey:   m.SiteKey,
		SecretKey: m.SecretKey,
		UpdatedAt: m.UpdatedAt,
		UpdatedBy: m.UpdatedBy,
	}
}
