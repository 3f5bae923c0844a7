package domain

import "time"

// CaptchaSettings holds the administrator-configured reCAPTCHA keys.
// SiteKey is public and rendered by the front end; SecretKey never leaves the server.
type CaptchaSettings struct {
	SiteKey   string    `json:"siteKey"`
	SecretKey string    `json:"-"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// HasSecret reports whether server-side verification can be attempted.
func (s CaptchaSettings) HasSecret() bool {
	return s.SecretKey != ""
}
