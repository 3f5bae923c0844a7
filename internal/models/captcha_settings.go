package models

import "time"

// CaptchaSettings is the single-row captcha_settings table.
type CaptchaSettings struct {
	SiteKey   string    `db:"site_key"`
	SecretKey string    `db:"secret_key"`
	UpdatedAt time.Time `db:"updated_at"`
	UpdatedBy string    `db:"updated_by"`
}
