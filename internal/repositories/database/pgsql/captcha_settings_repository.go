package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	"github.com/SscSPs/customer_reviews_app/internal/models"
	"github.com/SscSPs/customer_reviews_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// captchaSettingsRowID pins the table to a single row.
const captchaSettingsRowID = 1

type PgxCaptchaSettingsRepository struct {
	BaseRepository
}

func newPgxCaptchaSettingsRepository(db DBTX) portsrepo.CaptchaSettingsRepository {
	return &PgxCaptchaSettingsRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CaptchaSettingsRepository = (*PgxCaptchaSettingsRepository)(nil)

func (r *PgxCaptchaSettingsRepository) GetCaptchaSettings(ctx context.Context) (*domain.CaptchaSettings, error) {
	query := `SELECT site_key, secret_key, updated_at, updated_by FROM captcha_settings WHERE id = $1;`
	var m models.CaptchaSettings
	err := r.Pool.QueryRow(ctx, query, captchaSettingsRowID).Scan(&m.SiteKey, &m.SecretKey, &m.UpdatedAt, &m.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load captcha settings: %w", err)
	}
	settings := mapping.ToDomainCaptchaSettings(m)
	return &settings, nil
}

func (r *PgxCaptchaSettingsRepository) SaveCaptchaSettings(ctx context.Context, settings domain.CaptchaSettings) error {
	m := mapping.ToModelCaptchaSettings(settings)
	query := `
		INSERT INTO captcha_settings (id, site_key, secret_key, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			site_key = EXCLUDED.site_key,
			secret_key = EXCLUDED.secret_key,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by;
	`
	if _, err := r.Pool.Exec(ctx, query, captchaSettingsRowID, m.SiteKey, m.SecretKey, m.UpdatedAt, m.UpdatedBy); err != nil {
		return fmt.Errorf("failed to save captcha settings: %w", err)
	}
	return nil
}
