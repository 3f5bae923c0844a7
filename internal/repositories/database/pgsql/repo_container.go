package pgsql

import (
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories onto a connection pool.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ReviewRepo:   newPgxReviewRepository(db),
		SettingsRepo: newPgxCaptchaSettingsRepository(db),
	}
}
