package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	"github.com/SscSPs/customer_reviews_app/internal/models"
	"github.com/SscSPs/customer_reviews_app/internal/utils/mapping"
	"github.com/SscSPs/customer_reviews_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const (
	reviewColumns = `review_id, title, description, reviewer_name, review_date, moderation_state, published_at, created_at, updated_at`

	defaultListLimit = 20
)

type PgxReviewRepository struct {
	BaseRepository
}

func newPgxReviewRepository(db DBTX) portsrepo.ReviewRepositoryFacade {
	return &PgxReviewRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxReviewRepository implements portsrepo.ReviewRepositoryFacade
var _ portsrepo.ReviewRepositoryFacade = (*PgxReviewRepository)(nil)

func scanReview(row pgx.Row) (models.Review, error) {
	var m models.Review
	err := row.Scan(
		&m.ReviewID,
		&m.Title,
		&m.Description,
		&m.ReviewerName,
		&m.ReviewDate,
		&m.ModerationState,
		&m.PublishedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectReviews(rows pgx.Rows) ([]models.Review, error) {
	defer rows.Close()
	var out []models.Review
	for rows.Next() {
		m, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}
	return out, nil
}

func (r *PgxReviewRepository) CreateDraft(ctx context.Context, review domain.Review) error {
	if review.ModerationState != domain.StateDraft {
		return fmt.Errorf("%w: reviews must be created as %s, got %s", apperrors.ErrValidation, domain.StateDraft, review.ModerationState)
	}
	m := mapping.ToModelReview(review)
	query := `
		INSERT INTO reviews (review_id, title, description, reviewer_name, review_date, moderation_state, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReviewID,
		m.Title,
		m.Description,
		m.ReviewerName,
		m.ReviewDate,
		m.ModerationState,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review %s: %w", m.ReviewID, err)
	}
	return nil
}

func (r *PgxReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE review_id = $1;`
	m, err := scanReview(r.Pool.QueryRow(ctx, query, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find review by ID %s: %w", reviewID, err)
	}
	review := mapping.ToDomainReview(m)
	return &review, nil
}

// QueryPublished returns PUBLISHED reviews ordered by publication time, newest first.
// review_id breaks ties so the order is stable.
func (r *PgxReviewRepository) QueryPublished(ctx context.Context, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		return []domain.Review{}, nil
	}
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE moderation_state = $1
		ORDER BY published_at DESC, review_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.StatePublished), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query published reviews: %w", err)
	}
	ms, err := collectReviews(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainReviewSlice(ms), nil
}

// ListReviewsByState retrieves a page of reviews in one state using keyset pagination
// on (created_at, review_id).
func (r *PgxReviewRepository) ListReviewsByState(ctx context.Context, state domain.ModerationState, limit int, nextToken *string) ([]domain.Review, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	args := []any{string(state)}
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE moderation_state = $1`

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (created_at, review_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += ` ORDER BY created_at DESC, review_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query reviews in state "+string(state), err)
	}
	ms, err := collectReviews(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read reviews in state "+string(state), err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ReviewID)
		nextTokenVal = &token
		ms = ms[:limit]
	}

	return mapping.ToDomainReviewSlice(ms), nextTokenVal, nil
}

func (r *PgxReviewRepository) UpdateReviewContent(ctx context.Context, review domain.Review) error {
	m := mapping.ToModelReview(review)
	query := `
		UPDATE reviews
		SET title = $2, description = $3, reviewer_name = $4, review_date = $5, updated_at = $6
		WHERE review_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ReviewID, m.Title, m.Description, m.ReviewerName, m.ReviewDate, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update review %s: %w", m.ReviewID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReviewRepository) DeleteReview(ctx context.Context, reviewID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM reviews WHERE review_id = $1;`, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review %s: %w", reviewID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// TransitionState locks the row, checks the action against the current state and
// writes the new state in a single transaction.
func (r *PgxReviewRepository) TransitionState(ctx context.Context, reviewID string, action domain.ModerationAction, at time.Time) (_ *domain.Review, err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE review_id = $1 FOR UPDATE;`
	m, err := scanReview(tx.QueryRow(ctx, query, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock review %s: %w", reviewID, err)
	}

	review := mapping.ToDomainReview(m)
	if err = review.ApplyAction(action, at); err != nil {
		return nil, err
	}

	updated := mapping.ToModelReview(review)
	_, err = tx.Exec(ctx, `
		UPDATE reviews
		SET moderation_state = $2, published_at = $3, updated_at = $4
		WHERE review_id = $1;
	`, updated.ReviewID, updated.ModerationState, updated.PublishedAt, updated.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update state of review %s: %w", reviewID, err)
	}

	if err = r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &review, nil
}
