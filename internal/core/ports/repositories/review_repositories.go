package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
)

// ReviewReader defines read operations for review data
type ReviewReader interface {
	// FindReviewByID retrieves a review in any moderation state.
	FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error)

	// QueryPublished retrieves at most limit PUBLISHED reviews, newest publication first.
	QueryPublished(ctx context.Context, limit int) ([]domain.Review, error)

	// ListReviewsByState retrieves a page of reviews in the given state, newest submission first.
	// It returns the reviews, a token for the next page, and an error.
	ListReviewsByState(ctx context.Context, state domain.ModerationState, limit int, nextToken *string) ([]domain.Review, *string, error)
}

// ReviewWriter defines write operations for review data
type ReviewWriter interface {
	// CreateDraft persists a new review. The review must be in the DRAFT state.
	CreateDraft(ctx context.Context, review domain.Review) error

	// UpdateReviewContent updates the submitted fields of a review, leaving its state untouched.
	UpdateReviewContent(ctx context.Context, review domain.Review) error

	// DeleteReview hard-deletes a review.
	DeleteReview(ctx context.Context, reviewID string) error
}

// ReviewModerator defines the moderation state transition. Only the moderation surface calls it.
type ReviewModerator interface {
	// TransitionState atomically validates and applies a moderation action and returns the updated review.
	TransitionState(ctx context.Context, reviewID string, action domain.ModerationAction, at time.Time) (*domain.Review, error)
}

// ReviewRepositoryFacade combines all review-related repository interfaces
type ReviewRepositoryFacade interface {
	ReviewReader
	ReviewWriter
	ReviewModerator
}
