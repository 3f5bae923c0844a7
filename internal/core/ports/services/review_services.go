package services

import (
	"context"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
)

// SubmissionSvc accepts untrusted review submissions from visitors.
type SubmissionSvc interface {
	// SubmitReview runs the anti-abuse checks, sanitizes the input and stores a DRAFT.
	// It returns the id of the new review.
	SubmitReview(ctx context.Context, req dto.SubmitReviewRequest, client dto.ClientInfo) (string, error)
}

// PublicationSvc serves published reviews to the carousel.
type PublicationSvc interface {
	// ListPublished returns at most the effective count of PUBLISHED reviews, newest first.
	// An invalid nonce silently caps the count at the default.
	ListPublished(ctx context.Context, requestedCount int, nonce string, client dto.ClientInfo) ([]domain.Review, error)
}

// ModerationReaderSvc defines the moderator read operations
type ModerationReaderSvc interface {
	GetReview(ctx context.Context, reviewID string) (*domain.Review, error)
	ListReviews(ctx context.Context, params dto.ListReviewsParams) ([]domain.Review, *string, error)
}

// ModerationWriterSvc defines the moderator write operations
type ModerationWriterSvc interface {
	// UpdateReview corrects the submitted fields; the moderation state is left untouched.
	UpdateReview(ctx context.Context, reviewID string, req dto.UpdateReviewRequest, actor string) (*domain.Review, error)

	// Transition applies a moderation action, moving the review along the state machine.
	Transition(ctx context.Context, reviewID string, action domain.ModerationAction, actor string) (*domain.Review, error)

	// DeleteReview hard-deletes a review.
	DeleteReview(ctx context.Context, reviewID string, actor string) error
}

// ModerationSvcFacade combines all moderation service interfaces
type ModerationSvcFacade interface {
	ModerationReaderSvc
	ModerationWriterSvc
}
