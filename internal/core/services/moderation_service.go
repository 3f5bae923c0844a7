package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/SscSPs/customer_reviews_app/internal/platform/metrics"
)

// ModerationService is the only path through which a review changes state.
type ModerationService struct {
	BaseService
	reviewRepo portsrepo.ReviewRepositoryFacade
	now        func() time.Time
}

// ModerationServiceOption configures a ModerationService.
type ModerationServiceOption func(*ModerationService)

// WithModerationClock overrides the clock used for transition timestamps.
func WithModerationClock(now func() time.Time) ModerationServiceOption {
	return func(s *ModerationService) {
		s.now = now
	}
}

// NewModerationService creates a ModerationService.
func NewModerationService(repo portsrepo.ReviewRepositoryFacade, opts ...ModerationServiceOption) *ModerationService {
	s := &ModerationService{reviewRepo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ModerationSvcFacade = (*ModerationService)(nil)

func (s *ModerationService) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find review", slog.String("review_id", reviewID))
		}
		return nil, err
	}
	return review, nil
}

func (s *ModerationService) ListReviews(ctx context.Context, params dto.ListReviewsParams) ([]domain.Review, *string, error) {
	state, err := domain.ParseModerationState(params.State)
	if err != nil {
		return nil, nil, err
	}
	reviews, next, err := s.reviewRepo.ListReviewsByState(ctx, state, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list reviews", slog.String("state", string(state)))
		}
		return nil, nil, err
	}
	return reviews, next, nil
}

// UpdateReview applies the submission sanitization rules to moderator edits.
func (s *ModerationService) UpdateReview(ctx context.Context, reviewID string, req dto.UpdateReviewRequest, actor string) (*domain.Review, error) {
	content, err := sanitizeReviewContent(req.Title, req.Description, req.Name, req.Date)
	if err != nil {
		return nil, err
	}

	review, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.Title = content.Title
	review.Description = content.Description
	review.ReviewerName = content.ReviewerName
	review.ReviewDate = content.ReviewDate
	review.UpdatedAt = s.now().UTC()

	if err := s.reviewRepo.UpdateReviewContent(ctx, *review); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.ReportError(ctx, err, "update_review", map[string]string{"component": "moderation"}, slog.String("review_id", reviewID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreFailure, err)
	}

	s.LogInfo(ctx, "Review updated", slog.String("review_id", reviewID), slog.String("moderator", actor))
	return review, nil
}

func (s *ModerationService) Transition(ctx context.Context, reviewID string, action domain.ModerationAction, actor string) (*domain.Review, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: unknown moderation action %q", apperrors.ErrValidation, action)
	}
	next := action.Target()

	before, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !action.AppliesTo(before.ModerationState) {
		return nil, fmt.Errorf("%w: cannot %s a %s review", apperrors.ErrInvalidTransition, action, before.ModerationState)
	}

	review, err := s.reviewRepo.TransitionState(ctx, reviewID, action, s.now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidTransition) {
			return nil, err
		}
		s.ReportError(ctx, err, "transition_state", map[string]string{"component": "moderation", "action": string(action)}, slog.String("review_id", reviewID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreFailure, err)
	}

	metrics.RecordTransition(string(before.ModerationState), string(next))
	s.LogInfo(ctx, "Review moderated",
		slog.String("review_id", reviewID),
		slog.String("action", string(action)),
		slog.String("from", string(before.ModerationState)),
		slog.String("to", string(next)),
		slog.String("moderator", actor),
	)
	return review, nil
}

func (s *ModerationService) DeleteReview(ctx context.Context, reviewID string, actor string) error {
	if err := s.reviewRepo.DeleteReview(ctx, reviewID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.ReportError(ctx, err, "delete_review", map[string]string{"component": "moderation"}, slog.String("review_id", reviewID))
		return fmt.Errorf("%w: %w", apperrors.ErrStoreFailure, err)
	}
	s.LogInfo(ctx, "Review deleted", slog.String("review_id", reviewID), slog.String("moderator", actor))
	return nil
}
