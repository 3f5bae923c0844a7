package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
)

// memoryReviewRepository is a stateful review store for tests that follow a review
// across several services.
type memoryReviewRepository struct {
	mu      sync.Mutex
	reviews map[string]domain.Review
}

var _ portsrepo.ReviewRepositoryFacade = (*memoryReviewRepository)(nil)

func newMemoryReviewRepository() *memoryReviewRepository {
	return &memoryReviewRepository{reviews: make(map[string]domain.Review)}
}

func copyReview(r domain.Review) domain.Review {
	if r.PublishedAt != nil {
		published := *r.PublishedAt
		r.PublishedAt = &published
	}
	return r
}

func (m *memoryReviewRepository) FindReviewByID(_ context.Context, reviewID string) (*domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[reviewID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	r = copyReview(r)
	return &r, nil
}

func (m *memoryReviewRepository) QueryPublished(_ context.Context, limit int) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Review
	for _, r := range m.reviews {
		if r.IsPublished() {
			out = append(out, copyReview(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(*out[j].PublishedAt) {
			return out[i].PublishedAt.After(*out[j].PublishedAt)
		}
		return out[i].ReviewID > out[j].ReviewID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryReviewRepository) ListReviewsByState(_ context.Context, state domain.ModerationState, limit int, _ *string) ([]domain.Review, *string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Review
	for _, r := range m.reviews {
		if r.ModerationState == state {
			out = append(out, copyReview(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (m *memoryReviewRepository) CreateDraft(_ context.Context, review domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if review.ModerationState != domain.StateDraft {
		return fmt.Errorf("create %s: not a draft", review.ReviewID)
	}
	if _, exists := m.reviews[review.ReviewID]; exists {
		return fmt.Errorf("create %s: duplicate id", review.ReviewID)
	}
	m.reviews[review.ReviewID] = copyReview(review)
	return nil
}

func (m *memoryReviewRepository) UpdateReviewContent(_ context.Context, review domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.reviews[review.ReviewID]
	if !ok {
		return apperrors.ErrNotFound
	}
	current.Title = review.Title
	current.Description = review.Description
	current.ReviewerName = review.ReviewerName
	current.ReviewDate = review.ReviewDate
	current.UpdatedAt = review.UpdatedAt
	m.reviews[review.ReviewID] = current
	return nil
}

func (m *memoryReviewRepository) DeleteReview(_ context.Context, reviewID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reviews[reviewID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.reviews, reviewID)
	return nil
}

func (m *memoryReviewRepository) TransitionState(_ context.Context, reviewID string, action domain.ModerationAction, at time.Time) (*domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[reviewID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if err := r.ApplyAction(action, at); err != nil {
		return nil, err
	}
	m.reviews[reviewID] = r
	out := copyReview(r)
	return &out, nil
}

// acceptingVerifier accepts every non-empty CAPTCHA token.
type acceptingVerifier struct{}

func (acceptingVerifier) Verify(_ context.Context, token, _ string) bool { return token != "" }

// sessionNonces accepts the nonce "valid-<session>" for the review action.
type sessionNonces struct{}

func (sessionNonces) Issue(sessionID, _ string) (string, time.Time, error) {
	return "valid-" + sessionID, time.Now().Add(time.Hour), nil
}

func (sessionNonces) Verify(token, sessionID, _ string) bool {
	return token == "valid-"+sessionID
}
