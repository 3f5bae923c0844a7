package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock type for the ReviewRepositoryFacade interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) QueryPublished(ctx context.Context, limit int) ([]domain.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListReviewsByState(ctx context.Context, state domain.ModerationState, limit int, nextToken *string) ([]domain.Review, *string, error) {
	args := m.Called(ctx, state, limit, nextToken)
	var reviews []domain.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.Review)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return reviews, next, args.Error(2)
}

func (m *MockReviewRepository) CreateDraft(ctx context.Context, review domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) UpdateReviewContent(ctx context.Context, review domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, reviewID string) error {
	return m.Called(ctx, reviewID).Error(0)
}

func (m *MockReviewRepository) TransitionState(ctx context.Context, reviewID string, action domain.ModerationAction, at time.Time) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, action, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

// MockCaptchaVerifier is a mock type for the CaptchaVerifier interface
type MockCaptchaVerifier struct {
	mock.Mock
}

func (m *MockCaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) bool {
	return m.Called(ctx, token, remoteIP).Bool(0)
}

// MockNonceSvc is a mock type for the NonceSvc interface
type MockNonceSvc struct {
	mock.Mock
}

func (m *MockNonceSvc) Issue(sessionID, action string) (string, time.Time, error) {
	args := m.Called(sessionID, action)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockNonceSvc) Verify(token, sessionID, action string) bool {
	return m.Called(token, sessionID, action).Bool(0)
}

// MockCaptchaSettingsRepository is a mock type for the CaptchaSettingsRepository interface
type MockCaptchaSettingsRepository struct {
	mock.Mock
}

func (m *MockCaptchaSettingsRepository) GetCaptchaSettings(ctx context.Context) (*domain.CaptchaSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaptchaSettings), args.Error(1)
}

func (m *MockCaptchaSettingsRepository) SaveCaptchaSettings(ctx context.Context, settings domain.CaptchaSettings) error {
	return m.Called(ctx, settings).Error(0)
}
