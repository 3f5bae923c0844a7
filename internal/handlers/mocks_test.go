package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock SubmissionService ---
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitReview(ctx context.Context, req dto.SubmitReviewRequest, client dto.ClientInfo) (string, error) {
	args := m.Called(ctx, req, client)
	return args.String(0), args.Error(1)
}

var _ portssvc.SubmissionSvc = (*MockSubmissionService)(nil)

// --- Mock PublicationService ---
type MockPublicationService struct {
	mock.Mock
}

func (m *MockPublicationService) ListPublished(ctx context.Context, requestedCount int, nonce string, client dto.ClientInfo) ([]domain.Review, error) {
	args := m.Called(ctx, requestedCount, nonce, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

var _ portssvc.PublicationSvc = (*MockPublicationService)(nil)

// --- Mock ModerationService ---
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockModerationService) ListReviews(ctx context.Context, params dto.ListReviewsParams) ([]domain.Review, *string, error) {
	args := m.Called(ctx, params)
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

func (m *MockModerationService) UpdateReview(ctx context.Context, reviewID string, req dto.UpdateReviewRequest, actor string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockModerationService) Transition(ctx context.Context, reviewID string, action domain.ModerationAction, actor string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, action, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockModerationService) DeleteReview(ctx context.Context, reviewID string, actor string) error {
	return m.Called(ctx, reviewID, actor).Error(0)
}

var _ portssvc.ModerationSvcFacade = (*MockModerationService)(nil)

// --- Mock CaptchaSettingsService ---
type MockCaptchaSettingsService struct {
	mock.Mock
}

func (m *MockCaptchaSettingsService) CaptchaSettings(ctx context.Context) (domain.CaptchaSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CaptchaSettings), args.Error(1)
}

func (m *MockCaptchaSettingsService) UpdateCaptchaSettings(ctx context.Context, req dto.UpdateCaptchaSettingsRequest, actor string) (domain.CaptchaSettings, error) {
	args := m.Called(ctx, req, actor)
	return args.Get(0).(domain.CaptchaSettings), args.Error(1)
}

var _ portssvc.CaptchaSettingsSvc = (*MockCaptchaSettingsService)(nil)

// --- Mock NonceService ---
type MockNonceService struct {
	mock.Mock
}

func (m *MockNonceService) Issue(sessionID, action string) (string, time.Time, error) {
	args := m.Called(sessionID, action)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockNonceService) Verify(token, sessionID, action string) bool {
	return m.Called(token, sessionID, action).Bool(0)
}

var _ portssvc.NonceSvc = (*MockNonceService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) ValidateToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)
