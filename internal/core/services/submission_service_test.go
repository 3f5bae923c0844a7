package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/SscSPs/customer_reviews_app/internal/core/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SubmissionServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockReviewRepository
	mockVerifier *MockCaptchaVerifier
	mockNonces   *MockNonceSvc
	service      *services.SubmissionService
	now          time.Time
	client       dto.ClientInfo
}

func (suite *SubmissionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReviewRepository)
	suite.mockVerifier = new(MockCaptchaVerifier)
	suite.mockNonces = new(MockNonceSvc)
	suite.now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	suite.client = dto.ClientInfo{SessionID: "session-1", RemoteIP: "203.0.113.7"}
	suite.service = services.NewSubmissionService(suite.mockRepo, suite.mockVerifier, suite.mockNonces,
		services.WithSubmissionClock(func() time.Time { return suite.now }),
		services.WithIDGenerator(func() string { return "review-uuid" }),
	)
}

func validRequest() dto.SubmitReviewRequest {
	return dto.SubmitReviewRequest{
		Title:        "Great service",
		Description:  "Fast and friendly.",
		Name:         "Ana",
		Date:         "2024-05-20",
		CaptchaToken: "captcha-token",
		Nonce:        "nonce-token",
	}
}

func (suite *SubmissionServiceTestSuite) expectNonce(valid bool) {
	suite.mockNonces.On("Verify", "nonce-token", "session-1", "crf_review").Return(valid).Once()
}

func (suite *SubmissionServiceTestSuite) TestSubmitReview_Success() {
	ctx := context.Background()
	suite.expectNonce(true)
	suite.mockVerifier.On("Verify", ctx, "captcha-token", "203.0.113.7").Return(true).Once()

	var saved domain.Review
	suite.mockRepo.On("CreateDraft", ctx, mock.AnythingOfType("domain.Review")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Review) }).
		Return(nil).Once()

	id, err := suite.service.SubmitReview(ctx, validRequest(), suite.client)

	suite.Require().NoError(err)
	suite.Equal("review-uuid", id)
	suite.Equal(domain.StateDraft, saved.ModerationState)
	suite.Equal("Great service", saved.Title)
	suite.Equal("Fast and friendly.", saved.Description)
	suite.Equal("Ana", saved.ReviewerName)
	suite.Equal(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), saved.ReviewDate)
	suite.Equal(suite.now, saved.CreatedAt)
	suite.Nil(saved.PublishedAt)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockVerifier.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestSubmitReview_BadNonceStopsEverything() {
	suite.expectNonce(false)

	id, err := suite.service.SubmitReview(context.Background(), validRequest(), suite.client)

	suite.ErrorIs(err, apperrors.ErrSecurityCheckFailed)
	suite.Empty(id)
	suite.mockVerifier.AssertNotCalled(suite.T(), "Verify", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateDraft", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestSubmitReview_MissingCaptcha() {
	suite.expectNonce(true)
	req := validRequest()
	req.CaptchaToken = ""

	_, err := suite.service.SubmitReview(context.Background(), req, suite.client)

	suite.ErrorIs(err, apperrors.ErrCaptchaMissing)
	suite.mockVerifier.AssertNotCalled(suite.T(), "Verify", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateDraft", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestSubmitReview_CaptchaRejected() {
	ctx := context.Background()
	suite.expectNonce(true)
	suite.mockVerifier.On("Verify", ctx, "captcha-token", "203.0.113.7").Return(false).Once()

	_, err := suite.service.SubmitReview(ctx, validRequest(), suite.client)

	suite.ErrorIs(err, apperrors.ErrCaptchaFailed)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateDraft", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestSubmitReview_CaptchaCheckedBeforeFields() {
	ctx := context.Background()
	suite.expectNonce(true)
	suite.mockVerifier.On("Verify", ctx, "captcha-token", "203.0.113.7").Return(false).Once()

	req := validRequest()
	req.Title = ""

	_, err := suite.service.SubmitReview(ctx, req, suite.client)
	suite.ErrorIs(err, apperrors.ErrCaptchaFailed)
}

func (suite *SubmissionServiceTestSuite) TestSubmitReview_ListsEveryMissingField() {
	ctx := context.Background()
	suite.expectNonce(true)
	suite.mockVerifier.On("Verify", ctx, "captcha-token", "203.0.113.7").Return(true).Once()

	req := validRequest()
	req.Title = "<script>alert(1)</script>"
	req.Description = "   "
	req.Name = "\t"
	req.Date = "20/05/2024"

	_, err := suite.service.SubmitReview(ctx, req, suite.client)

	suite.ErrorIs(err, apperrors.ErrMissingFields)
	var missing *apperrors.MissingFieldsError
	suite.Require().ErrorAs(err, &missing)
	suite.Equal([]string{"title", "description", "name", "date"}, missing.Fields)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateDraft", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestSubmitReview_SanitizesMarkup() {
	ctx := context.Background()
	suite.expectNonce(true)
	suite.mockVerifier.On("Verify", ctx, "captcha-token", "203.0.113.7").Return(true).Once()
	suite.mockRepo.On("CreateDraft", ctx, mock.MatchedBy(func(r domain.Review) bool {
		return r.Title == "Nice" && r.ReviewerName == "Bob" && r.Description == "<b>Good</b>\nline two"
	})).Return(nil).Once()

	req := validRequest()
	req.Title = "<b>Nice</b><script>x()</script>"
	req.Name = "  Bob  "
	req.Description = "<b>Good</b><script>steal()</script>\nline two"

	_, err := suite.service.SubmitReview(ctx, req, suite.client)
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestSubmitReview_StoreFailure() {
	ctx := context.Background()
	suite.expectNonce(true)
	suite.mockVerifier.On("Verify", ctx, "captcha-token", "203.0.113.7").Return(true).Once()
	suite.mockRepo.On("CreateDraft", ctx, mock.AnythingOfType("domain.Review")).Return(assert.AnError).Once()

	id, err := suite.service.SubmitReview(ctx, validRequest(), suite.client)

	suite.Empty(id)
	suite.ErrorIs(err, apperrors.ErrStoreFailure)
	suite.ErrorIs(err, assert.AnError)
}

func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}
