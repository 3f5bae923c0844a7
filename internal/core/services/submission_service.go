package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/SscSPs/customer_reviews_app/internal/platform/metrics"
	"github.com/SscSPs/customer_reviews_app/internal/utils"
	"github.com/google/uuid"
)

// SubmissionService turns visitor input into DRAFT reviews.
type SubmissionService struct {
	BaseService
	reviewRepo portsrepo.ReviewWriter
	verifier   portssvc.CaptchaVerifier
	nonces     portssvc.NonceSvc
	now        func() time.Time
	newID      func() string
}

// SubmissionServiceOption configures a SubmissionService.
type SubmissionServiceOption func(*SubmissionService)

// WithSubmissionClock overrides the clock used for CreatedAt.
func WithSubmissionClock(now func() time.Time) SubmissionServiceOption {
	return func(s *SubmissionService) {
		s.now = now
	}
}

// WithIDGenerator overrides the review id generator.
func WithIDGenerator(newID func() string) SubmissionServiceOption {
	return func(s *SubmissionService) {
		s.newID = newID
	}
}

// NewSubmissionService creates a SubmissionService.
func NewSubmissionService(repo portsrepo.ReviewWriter, verifier portssvc.CaptchaVerifier, nonces portssvc.NonceSvc, opts ...SubmissionServiceOption) *SubmissionService {
	s := &SubmissionService{
		reviewRepo: repo,
		verifier:   verifier,
		nonces:     nonces,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.SubmissionSvc = (*SubmissionService)(nil)

// SubmitReview runs the checks in order and stops at the first failure:
// nonce, CAPTCHA presence, CAPTCHA verification, sanitization and required fields, persistence.
func (s *SubmissionService) SubmitReview(ctx context.Context, req dto.SubmitReviewRequest, client dto.ClientInfo) (string, error) {
	session := slog.String("session", utils.HashSessionID(client.SessionID))

	if !s.nonces.Verify(req.Nonce, client.SessionID, portssvc.ReviewNonceAction) {
		s.LogInfo(ctx, "Review submission failed the security check", session)
		metrics.RecordSubmission(metrics.OutcomeSecurityCheck)
		return "", apperrors.ErrSecurityCheckFailed
	}

	if req.CaptchaToken == "" {
		metrics.RecordSubmission(metrics.OutcomeCaptchaMiss)
		return "", apperrors.ErrCaptchaMissing
	}

	if !s.verifier.Verify(ctx, req.CaptchaToken, client.RemoteIP) {
		s.LogInfo(ctx, "Review submission failed CAPTCHA verification", session)
		metrics.RecordSubmission(metrics.OutcomeCaptchaFail)
		return "", apperrors.ErrCaptchaFailed
	}

	content, err := sanitizeReviewContent(req.Title, req.Description, req.Name, req.Date)
	if err != nil {
		metrics.RecordSubmission(metrics.OutcomeMissingFields)
		return "", err
	}

	review := domain.NewDraftReview(s.newID(), content.Title, content.Description, content.ReviewerName, content.ReviewDate, s.now().UTC())
	if err := s.reviewRepo.CreateDraft(ctx, review); err != nil {
		s.ReportError(ctx, err, "create_draft", map[string]string{"component": "submission"}, slog.String("review_id", review.ReviewID))
		metrics.RecordSubmission(metrics.OutcomeStoreFailure)
		return "", fmt.Errorf("%w: %w", apperrors.ErrStoreFailure, err)
	}

	metrics.RecordSubmission(metrics.OutcomeAccepted)
	s.LogInfo(ctx, "Review submitted for moderation", slog.String("review_id", review.ReviewID), session)
	return review.ReviewID, nil
}
