package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
)

const (
	// DefaultPublishedCount is used when the caller has no valid nonce or asks for a non-positive count.
	DefaultPublishedCount = 5
	// MaxPublishedCount caps how many reviews one request may fetch.
	MaxPublishedCount = 100
)

// PublicationService serves published reviews to the carousel.
type PublicationService struct {
	BaseService
	reviewRepo portsrepo.ReviewReader
	nonces     portssvc.NonceSvc
}

// NewPublicationService creates a PublicationService.
func NewPublicationService(repo portsrepo.ReviewReader, nonces portssvc.NonceSvc) *PublicationService {
	return &PublicationService{reviewRepo: repo, nonces: nonces}
}

var _ portssvc.PublicationSvc = (*PublicationService)(nil)

// EffectiveCount applies the count rules: an invalid nonce forces the default, otherwise
// the request is bounded to [1, MaxPublishedCount] with non-positive values becoming the default.
func EffectiveCount(requested int, nonceValid bool) int {
	switch {
	case !nonceValid:
		return DefaultPublishedCount
	case requested <= 0:
		return DefaultPublishedCount
	case requested > MaxPublishedCount:
		return MaxPublishedCount
	default:
		return requested
	}
}

func (s *PublicationService) ListPublished(ctx context.Context, requestedCount int, nonce string, client dto.ClientInfo) ([]domain.Review, error) {
	nonceValid := s.nonces.Verify(nonce, client.SessionID, portssvc.ReviewNonceAction)
	count := EffectiveCount(requestedCount, nonceValid)
	if !nonceValid && requestedCount != DefaultPublishedCount {
		s.LogDebug(ctx, "Carousel nonce invalid, using default count", slog.Int("requested", requestedCount))
	}

	reviews, err := s.reviewRepo.QueryPublished(ctx, count)
	if err != nil {
		s.ReportError(ctx, err, "query_published", map[string]string{"component": "publication"}, slog.Int("count", count))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreFailure, err)
	}

	published := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.IsPublished() {
			published = append(published, r)
		}
		if len(published) == count {
			break
		}
	}

	if len(published) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return published, nil
}
