package mapping

import (
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/SscSPs/customer_reviews_app/internal/models"
)

// ToModelReview converts a domain Review to a model Review
func ToModelReview(d domain.Review) models.Review {
	return models.Review{
		ReviewID:        d.ReviewID,
		Title:           d.Title,
		Description:     d.Description,
		ReviewerName:    d.ReviewerName,
		ReviewDate:      d.ReviewDate,
		ModerationState: string(d.ModerationState),
		PublishedAt:     d.PublishedAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainReview converts a model Review to a domain Review
func ToDomainReview(m models.Review) domain.Review {
	return domain.Review{
		ReviewID:        m.ReviewID,
		Title:           m.Title,
		Description:     m.Description,
		ReviewerName:    m.ReviewerName,
		ReviewDate:      m.ReviewDate,
		ModerationState: domain.ModerationState(m.ModerationState),
		PublishedAt:     m.PublishedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToDomainReviewSlice converts a slice of model Reviews to a slice of domain Reviews
func ToDomainReviewSlice(ms []models.Review) []domain.Review {
	ds := make([]domain.Review, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReview(m)
	}
	return ds
}
