package dto

import (
	"time"
	"unicode/utf8"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
)

const excerptLength = 55

// ListReviewsParams defines query parameters for the moderation queue.
type ListReviewsParams struct {
	State     string  `form:"state,default=DRAFT"`
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// UpdateReviewRequest lets a moderator correct the submitted fields.
// Empty fields are reported by the service together, as on submission.
type UpdateReviewRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Date        string `json:"date" binding:"omitempty,ymd" example:"2024-01-31"`
}

// AdminReviewResponse is a review as shown in the moderation screens.
type AdminReviewResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Excerpt         string                 `json:"excerpt"`
	Name            string                 `json:"name"`
	Date            string                 `json:"date"`
	ModerationState domain.ModerationState `json:"moderationState"`
	PublishedAt     *time.Time             `json:"publishedAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// ListReviewsResponse wraps a page of the moderation queue.
type ListReviewsResponse struct {
	Reviews   []AdminReviewResponse `json:"reviews"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToAdminReviewResponse converts a domain.Review to AdminReviewResponse
func ToAdminReviewResponse(r *domain.Review) AdminReviewResponse {
	return AdminReviewResponse{
		ID:              r.ReviewID,
		Title:           r.Title,
		Description:     r.Description,
		Excerpt:         excerpt(r.Description),
		Name:            r.ReviewerName,
		Date:            r.ReviewDate.Format(domain.ReviewDateLayout),
		ModerationState: r.ModerationState,
		PublishedAt:     r.PublishedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToListReviewsResponse converts a page of reviews to ListReviewsResponse
func ToListReviewsResponse(reviews []domain.Review, nextToken *string) ListReviewsResponse {
	res := make([]AdminReviewResponse, len(reviews))
	for i := range reviews {
		res[i] = ToAdminReviewResponse(&reviews[i])
	}
	return ListReviewsResponse{Reviews: res, NextToken: nextToken}
}

func excerpt(s string) string {
	if utf8.RuneCountInString(s) <= excerptLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:excerptLength]) + "…"
}
