package dto

import (
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
)

// ClientInfo carries the per-request facts the review services need about the caller.
type ClientInfo struct {
	SessionID string
	RemoteIP  string
}

// SubmitReviewRequest is the review form payload. It is accepted as JSON or as a
// form-encoded body. Field presence is checked by the submission service after the
// security checks, so no binding rules are declared here.
type SubmitReviewRequest struct {
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	Name         string `json:"name" form:"name"`
	Date         string `json:"date" form:"date"`
	CaptchaToken string `json:"captchaToken" form:"captcha"`
	Nonce        string `json:"nonce" form:"nonce"`
}

// ListPublishedParams are the carousel query parameters.
type ListPublishedParams struct {
	Count       string `form:"count"`
	ReviewNonce string `form:"review_nonce"`
	Nonce       string `form:"nonce"`
}

// SubmitReviewResponse is returned when a review was accepted for moderation.
type SubmitReviewResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// FailureResponse is the error envelope shared by the public review endpoints.
type FailureResponse struct {
	Success    bool     `json:"success"`
	Error      string   `json:"error"`
	HTTPStatus int      `json:"httpStatus"`
	Fields     []string `json:"fields,omitempty"`
}

// PublishedReviewResponse is a review as rendered by the carousel.
type PublishedReviewResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// ListPublishedResponse wraps the published reviews.
type ListPublishedResponse struct {
	Success bool                      `json:"success"`
	Reviews []PublishedReviewResponse `json:"reviews"`
}

// NonceResponse carries a freshly issued CSRF nonce.
type NonceResponse struct {
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SiteKeyResponse exposes the public reCAPTCHA site key.
type SiteKeyResponse struct {
	SiteKey string `json:"siteKey"`
}

// ToPublishedReviewResponse converts a domain.Review to the carousel DTO
func ToPublishedReviewResponse(r domain.Review) PublishedReviewResponse {
	return PublishedReviewResponse{
		ID:          r.ReviewID,
		Title:       r.Title,
		Description: r.Description,
		Name:        r.ReviewerName,
		Date:        r.ReviewDate.Format(domain.ReviewDateLayout),
		PublishedAt: r.PublishedAt,
	}
}

// ToListPublishedResponse converts a slice of domain.Review to ListPublishedResponse
func ToListPublishedResponse(reviews []domain.Review) ListPublishedResponse {
	res := make([]PublishedReviewResponse, len(reviews))
	for i, r := range reviews {
		res[i] = ToPublishedReviewResponse(r)
	}
	return ListPublishedResponse{Success: true, Reviews: res}
}
