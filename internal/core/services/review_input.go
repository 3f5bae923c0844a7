package services

import (
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/utils/sanitize"
)

// reviewContent is sanitized review input that passed the required-field check.
type reviewContent struct {
	Title        string
	Description  string
	ReviewerName string
	ReviewDate   time.Time
}

// sanitizeReviewContent cleans the four visitor-supplied fields and reports every
// field that is empty (or, for the date, unparseable) afterwards.
func sanitizeReviewContent(title, description, name, date string) (reviewContent, error) {
	content := reviewContent{
		Title:        sanitize.PlainText(title),
		Description:  sanitize.RichText(description),
		ReviewerName: sanitize.PlainText(name),
	}

	var missing []string
	if content.Title == "" {
		missing = append(missing, "title")
	}
	if content.Description == "" {
		missing = append(missing, "description")
	}
	if content.ReviewerName == "" {
		missing = append(missing, "name")
	}
	reviewDate, err := sanitize.Date(date)
	if err != nil {
		missing = append(missing, "date")
	}
	content.ReviewDate = reviewDate

	if len(missing) > 0 {
		return reviewContent{}, &apperrors.MissingFieldsError{Fields: missing}
	}
	return content, nil
}
