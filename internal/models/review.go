package models

import "time"

// Review is the database representation of a review row.
type Review struct {
	ReviewID        string     `db:"review_id"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	ReviewerName    string     `db:"reviewer_name"`
	ReviewDate      time.Time  `db:"review_date"`
	ModerationState string     `db:"moderation_state"`
	PublishedAt     *time.Time `db:"published_at"` // Nullable
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}
