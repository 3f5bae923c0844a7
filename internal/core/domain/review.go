package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
)

// ReviewDateLayout is the wire and storage format of a review date.
const ReviewDateLayout = "2006-01-02"

// ModerationState is the editorial state of a review.
type ModerationState string

const (
	StateDraft     ModerationState = "DRAFT"
	StatePublished ModerationState = "PUBLISHED"
	StateRejected  ModerationState = "REJECTED"
)

// allowedTransitions lists, per state, the states a moderator may move a review to.
var allowedTransitions = map[ModerationState][]ModerationState{
	StateDraft:     {StatePublished, StateRejected},
	StatePublished: {StateDraft, StateRejected},
	StateRejected:  {StateDraft},
}

// ParseModerationState converts user input (any case) into a ModerationState.
func ParseModerationState(s string) (ModerationState, error) {
	state := ModerationState(strings.ToUpper(strings.TrimSpace(s)))
	if !state.Valid() {
		return "", fmt.Errorf("%w: unknown moderation state %q", apperrors.ErrValidation, s)
	}
	return state, nil
}

// Valid reports whether s is one of the known states.
func (s ModerationState) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether a moderator may move a review from s to next.
func (s ModerationState) CanTransitionTo(next ModerationState) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ModerationAction is a named moderator operation. Each action has one target state and
// only applies from specific source states.
type ModerationAction string

const (
	ActionPublish   ModerationAction = "publish"
	ActionReject    ModerationAction = "reject"
	ActionRestore   ModerationAction = "restore"
	ActionUnpublish ModerationAction = "unpublish"
)

type actionRule struct {
	from []ModerationState
	to   ModerationState
}

var actionRules = map[ModerationAction]actionRule{
	ActionPublish:   {from: []ModerationState{StateDraft}, to: StatePublished},
	ActionReject:    {from: []ModerationState{StateDraft, StatePublished}, to: StateRejected},
	ActionRestore:   {from: []ModerationState{StateRejected}, to: StateDraft},
	ActionUnpublish: {from: []ModerationState{StatePublished}, to: StateDraft},
}

// ParseModerationAction converts user input (any case) into a ModerationAction.
func ParseModerationAction(s string) (ModerationAction, error) {
	action := ModerationAction(strings.ToLower(strings.TrimSpace(s)))
	if !action.Valid() {
		return "", fmt.Errorf("%w: unknown moderation action %q", apperrors.ErrValidation, s)
	}
	return action, nil
}

// Valid reports whether a is one of the known actions.
func (a ModerationAction) Valid() bool {
	_, ok := actionRules[a]
	return ok
}

// Target is the state a review ends up in after a.
func (a ModerationAction) Target() ModerationState {
	return actionRules[a].to
}

// AppliesTo reports whether a may be taken on a review currently in state.
func (a ModerationAction) AppliesTo(state ModerationState) bool {
	for _, from := range actionRules[a].from {
		if from == state {
			return true
		}
	}
	return false
}

// Review is a visitor-submitted review and its moderation state.
type Review struct {
	ReviewID        string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	ReviewerName    string          `json:"name"`
	ReviewDate      time.Time       `json:"date"`
	ModerationState ModerationState `json:"moderationState"`
	PublishedAt     *time.Time      `json:"publishedAt,omitempty"` // Nil unless PUBLISHED
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewDraftReview builds a review in the DRAFT state. Reviews are never created in any other state.
func NewDraftReview(id, title, description, reviewerName string, reviewDate, now time.Time) Review {
	return Review{
		ReviewID:        id,
		Title:           title,
		Description:     description,
		ReviewerName:    reviewerName,
		ReviewDate:      reviewDate,
		ModerationState: StateDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyTransition moves the review to next, maintaining PublishedAt.
func (r *Review) ApplyTransition(next ModerationState, at time.Time) error {
	if !r.ModerationState.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, r.ModerationState, next)
	}
	r.ModerationState = next
	if next == StatePublished {
		published := at
		r.PublishedAt = &published
	} else {
		r.PublishedAt = nil
	}
	r.UpdatedAt = at
	return nil
}

// ApplyAction performs a on the review. It fails with ErrInvalidTransition when the review
// is not in one of the action's source states.
func (r *Review) ApplyAction(a ModerationAction, at time.Time) error {
	if !a.Valid() {
		return fmt.Errorf("%w: unknown moderation action %q", apperrors.ErrValidation, a)
	}
	if !a.AppliesTo(r.ModerationState) {
		return fmt.Errorf("%w: cannot %s a %s review", apperrors.ErrInvalidTransition, a, r.ModerationState)
	}
	return r.ApplyTransition(a.Target(), at)
}

// IsPublished reports whether the review is publicly visible.
func (r Review) IsPublished() bool {
	return r.ModerationState == StatePublished
}
