package services

import "time"

// ReviewNonceAction is the action the review form nonces are bound to.
const ReviewNonceAction = "crf_review"

// NonceSvc issues and checks per-session, per-action CSRF tokens.
type NonceSvc interface {
	Issue(sessionID, action string) (string, time.Time, error)
	Verify(token, sessionID, action string) bool
}
