package services

import (
	"context"
	"time"
)

// AuthSvc authenticates moderators for the admin endpoints.
type AuthSvc interface {
	// Login checks the configured credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, time.Time, error)

	// ValidateToken parses a bearer token and returns the moderator name it was issued to.
	ValidateToken(tokenString string) (string, error)
}
