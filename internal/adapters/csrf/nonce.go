// Package csrf issues and verifies the nonces that protect the review form.
package csrf

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const nonceIssuer = "reviews-csrf"

type nonceClaims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// NonceManager signs short-lived tokens bound to a session and an action.
type NonceManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a NonceManager.
type Option func(*NonceManager)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *NonceManager) {
		m.now = now
	}
}

// NewNonceManager creates a NonceManager. secret must not be empty.
func NewNonceManager(secret string, ttl time.Duration, opts ...Option) (*NonceManager, error) {
	if secret == "" {
		return nil, errors.New("nonce secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("nonce ttl must be positive")
	}
	m := &NonceManager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Issue returns a nonce for sessionID and action together with its expiry.
func (m *NonceManager) Issue(sessionID, action string) (string, time.Time, error) {
	if sessionID == "" || action == "" {
		return "", time.Time{}, errors.New("session id and action are required")
	}
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := nonceClaims{
		Action: action,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    nonceIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify reports whether token was issued by this manager for sessionID and action and is unexpired.
func (m *NonceManager) Verify(token, sessionID, action string) bool {
	if token == "" || sessionID == "" {
		return false
	}
	claims := &nonceClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(nonceIssuer),
		jwt.WithSubject(sessionID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return false
	}
	return claims.Action == action
}
