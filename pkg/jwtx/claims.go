package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultSessionTTL is how long a session token stays valid after issue.
	DefaultSessionTTL = 30 * 24 * time.Hour

	// DefaultRefreshAfter is the age after which a still-valid session is
	// silently reissued.
	DefaultRefreshAfter = 24 * time.Hour

	// ProviderCredentials tags sessions created by username/password sign-in.
	ProviderCredentials = "credentials"
)

// Claims are the session token claims. The user id travels in "sub".
type Claims struct {
	jwt.RegisteredClaims

	// Username at the time the session was issued.
	Username string `json:"username"`

	// Provider records how the user authenticated, e.g. "credentials".
	Provider string `json:"provider,omitempty"`
}

// NewSessionClaims builds claims for a session issued at now.
func NewSessionClaims(
	subject, username, provider, issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Username: username,
		Provider: provider,
	}
}

// NewJTI returns a random URL-safe value for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the issuer. An empty expectation accepts anything.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiryAt checks exp, nbf and iat against now, allowing leeway for
// clock skew. Session tokens must carry an expiry.
func (c *Claims) ValidateExpiryAt(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if !now.Before(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	if c.IssuedAt != nil && now.Before(c.IssuedAt.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}

// Age reports how long ago the token was issued. Tokens without iat are
// treated as brand new.
func (c *Claims) Age(now time.Time) time.Duration {
	if c.IssuedAt == nil {
		return 0
	}
	return now.Sub(c.IssuedAt.Time)
}
