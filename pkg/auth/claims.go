package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the verified caller attached to a request.
type Identity struct {
	UserID   string
	Email    string
	Provider string
}

// Verifier checks a bearer token and resolves the caller.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID string
	Email  string
	JTI    string
}

// AccessTokenClaims represents the typed JWT issued to clients. The user id travels in sub.
type AccessTokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
