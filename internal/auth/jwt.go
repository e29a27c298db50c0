// Package auth verifies bearer tokens minted by the portal's identity
// provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// ErrInvalidToken wraps every verification failure.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates HS256 access tokens and extracts the caller identity.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier for tokens signed with secret by issuer.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// claims carries the portal role next to the registered claims.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// ValidateToken parses and validates a token. Returns the subject user ID
// and its role.
func (v *Verifier) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return uuid.Nil, "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("%w: claims", ErrInvalidToken)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	if !domain.Role(c.Role).IsValid() {
		return uuid.Nil, "", fmt.Errorf("%w: unknown role %q", ErrInvalidToken, c.Role)
	}

	return userID, c.Role, nil
}

// Sign mints a token the Verifier accepts. The identity provider owns
// issuance in production; Sign serves local tooling and tests.
func (v *Verifier) Sign(userID uuid.UUID, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: string(role),
	})

	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
