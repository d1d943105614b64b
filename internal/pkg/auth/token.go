// Package auth issues and verifies the HS256 bearer tokens that identify an
// actor. The token only names the actor; role and branch are always read
// from storage so a changed role takes effect immediately.
package auth

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "storefront"

var ErrInvalidToken = errors.New("invalid token")

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token whose subject is actorID.
func (t *Tokens) Issue(actorID kernel.UUID) (string, error) {
	if err := actorID.Validate(); err != nil {
		return "", err
	}

	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   actorID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifies the token and returns the actor id it names. Every failure
// wraps ErrInvalidToken.
func (t *Tokens) Parse(raw string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(token *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	return id, nil
}
