package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"zap_shift/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingJWTSecret = errors.New("missing AUTH_JWT_SECRET")
	ErrInvalidToken     = errors.New("invalid token")
)

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 identity tokens and extracts the caller's email.
type JWTVerifier struct {
	secret  []byte
	options []jwt.ParserOption
}

var _ interfaces.ITokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret, issuer, audience string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &JWTVerifier{secret: []byte(secret), options: opts}, nil
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (interfaces.Identity, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return interfaces.Identity{}, ErrInvalidToken
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, v.options...)
	if err != nil {
		return interfaces.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return interfaces.Identity{}, ErrInvalidToken
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return interfaces.Identity{}, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}
	return interfaces.Identity{Subject: claims.Subject, Email: email}, nil
}
