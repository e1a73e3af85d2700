// Package identity turns a bearer token issued by the external identity
// provider into the caller's opaque user id. Issuing tokens is not this
// service's concern.
package identity

import (
	"context"
	"errors"
	"fmt"

	"coachbook/internal/pkg/config"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrMissingUserID = errors.New("token carries no user id")
)

// Resolver validates tokens against either a shared HMAC secret or the
// provider's published key set.
type Resolver struct {
	keyfunc     jwt.Keyfunc
	options     []jwt.ParserOption
	userIDClaim string
}

func NewHMACResolver(secret string, cfg config.AuthConfig) *Resolver {
	key := []byte(secret)
	return newResolver(func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	}, []string{"HS256", "HS384", "HS512"}, cfg)
}

// NewJWKSResolver keeps the key set fresh in the background until ctx is done.
func NewJWKSResolver(ctx context.Context, cfg config.AuthConfig) (*Resolver, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.JWKSURL})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS from %s: %w", cfg.JWKSURL, err)
	}
	return newResolver(k.Keyfunc, []string{"RS256", "RS384", "RS512", "ES256", "ES384", "EdDSA"}, cfg), nil
}

func newResolver(kf jwt.Keyfunc, methods []string, cfg config.AuthConfig) *Resolver {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	claim := cfg.UserIDClaim
	if claim == "" {
		claim = "sub"
	}
	return &Resolver{keyfunc: kf, options: opts, userIDClaim: claim}
}

// CallerID returns the user id carried by a valid token.
func (r *Resolver) CallerID(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, r.keyfunc, r.options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	id, ok := claims[r.userIDClaim].(string)
	if !ok || id == "" {
		return "", ErrMissingUserID
	}
	return id, nil
}
