//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coachbook/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the external identity provider would,
// using the shared HMAC secret from config.
type JWTHelper struct {
	cfg config.AuthConfig
}

func NewJWTHelper(cfg config.AuthConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string) string {
	t.Helper()
	return h.sign(t, userID, time.Now().Add(15*time.Minute))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	return h.sign(t, userID, time.Now().Add(-time.Minute))
}

func (h *JWTHelper) sign(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()
	claim := h.cfg.UserIDClaim
	if claim == "" {
		claim = "sub"
	}
	claims := jwt.MapClaims{
		claim: userID,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}
	if h.cfg.Issuer != "" {
		claims["iss"] = h.cfg.Issuer
	}
	if h.cfg.Audience != "" {
		claims["aud"] = h.cfg.Audience
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	require.NoError(t, err)
	return token
}
