//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"coachbook/internal/handler/middleware"
	"coachbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubResolver map[string]string

func (s stubResolver) CallerID(token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("invalid token")
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.NewAuthMiddleware(stubResolver{"good": "S"})
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	t.Run("valid token exposes the caller id", func(t *testing.T) {
		var body struct {
			ID string `json:"id"`
		}
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "good")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, "S", body.ID)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "forged")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
