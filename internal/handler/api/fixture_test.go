//go:build unit

package api_test

import (
	"net/http"
	"strings"

	reqdto "coachbook/internal/handler/dto/request"

	"github.com/gin-gonic/gin"
)

type testCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// fakeAuth treats the bearer token as the caller id.
func fakeAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("user_id", token)
	c.Next()
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := reqdto.RegisterValidations(); err != nil {
		panic(err)
	}
	return gin.New()
}
