package api

import (
	"net/http"

	reqdto "coachbook/internal/handler/dto/request"
	"coachbook/internal/handler/httperr"
	"coachbook/internal/handler/middleware"
	"coachbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errNoCaller = errs.New("authenticated route reached without a caller id")

func callerID(c *gin.Context) (string, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoCaller, "Unauthorized", nil)
		return "", false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var detail any
		if fields := reqdto.ValidationDetail(err); len(fields) > 0 {
			detail = fields
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
		return false
	}
	return true
}
