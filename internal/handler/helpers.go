package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/LourceDev/3pages/internal/middleware"
	"github.com/LourceDev/3pages/internal/model"
	appErr "github.com/LourceDev/3pages/internal/pkg/errors"
	"github.com/LourceDev/3pages/internal/pkg/response"
)

func getUser(c *gin.Context) *model.User {
	value, _ := c.Get(middleware.ContextUserKey)
	user, _ := value.(*model.User)
	return user
}

// handleError is the single place component errors become HTTP statuses.
// Anything outside the taxonomy is a 500 with no detail in the body.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case appErr.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "not_found", "not found")
	case appErr.IsConflict(err):
		response.Error(c, http.StatusConflict, "conflict", "conflict")
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	case errors.Is(err, appErr.ErrUnauthorized), errors.Is(err, appErr.ErrTokenExpired):
		response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
	default:
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
