package handlers

import (
	"errors"

	"devdash-backend/internal/middleware"
	"devdash-backend/internal/models"
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// currentUser returns the authenticated user id or answers 401.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Unauthorized")
		return "", false
	}
	return userID, true
}

// bindJSON decodes the body into dst or answers 400.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.ValidationError(c, "Invalid request body")
		return false
	}
	return true
}

// respondError maps service errors onto status codes. Unexpected errors are
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error, op, notFound string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ValidationError(c, verr.Message)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, notFound)
	default:
		entry := logrus.WithError(err).WithField("op", op)
		if userID, ok := middleware.CurrentUserID(c); ok {
			entry = entry.WithField("user_id", userID)
		}
		entry.Error("request failed")
		utils.InternalError(c)
	}
}

func deleted(c *gin.Context, message string) {
	utils.Success(c, models.MessageResponse{Message: message})
}
