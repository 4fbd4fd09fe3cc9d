package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rinde17/stocky/pkg/errors"
	"github.com/Rinde17/stocky/pkg/middleware"
)

// statusCookie carries the post-mutation status message to the next index
// read, standing in for the original server-side session flash.
const statusCookie = "status"

// currentUserID returns the authenticated user id placed in the context by
// the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// respondError maps service errors onto HTTP responses
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if stdErr, ok := err.(*errors.StandardError); ok {
		if stdErr.HTTPStatus() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("error_code", stdErr.Code),
				zap.String("details", stdErr.Details),
				zap.String("path", c.Request.URL.Path),
			)
			// Do not expose storage internals
			c.JSON(stdErr.HTTPStatus(), errors.NewStandardError(stdErr.Code, stdErr.Message, ""))
			return
		}
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	logger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, errors.NewInternalError("internal server error", nil))
}

// setStatus stores a flash status message for the next index read
func setStatus(c *gin.Context, message string) {
	c.SetCookie(statusCookie, url.QueryEscape(message), 60, "/", "", false, false)
}

// popStatus reads and clears the flash status message
func popStatus(c *gin.Context) string {
	value, err := c.Cookie(statusCookie)
	if err != nil || value == "" {
		return ""
	}
	c.SetCookie(statusCookie, "", -1, "/", "", false, false)
	message, err := url.QueryUnescape(value)
	if err != nil {
		return ""
	}
	return message
}
