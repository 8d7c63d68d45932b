package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// ErrorHandler centralizes error responses: every failure body carries
// success:false and a human-readable message, never a stack trace.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"success": false, "message": message})
}

// SuccessHandler centralizes success responses; success:true is stamped on
// every payload.
func SuccessHandler(c *gin.Context, statusCode int, payload gin.H) {
	payload["success"] = true
	c.JSON(statusCode, payload)
}

// BindAndValidate binds the JSON request and writes the 400 itself on
// failure.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainErrorHandler maps the sentinel domain errors onto status codes.
func DomainErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrNicknameTaken):
		ErrorHandler(c, http.StatusBadRequest, entity.ErrNicknameTaken.Error())
	case errors.Is(err, entity.ErrInvalidRole):
		ErrorHandler(c, http.StatusBadRequest, entity.ErrInvalidRole.Error())
	case errors.Is(err, entity.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusUnauthorized, entity.ErrInvalidCredentials.Error())
	case errors.Is(err, entity.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, entity.ErrForbidden.Error())
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, entity.ErrNotFound.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}
