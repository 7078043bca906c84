package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/lmsdash/internal/app/models/dto"
	"github.com/yigit/lmsdash/internal/pkg/apperrors"
)

// HandleAPIError writes the JSON error response for err. Known application
// errors carry their own message; anything else becomes a 500 with the
// generic fallback message and is logged, never echoed to the client.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	var custom *apperrors.CustomError
	message := func(defaultMsg string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return defaultMsg
	}
	details := func() []string {
		if errors.As(err, &custom) {
			return custom.Details
		}
		return nil
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(message("Resource not found")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message("Validation failed"), details()...))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message("Bad request"), details()...))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(message("Resource already exists")))
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg(fallback)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback))
	}
}
