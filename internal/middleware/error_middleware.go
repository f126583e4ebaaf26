package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP statuses and the standard
// error body. Controllers call it for every service failure so the mapping
// lives in exactly one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err, "Resource not found")
	case errors.Is(err, apperrors.ErrAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err, "Resource already exists")
	case errors.Is(err, apperrors.ErrInvalidStateTransition):
		respond(c, http.StatusConflict, dto.ErrorCodeInvalidTransition, err, "Invalid state transition")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceInvalid, err, "Conflict")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err, "Validation failed")
	case errors.Is(err, apperrors.ErrTransport):
		respond(c, http.StatusBadGateway, dto.ErrorCodeUpstreamError, err, "Upstream data source unavailable")
	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, nil, "Internal server error")
	}
}

// respond writes the error body, preferring the application error's own
// message over the generic fallback.
func respond(c *gin.Context, status int, code dto.ErrorCode, err error, fallback string) {
	message := fallback
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
