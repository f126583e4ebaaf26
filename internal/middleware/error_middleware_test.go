package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"already exists", apperrors.ErrAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid transition", apperrors.NewInvalidTransitionError("cannot transition"), http.StatusConflict, dto.ErrorCodeInvalidTransition},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceInvalid},
		{"validation", apperrors.NewValidationError("bad field"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"transport", apperrors.NewTransportError(errors.New("dial refused"), "upstream down"), http.StatusBadGateway, dto.ErrorCodeUpstreamError},
		{"unknown", errors.New("something odd"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleAPIErrorPrefersCustomMessage(t *testing.T) {
	_, body := handleError(t, apperrors.NewNotFoundError("tutor not found"))
	require.NotNil(t, body.Error)
	assert.Equal(t, "tutor not found", body.Error.Message)
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, body := handleError(t, errors.New("pq: connection reset"))
	require.NotNil(t, body.Error)
	assert.Equal(t, "Internal server error", body.Error.Message)
}
