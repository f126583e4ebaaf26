package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// parseSearchParams reads the shared pagination and sorting query parameters.
// Pages are zero-based. Absent parameters fall back to the defaults; malformed
// ones are a caller error.
func parseSearchParams(ctx *gin.Context) (search.Params, bool) {
	params := search.Params{
		SortBy:  ctx.Query("sortBy"),
		SortDir: search.Direction(ctx.DefaultQuery("sortDir", string(search.Asc))),
	}

	if params.SortDir != search.Asc && params.SortDir != search.Desc {
		badParam(ctx, "sortDir", "must be asc or desc")
		return params, false
	}

	var ok bool
	if params.Page, ok = intQuery(ctx, "page", 0); !ok {
		return params, false
	}
	if params.Size, ok = intQuery(ctx, "size", search.DefaultPageSize); !ok {
		return params, false
	}
	if raw := ctx.Query("unpaginated"); raw != "" {
		unpaginated, err := strconv.ParseBool(raw)
		if err != nil {
			badParam(ctx, "unpaginated", "must be a boolean")
			return params, false
		}
		params.Unpaginated = unpaginated
	}
	return params, true
}

// boolQuery reads an optional three-state boolean query parameter.
func boolQuery(ctx *gin.Context, name string) (*bool, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		badParam(ctx, name, "must be a boolean")
		return nil, false
	}
	return &value, true
}

func intQuery(ctx *gin.Context, name string, fallback int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		badParam(ctx, name, "must be an integer")
		return 0, false
	}
	return value, true
}

func badParam(ctx *gin.Context, name, reason string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameter").
		WithField(name).
		WithDetailsf("%s %s", name, reason)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// bindError writes the standard body for a request payload that failed
// binding or validation.
func bindError(ctx *gin.Context, err error, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
