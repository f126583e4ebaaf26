package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/middleware"
)

// TutorController handles tutor-related endpoints
type TutorController struct {
	tutorService *services.TutorService
}

// NewTutorController creates a new TutorController
func NewTutorController(tutorService *services.TutorService) *TutorController {
	return &TutorController{tutorService: tutorService}
}

// SearchTutors lists tutors
// @Summary Search tutors
// @Tags tutors
// @Produce json
// @Param search query string false "Case-insensitive text over name, email, phone and document"
// @Param relationship query string false "Filter by relationship"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortDir query string false "asc or desc"
// @Param unpaginated query bool false "Return all matches in one page"
// @Success 200 {object} search.Page[models.Tutor]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /tutors [get]
func (c *TutorController) SearchTutors(ctx *gin.Context) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return
	}
	isActive, ok := boolQuery(ctx, "isActive")
	if !ok {
		return
	}
	filters := models.TutorFilters{
		SearchText:   ctx.Query("search"),
		Relationship: ctx.Query("relationship"),
		IsActive:     isActive,
	}

	page, err := c.tutorService.Search(ctx, filters, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetTutor retrieves one tutor
// @Summary Get tutor by id
// @Tags tutors
// @Produce json
// @Param id path string true "Tutor id"
// @Success 200 {object} models.Tutor
// @Failure 404 {object} dto.ErrorResponse "Tutor not found"
// @Router /tutors/{id} [get]
func (c *TutorController) GetTutor(ctx *gin.Context) {
	tutor, err := c.tutorService.GetByPublicID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tutor)
}

// CreateTutor registers a new tutor
// @Summary Create a tutor
// @Tags tutors
// @Accept json
// @Produce json
// @Param request body models.Tutor true "Tutor data"
// @Success 201 {object} models.Tutor
// @Failure 400 {object} dto.ErrorResponse "Invalid tutor data"
// @Router /tutors [post]
func (c *TutorController) CreateTutor(ctx *gin.Context) {
	var tutor models.Tutor
	if err := ctx.ShouldBindJSON(&tutor); err != nil {
		bindError(ctx, err, "Invalid tutor data")
		return
	}

	created, err := c.tutorService.Create(ctx, tutor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// PatchTutor partially updates a tutor
// @Summary Patch a tutor
// @Tags tutors
// @Accept json
// @Produce json
// @Param id path string true "Tutor id"
// @Param request body dto.UpdateTutorRequest true "Fields to change"
// @Success 200 {object} models.Tutor
// @Failure 400 {object} dto.ErrorResponse "Invalid tutor data"
// @Failure 404 {object} dto.ErrorResponse "Tutor not found"
// @Router /tutors/{id} [patch]
func (c *TutorController) PatchTutor(ctx *gin.Context) {
	var patch dto.UpdateTutorRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err, "Invalid tutor data")
		return
	}

	updated, err := c.tutorService.Patch(ctx, ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// ReplaceTutor fully replaces a tutor
// @Summary Replace a tutor
// @Tags tutors
// @Accept json
// @Produce json
// @Param id path string true "Tutor id"
// @Param request body models.Tutor true "Full tutor record"
// @Success 200 {object} models.Tutor
// @Failure 400 {object} dto.ErrorResponse "Invalid tutor data"
// @Failure 404 {object} dto.ErrorResponse "Tutor not found"
// @Router /tutors/{id} [put]
func (c *TutorController) ReplaceTutor(ctx *gin.Context) {
	var tutor models.Tutor
	if err := ctx.ShouldBindJSON(&tutor); err != nil {
		bindError(ctx, err, "Invalid tutor data")
		return
	}

	updated, err := c.tutorService.Replace(ctx, ctx.Param("id"), tutor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteTutor deactivates a tutor
// @Summary Delete a tutor
// @Description Deactivates the tutor; student references stay intact
// @Tags tutors
// @Produce json
// @Param id path string true "Tutor id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Tutor not found"
// @Router /tutors/{id} [delete]
func (c *TutorController) DeleteTutor(ctx *gin.Context) {
	if err := c.tutorService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Tutor deactivated"})
}
