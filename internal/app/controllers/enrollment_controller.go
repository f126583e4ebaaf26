package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/middleware"
)

// EnrollmentController handles enrollment endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// SearchEnrollments lists enrollments
// @Summary Search enrollments
// @Tags enrollments
// @Produce json
// @Param search query string false "Case-insensitive text over student, group and year"
// @Param status query string false "Filter by lifecycle status"
// @Param academicYear query string false "Filter by academic year"
// @Param groupId query string false "Filter by group id"
// @Param studentId query string false "Filter by student id"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortDir query string false "asc or desc"
// @Param unpaginated query bool false "Return all matches in one page"
// @Success 200 {object} search.Page[models.Enrollment]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /enrollments [get]
func (c *EnrollmentController) SearchEnrollments(ctx *gin.Context) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return
	}
	isActive, ok := boolQuery(ctx, "isActive")
	if !ok {
		return
	}

	status := models.EnrollmentStatus(ctx.Query("status"))
	if status != "" && !status.Valid() {
		badParam(ctx, "status", "must be one of PENDIENTE, CONFIRMADA, COMPLETADA, CANCELADA")
		return
	}

	filters := models.EnrollmentFilters{
		SearchText:   ctx.Query("search"),
		Status:       status,
		AcademicYear: ctx.Query("academicYear"),
		GroupID:      ctx.Query("groupId"),
		StudentID:    ctx.Query("studentId"),
		IsActive:     isActive,
	}

	page, err := c.enrollmentService.Search(ctx, filters, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetEnrollmentsByStudent lists one student's enrollments
// @Summary Get enrollments by student
// @Tags enrollments
// @Produce json
// @Param id path string true "Student id"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} search.Page[models.Enrollment]
// @Router /enrollments/student/{id} [get]
func (c *EnrollmentController) GetEnrollmentsByStudent(ctx *gin.Context) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return
	}
	page, err := c.enrollmentService.ByStudent(ctx, ctx.Param("id"), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetEnrollmentsByGroup lists one group's enrollments
// @Summary Get enrollments by group
// @Tags enrollments
// @Produce json
// @Param id path string true "Group id"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} search.Page[models.Enrollment]
// @Router /enrollments/group/{id} [get]
func (c *EnrollmentController) GetEnrollmentsByGroup(ctx *gin.Context) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return
	}
	page, err := c.enrollmentService.ByGroup(ctx, ctx.Param("id"), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// CountEnrollmentsByStatus tallies enrollments per lifecycle state
// @Summary Count enrollments by status
// @Tags enrollments
// @Produce json
// @Success 200 {object} map[string]int
// @Router /enrollments/stats/count-by-status [get]
func (c *EnrollmentController) CountEnrollmentsByStatus(ctx *gin.Context) {
	counts, err := c.enrollmentService.CountByStatus(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}

// CountEnrollmentsByYear tallies enrollments per academic year
// @Summary Count enrollments by academic year
// @Tags enrollments
// @Produce json
// @Success 200 {object} map[string]int
// @Router /enrollments/stats/count-by-year [get]
func (c *EnrollmentController) CountEnrollmentsByYear(ctx *gin.Context) {
	counts, err := c.enrollmentService.CountByYear(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}

// GetEnrollment retrieves one enrollment
// @Summary Get enrollment by id
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment id"
// @Success 200 {object} models.Enrollment
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	enrollment, err := c.enrollmentService.GetByPublicID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}

// CreateEnrollment registers a new enrollment
// @Summary Create an enrollment
// @Description Registers a student into a group; new enrollments start in
// @Description PENDIENTE
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body models.Enrollment true "Enrollment data"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment data"
// @Failure 404 {object} dto.ErrorResponse "Student or group not found"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var enrollment models.Enrollment
	if err := ctx.ShouldBindJSON(&enrollment); err != nil {
		bindError(ctx, err, "Invalid enrollment data")
		return
	}

	created, err := c.enrollmentService.Create(ctx, enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// PatchEnrollment partially updates an enrollment
// @Summary Patch an enrollment
// @Description Merges the present fields; status only changes through the
// @Description transition endpoints
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment id"
// @Param request body dto.UpdateEnrollmentRequest true "Fields to change"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [patch]
func (c *EnrollmentController) PatchEnrollment(ctx *gin.Context) {
	var patch dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err, "Invalid enrollment data")
		return
	}

	updated, err := c.enrollmentService.Patch(ctx, ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// ReplaceEnrollment fully replaces an enrollment
// @Summary Replace an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment id"
// @Param request body models.Enrollment true "Full enrollment record"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) ReplaceEnrollment(ctx *gin.Context) {
	var enrollment models.Enrollment
	if err := ctx.ShouldBindJSON(&enrollment); err != nil {
		bindError(ctx, err, "Invalid enrollment data")
		return
	}

	updated, err := c.enrollmentService.Replace(ctx, ctx.Param("id"), enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	if err := c.enrollmentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Enrollment deleted"})
}

// ConfirmEnrollment moves a pending enrollment to CONFIRMADA
// @Summary Confirm an enrollment
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment id"
// @Success 200 {object} models.Enrollment
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /enrollments/{id}/confirm [patch]
func (c *EnrollmentController) ConfirmEnrollment(ctx *gin.Context) {
	c.transition(ctx, c.enrollmentService.Confirm)
}

// CompleteEnrollment moves a confirmed enrollment to COMPLETADA
// @Summary Complete an enrollment
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment id"
// @Success 200 {object} models.Enrollment
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /enrollments/{id}/complete [patch]
func (c *EnrollmentController) CompleteEnrollment(ctx *gin.Context) {
	c.transition(ctx, c.enrollmentService.Complete)
}

// CancelEnrollment cancels an enrollment and deactivates it
// @Summary Cancel an enrollment
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment id"
// @Success 200 {object} models.Enrollment
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /enrollments/{id}/cancel [patch]
func (c *EnrollmentController) CancelEnrollment(ctx *gin.Context) {
	c.transition(ctx, c.enrollmentService.Cancel)
}

func (c *EnrollmentController) transition(ctx *gin.Context, move func(context.Context, string) (models.Enrollment, error)) {
	enrollment, err := move(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}
