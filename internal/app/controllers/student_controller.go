package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/middleware"
)

// StudentController handles student-related endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// SearchStudents lists students
// @Summary Search students
// @Description Returns a page of students matching the filters
// @Tags students
// @Produce json
// @Param search query string false "Case-insensitive text over name, email and parent name"
// @Param grade query string false "Filter by grade"
// @Param section query string false "Filter by section"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortDir query string false "asc or desc"
// @Param unpaginated query bool false "Return all matches in one page"
// @Success 200 {object} search.Page[models.Student]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /students [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return
	}
	isActive, ok := boolQuery(ctx, "isActive")
	if !ok {
		return
	}
	filters := models.StudentFilters{
		SearchText: ctx.Query("search"),
		Grade:      ctx.Query("grade"),
		Section:    ctx.Query("section"),
		IsActive:   isActive,
	}

	page, err := c.studentService.Search(ctx, filters, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetStudent retrieves one student
// @Summary Get student by id
// @Tags students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetByPublicID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// CreateStudent registers a new student
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body models.Student true "Student data"
// @Success 201 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Invalid student data"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		bindError(ctx, err, "Invalid student data")
		return
	}

	created, err := c.studentService.Create(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// PatchStudent partially updates a student
// @Summary Patch a student
// @Description Merges the present fields into the stored student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student id"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Invalid student data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [patch]
func (c *StudentController) PatchStudent(ctx *gin.Context) {
	var patch dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err, "Invalid student data")
		return
	}

	updated, err := c.studentService.Patch(ctx, ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// ReplaceStudent fully replaces a student
// @Summary Replace a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student id"
// @Param request body models.Student true "Full student record"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Invalid student data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) ReplaceStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		bindError(ctx, err, "Invalid student data")
		return
	}

	updated, err := c.studentService.Replace(ctx, ctx.Param("id"), student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted"})
}

// GetStudentTutors resolves the student's tutor references
// @Summary Resolve a student's tutors
// @Description Returns the tutors referenced by the student, in reference
// @Description order, plus any ids that no longer resolve
// @Tags students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} dto.ResolvedResponse[models.Tutor]
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/tutors [get]
func (c *StudentController) GetStudentTutors(ctx *gin.Context) {
	tutors, missing, err := c.studentService.ResolveTutors(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResolvedResponse[models.Tutor]{Content: tutors, Missing: missing})
}

// GetStudentEmergencyContacts resolves the student's emergency contact
// references
// @Summary Resolve a student's emergency contacts
// @Tags students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} dto.ResolvedResponse[models.EmergencyContact]
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/emergency-contacts [get]
func (c *StudentController) GetStudentEmergencyContacts(ctx *gin.Context) {
	contacts, missing, err := c.studentService.ResolveEmergencyContacts(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResolvedResponse[models.EmergencyContact]{Content: contacts, Missing: missing})
}
