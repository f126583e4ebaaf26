package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/middleware"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// GroupController handles academic group endpoints
type GroupController struct {
	groupService *services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService *services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// SearchGroups lists groups
// @Summary Search groups
// @Tags groups
// @Produce json
// @Param search query string false "Case-insensitive text over name, grade and academic year"
// @Param academicLevel query string false "Filter by academic level"
// @Param grade query string false "Filter by grade"
// @Param name query string false "Filter by section name"
// @Param academicYear query string false "Filter by academic year"
// @Param isActive query bool false "Filter by active flag"
// @Param availableOnly query bool false "Keep only groups with spare capacity"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortDir query string false "asc or desc"
// @Param unpaginated query bool false "Return all matches in one page"
// @Success 200 {object} search.Page[models.Group]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /groups [get]
func (c *GroupController) SearchGroups(ctx *gin.Context) {
	filters, params, ok := c.parseGroupQuery(ctx)
	if !ok {
		return
	}
	page, err := c.groupService.Search(ctx, filters, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetAvailableGroups lists active groups with spare capacity
// @Summary Search available groups
// @Description Like the group search, but restricted to active groups whose
// @Description occupancy is below capacity
// @Tags groups
// @Produce json
// @Param academicYear query string false "Filter by academic year"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} search.Page[models.Group]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /groups/available [get]
func (c *GroupController) GetAvailableGroups(ctx *gin.Context) {
	filters, params, ok := c.parseGroupQuery(ctx)
	if !ok {
		return
	}
	page, err := c.groupService.Available(ctx, filters, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetGroupStats aggregates occupancy over all groups
// @Summary Group occupancy statistics
// @Tags groups
// @Produce json
// @Success 200 {object} models.GroupStats
// @Router /groups/stats [get]
func (c *GroupController) GetGroupStats(ctx *gin.Context) {
	stats, err := c.groupService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetGroup retrieves one group
// @Summary Get group by id
// @Tags groups
// @Produce json
// @Param id path string true "Group id"
// @Success 200 {object} models.Group
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	group, err := c.groupService.GetByPublicID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, group)
}

// CreateGroup registers a new group
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body models.Group true "Group data"
// @Success 201 {object} models.Group
// @Failure 400 {object} dto.ErrorResponse "Invalid group data"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var group models.Group
	if err := ctx.ShouldBindJSON(&group); err != nil {
		bindError(ctx, err, "Invalid group data")
		return
	}

	created, err := c.groupService.Create(ctx, group)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// PatchGroup partially updates a group
// @Summary Patch a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group id"
// @Param request body dto.UpdateGroupRequest true "Fields to change"
// @Success 200 {object} models.Group
// @Failure 400 {object} dto.ErrorResponse "Invalid group data"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [patch]
func (c *GroupController) PatchGroup(ctx *gin.Context) {
	var patch dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err, "Invalid group data")
		return
	}

	updated, err := c.groupService.Patch(ctx, ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// ReplaceGroup fully replaces a group
// @Summary Replace a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group id"
// @Param request body models.Group true "Full group record"
// @Success 200 {object} models.Group
// @Failure 400 {object} dto.ErrorResponse "Invalid group data"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [put]
func (c *GroupController) ReplaceGroup(ctx *gin.Context) {
	var group models.Group
	if err := ctx.ShouldBindJSON(&group); err != nil {
		bindError(ctx, err, "Invalid group data")
		return
	}

	updated, err := c.groupService.Replace(ctx, ctx.Param("id"), group)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteGroup removes a group
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param id path string true "Group id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	if err := c.groupService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Group deleted"})
}

// AdjustStudentCount shifts the group's occupancy counter
// @Summary Adjust a group's student count
// @Description Adds increment (which may be negative) to the occupancy
// @Description counter, clamping at zero
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group id"
// @Param request body dto.AdjustStudentCountRequest true "Signed increment"
// @Success 200 {object} models.Group
// @Failure 400 {object} dto.ErrorResponse "Invalid increment"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/student-count [patch]
func (c *GroupController) AdjustStudentCount(ctx *gin.Context) {
	var req dto.AdjustStudentCountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid increment")
		return
	}

	group, err := c.groupService.AdjustStudentCount(ctx, ctx.Param("id"), req.Increment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, group)
}

func (c *GroupController) parseGroupQuery(ctx *gin.Context) (models.GroupFilters, search.Params, bool) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return models.GroupFilters{}, params, false
	}
	isActive, ok := boolQuery(ctx, "isActive")
	if !ok {
		return models.GroupFilters{}, params, false
	}
	filters := models.GroupFilters{
		SearchText:    ctx.Query("search"),
		AcademicLevel: ctx.Query("academicLevel"),
		Grade:         ctx.Query("grade"),
		Name:          ctx.Query("name"),
		AcademicYear:  ctx.Query("academicYear"),
		IsActive:      isActive,
	}
	if raw := ctx.Query("availableOnly"); raw != "" {
		availableOnly, err := strconv.ParseBool(raw)
		if err != nil {
			badParam(ctx, "availableOnly", "must be a boolean")
			return filters, params, false
		}
		filters.AvailableOnly = availableOnly
	}
	return filters, params, true
}
