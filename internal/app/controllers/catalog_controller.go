package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/middleware"
)

// CatalogController serves the static reference data and the dashboard
// aggregate
type CatalogController struct {
	gradeService     *services.GradeService
	dashboardService *services.DashboardService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(gradeService *services.GradeService, dashboardService *services.DashboardService) *CatalogController {
	return &CatalogController{
		gradeService:     gradeService,
		dashboardService: dashboardService,
	}
}

// GetGrades lists the grade catalog
// @Summary Get the grade catalog
// @Description Returns every grade with its available sections
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Grade
// @Router /grades [get]
func (c *CatalogController) GetGrades(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.gradeService.List())
}

// GetDashboardStats aggregates the admin landing page numbers
// @Summary Dashboard statistics
// @Tags catalog
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /dashboard/stats [get]
func (c *CatalogController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
