package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/middleware"
)

// PaymentController handles payment endpoints
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// SearchPayments lists payments
// @Summary Search payments
// @Tags payments
// @Produce json
// @Param search query string false "Case-insensitive text over description and period"
// @Param status query string false "Filter by status (pendiente, pagado, vencido)"
// @Param paymentMethod query string false "Filter by method (efectivo, transferencia, tarjeta)"
// @Param studentId query string false "Filter by student id"
// @Param dueFrom query string false "Earliest due date (inclusive, ISO-8601)"
// @Param dueTo query string false "Latest due date (inclusive, ISO-8601)"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortDir query string false "asc or desc"
// @Param unpaginated query bool false "Return all matches in one page"
// @Success 200 {object} search.Page[models.Payment]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /payments [get]
func (c *PaymentController) SearchPayments(ctx *gin.Context) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return
	}

	status := models.PaymentStatus(ctx.Query("status"))
	if status != "" && !status.Valid() {
		badParam(ctx, "status", "must be one of pendiente, pagado, vencido")
		return
	}
	method := models.PaymentMethod(ctx.Query("paymentMethod"))
	if method != "" && !method.Valid() {
		badParam(ctx, "paymentMethod", "must be one of efectivo, transferencia, tarjeta")
		return
	}

	filters := models.PaymentFilters{
		SearchText:    ctx.Query("search"),
		Status:        status,
		PaymentMethod: method,
		StudentID:     ctx.Query("studentId"),
		DueFrom:       ctx.Query("dueFrom"),
		DueTo:         ctx.Query("dueTo"),
	}

	page, err := c.paymentService.Search(ctx, filters, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetPaymentsByStudent lists one student's payments
// @Summary Get payments by student
// @Tags payments
// @Produce json
// @Param id path string true "Student id"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} search.Page[models.Payment]
// @Router /payments/student/{id} [get]
func (c *PaymentController) GetPaymentsByStudent(ctx *gin.Context) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return
	}
	page, err := c.paymentService.ByStudent(ctx, ctx.Param("id"), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetPayment retrieves one payment
// @Summary Get payment by id
// @Tags payments
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} models.Payment
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /payments/{id} [get]
func (c *PaymentController) GetPayment(ctx *gin.Context) {
	payment, err := c.paymentService.GetByPublicID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payment)
}

// CreatePayment registers a new charge
// @Summary Create a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body models.Payment true "Payment data"
// @Success 201 {object} models.Payment
// @Failure 400 {object} dto.ErrorResponse "Invalid payment data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /payments [post]
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	var payment models.Payment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		bindError(ctx, err, "Invalid payment data")
		return
	}

	created, err := c.paymentService.Create(ctx, payment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// PatchPayment partially updates a payment
// @Summary Patch a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment id"
// @Param request body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} models.Payment
// @Failure 400 {object} dto.ErrorResponse "Invalid payment data"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /payments/{id} [patch]
func (c *PaymentController) PatchPayment(ctx *gin.Context) {
	var patch dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err, "Invalid payment data")
		return
	}

	updated, err := c.paymentService.Patch(ctx, ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// ReplacePayment fully replaces a payment
// @Summary Replace a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment id"
// @Param request body models.Payment true "Full payment record"
// @Success 200 {object} models.Payment
// @Failure 400 {object} dto.ErrorResponse "Invalid payment data"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /payments/{id} [put]
func (c *PaymentController) ReplacePayment(ctx *gin.Context) {
	var payment models.Payment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		bindError(ctx, err, "Invalid payment data")
		return
	}

	updated, err := c.paymentService.Replace(ctx, ctx.Param("id"), payment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeletePayment removes a payment
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /payments/{id} [delete]
func (c *PaymentController) DeletePayment(ctx *gin.Context) {
	if err := c.paymentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Payment deleted"})
}
