package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/middleware"
)

// EmergencyContactController handles emergency contact endpoints
type EmergencyContactController struct {
	contactService *services.EmergencyContactService
}

// NewEmergencyContactController creates a new EmergencyContactController
func NewEmergencyContactController(contactService *services.EmergencyContactService) *EmergencyContactController {
	return &EmergencyContactController{contactService: contactService}
}

// SearchEmergencyContacts lists emergency contacts
// @Summary Search emergency contacts
// @Tags emergency-contacts
// @Produce json
// @Param search query string false "Case-insensitive text over name, email, phone, document and relationship"
// @Param relationship query string false "Filter by relationship"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortDir query string false "asc or desc"
// @Param unpaginated query bool false "Return all matches in one page"
// @Success 200 {object} search.Page[models.EmergencyContact]
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /emergency-contacts [get]
func (c *EmergencyContactController) SearchEmergencyContacts(ctx *gin.Context) {
	params, ok := parseSearchParams(ctx)
	if !ok {
		return
	}
	isActive, ok := boolQuery(ctx, "isActive")
	if !ok {
		return
	}
	filters := models.EmergencyContactFilters{
		SearchText:   ctx.Query("search"),
		Relationship: ctx.Query("relationship"),
		IsActive:     isActive,
	}

	page, err := c.contactService.Search(ctx, filters, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetEmergencyContact retrieves one contact
// @Summary Get emergency contact by id
// @Tags emergency-contacts
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {object} models.EmergencyContact
// @Failure 404 {object} dto.ErrorResponse "Contact not found"
// @Router /emergency-contacts/{id} [get]
func (c *EmergencyContactController) GetEmergencyContact(ctx *gin.Context) {
	contact, err := c.contactService.GetByPublicID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, contact)
}

// CreateEmergencyContact registers a new contact
// @Summary Create an emergency contact
// @Tags emergency-contacts
// @Accept json
// @Produce json
// @Param request body models.EmergencyContact true "Contact data"
// @Success 201 {object} models.EmergencyContact
// @Failure 400 {object} dto.ErrorResponse "Invalid contact data"
// @Router /emergency-contacts [post]
func (c *EmergencyContactController) CreateEmergencyContact(ctx *gin.Context) {
	var contact models.EmergencyContact
	if err := ctx.ShouldBindJSON(&contact); err != nil {
		bindError(ctx, err, "Invalid contact data")
		return
	}

	created, err := c.contactService.Create(ctx, contact)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// PatchEmergencyContact partially updates a contact
// @Summary Patch an emergency contact
// @Tags emergency-contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact id"
// @Param request body dto.UpdateEmergencyContactRequest true "Fields to change"
// @Success 200 {object} models.EmergencyContact
// @Failure 400 {object} dto.ErrorResponse "Invalid contact data"
// @Failure 404 {object} dto.ErrorResponse "Contact not found"
// @Router /emergency-contacts/{id} [patch]
func (c *EmergencyContactController) PatchEmergencyContact(ctx *gin.Context) {
	var patch dto.UpdateEmergencyContactRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, err, "Invalid contact data")
		return
	}

	updated, err := c.contactService.Patch(ctx, ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// ReplaceEmergencyContact fully replaces a contact
// @Summary Replace an emergency contact
// @Tags emergency-contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact id"
// @Param request body models.EmergencyContact true "Full contact record"
// @Success 200 {object} models.EmergencyContact
// @Failure 400 {object} dto.ErrorResponse "Invalid contact data"
// @Failure 404 {object} dto.ErrorResponse "Contact not found"
// @Router /emergency-contacts/{id} [put]
func (c *EmergencyContactController) ReplaceEmergencyContact(ctx *gin.Context) {
	var contact models.EmergencyContact
	if err := ctx.ShouldBindJSON(&contact); err != nil {
		bindError(ctx, err, "Invalid contact data")
		return
	}

	updated, err := c.contactService.Replace(ctx, ctx.Param("id"), contact)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteEmergencyContact deactivates a contact
// @Summary Delete an emergency contact
// @Description Deactivates the contact; student references stay intact
// @Tags emergency-contacts
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Contact not found"
// @Router /emergency-contacts/{id} [delete]
func (c *EmergencyContactController) DeleteEmergencyContact(ctx *gin.Context) {
	if err := c.contactService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Emergency contact deactivated"})
}
