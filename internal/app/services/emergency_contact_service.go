package services

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// EmergencyContactService handles emergency contact operations
type EmergencyContactService struct {
	contactRepo repositories.EmergencyContactRepository
}

// NewEmergencyContactService creates a new emergency contact service instance
func NewEmergencyContactService(contactRepo repositories.EmergencyContactRepository) *EmergencyContactService {
	return &EmergencyContactService{contactRepo: contactRepo}
}

// Search returns the page of contacts matching the filters. Deactivated
// contacts are excluded unless the caller filters on isActive explicitly.
func (s *EmergencyContactService) Search(ctx context.Context, filters models.EmergencyContactFilters, params search.Params) (search.Page[models.EmergencyContact], error) {
	if filters.IsActive == nil {
		active := true
		filters.IsActive = &active
	}
	return s.contactRepo.Search(ctx, filters, params)
}

// GetByPublicID returns one contact.
func (s *EmergencyContactService) GetByPublicID(ctx context.Context, publicID string) (models.EmergencyContact, error) {
	return s.contactRepo.GetByPublicID(ctx, publicID)
}

// Create registers a new contact. New contacts start active.
func (s *EmergencyContactService) Create(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error) {
	contact.IsActive = true
	return s.contactRepo.Create(ctx, contact)
}

// Patch merges the present fields into the stored contact.
func (s *EmergencyContactService) Patch(ctx context.Context, publicID string, patch dto.UpdateEmergencyContactRequest) (models.EmergencyContact, error) {
	return s.contactRepo.Patch(ctx, publicID, patch)
}

// Replace swaps the stored contact for the given record.
func (s *EmergencyContactService) Replace(ctx context.Context, publicID string, contact models.EmergencyContact) (models.EmergencyContact, error) {
	return s.contactRepo.Replace(ctx, publicID, contact)
}

// Delete deactivates the contact, mirroring tutor deletion.
func (s *EmergencyContactService) Delete(ctx context.Context, publicID string) error {
	return s.contactRepo.Delete(ctx, publicID)
}
