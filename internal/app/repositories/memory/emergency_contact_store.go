package memory

import (
	"context"
	"time"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// EmergencyContactStore is the in-memory emergency contact data source
type EmergencyContactStore struct {
	records *Collection[models.EmergencyContact]
}

// NewEmergencyContactStore creates an empty in-memory emergency contact store
func NewEmergencyContactStore() *EmergencyContactStore {
	return &EmergencyContactStore{
		records: NewCollection(
			func(c *models.EmergencyContact) (int64, string) { return c.ID, c.PublicID },
			func(c *models.EmergencyContact, id int64, publicID string) {
				c.ID = id
				c.PublicID = publicID
			},
		),
	}
}

// Search runs the filter/sort/paginate pipeline over all contacts.
func (r *EmergencyContactStore) Search(_ context.Context, filters models.EmergencyContactFilters, params search.Params) (search.Page[models.EmergencyContact], error) {
	return r.records.Search(filters.Matches, models.EmergencyContactSchema, params), nil
}

// GetByPublicID returns one contact by public id.
func (r *EmergencyContactStore) GetByPublicID(_ context.Context, publicID string) (models.EmergencyContact, error) {
	c, ok := r.records.Find(publicID)
	if !ok {
		return models.EmergencyContact{}, apperrors.ErrEmergencyContactNotFound
	}
	return c, nil
}

// Create stores a new contact, stamping creation time.
func (r *EmergencyContactStore) Create(_ context.Context, contact models.EmergencyContact) (models.EmergencyContact, error) {
	now := time.Now().UTC()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = now
	}
	contact.UpdatedAt = now
	return r.records.Insert(contact), nil
}

// Patch merges the present fields of the request into the stored contact.
func (r *EmergencyContactStore) Patch(_ context.Context, publicID string, patch dto.UpdateEmergencyContactRequest) (models.EmergencyContact, error) {
	c, err := r.records.Mutate(publicID, func(c *models.EmergencyContact) error {
		patch.ApplyTo(c)
		c.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return models.EmergencyContact{}, apperrors.ErrEmergencyContactNotFound
	}
	return c, nil
}

// Replace swaps the stored contact for the given one, keeping its identity and
// creation time.
func (r *EmergencyContactStore) Replace(_ context.Context, publicID string, contact models.EmergencyContact) (models.EmergencyContact, error) {
	c, err := r.records.Mutate(publicID, func(c *models.EmergencyContact) error {
		createdAt := c.CreatedAt
		*c = contact
		c.CreatedAt = createdAt
		c.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return models.EmergencyContact{}, apperrors.ErrEmergencyContactNotFound
	}
	return c, nil
}

// Delete deactivates the contact, matching the soft delete of tutors.
func (r *EmergencyContactStore) Delete(_ context.Context, publicID string) error {
	_, err := r.records.Mutate(publicID, func(c *models.EmergencyContact) error {
		c.IsActive = false
		c.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return apperrors.ErrEmergencyContactNotFound
	}
	return nil
}
