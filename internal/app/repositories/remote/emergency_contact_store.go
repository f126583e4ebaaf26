package remote

import (
	"context"
	"net/http"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// EmergencyContactStore forwards emergency contact operations to the upstream
// backend
type EmergencyContactStore struct {
	client *Client
}

// NewEmergencyContactStore creates a remote emergency contact store on the
// shared client.
func NewEmergencyContactStore(client *Client) *EmergencyContactStore {
	return &EmergencyContactStore{client: client}
}

// Search pushes the filters and pagination down to the upstream.
func (r *EmergencyContactStore) Search(ctx context.Context, filters models.EmergencyContactFilters, params search.Params) (search.Page[models.EmergencyContact], error) {
	q := pageQuery(params)
	setIfPresent(q, "search", filters.SearchText)
	setIfPresent(q, "relationship", filters.Relationship)
	setBoolIfPresent(q, "isActive", filters.IsActive)
	return get[search.Page[models.EmergencyContact]](ctx, r.client, "/emergency-contacts", q)
}

// GetByPublicID fetches one contact.
func (r *EmergencyContactStore) GetByPublicID(ctx context.Context, publicID string) (models.EmergencyContact, error) {
	return get[models.EmergencyContact](ctx, r.client, "/emergency-contacts/"+publicID, nil)
}

// Create posts a new contact.
func (r *EmergencyContactStore) Create(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error) {
	return send[models.EmergencyContact](ctx, r.client, http.MethodPost, "/emergency-contacts", contact)
}

// Patch sends the sparse payload; the upstream applies merge semantics.
func (r *EmergencyContactStore) Patch(ctx context.Context, publicID string, patch dto.UpdateEmergencyContactRequest) (models.EmergencyContact, error) {
	return send[models.EmergencyContact](ctx, r.client, http.MethodPatch, "/emergency-contacts/"+publicID, patch)
}

// Replace sends the full record; the upstream applies replace semantics.
func (r *EmergencyContactStore) Replace(ctx context.Context, publicID string, contact models.EmergencyContact) (models.EmergencyContact, error) {
	return send[models.EmergencyContact](ctx, r.client, http.MethodPut, "/emergency-contacts/"+publicID, contact)
}

// Delete deactivates the contact upstream (soft delete).
func (r *EmergencyContactStore) Delete(ctx context.Context, publicID string) error {
	return r.client.remove(ctx, "/emergency-contacts/"+publicID)
}
