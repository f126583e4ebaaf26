package remote

import (
	"context"
	"net/http"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// TutorStore forwards tutor operations to the upstream backend
type TutorStore struct {
	client *Client
}

// NewTutorStore creates a remote tutor store on the shared client.
func NewTutorStore(client *Client) *TutorStore {
	return &TutorStore{client: client}
}

// Search pushes the filters and pagination down to the upstream.
func (r *TutorStore) Search(ctx context.Context, filters models.TutorFilters, params search.Params) (search.Page[models.Tutor], error) {
	q := pageQuery(params)
	setIfPresent(q, "search", filters.SearchText)
	setIfPresent(q, "relationship", filters.Relationship)
	setBoolIfPresent(q, "isActive", filters.IsActive)
	return get[search.Page[models.Tutor]](ctx, r.client, "/tutors", q)
}

// GetByPublicID fetches one tutor.
func (r *TutorStore) GetByPublicID(ctx context.Context, publicID string) (models.Tutor, error) {
	return get[models.Tutor](ctx, r.client, "/tutors/"+publicID, nil)
}

// Create posts a new tutor.
func (r *TutorStore) Create(ctx context.Context, tutor models.Tutor) (models.Tutor, error) {
	return send[models.Tutor](ctx, r.client, http.MethodPost, "/tutors", tutor)
}

// Patch sends the sparse payload; the upstream applies merge semantics.
func (r *TutorStore) Patch(ctx context.Context, publicID string, patch dto.UpdateTutorRequest) (models.Tutor, error) {
	return send[models.Tutor](ctx, r.client, http.MethodPatch, "/tutors/"+publicID, patch)
}

// Replace sends the full record; the upstream applies replace semantics.
func (r *TutorStore) Replace(ctx context.Context, publicID string, tutor models.Tutor) (models.Tutor, error) {
	return send[models.Tutor](ctx, r.client, http.MethodPut, "/tutors/"+publicID, tutor)
}

// Delete deactivates the tutor upstream (soft delete).
func (r *TutorStore) Delete(ctx context.Context, publicID string) error {
	return r.client.remove(ctx, "/tutors/"+publicID)
}
