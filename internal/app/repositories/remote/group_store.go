package remote

import (
	"context"
	"net/http"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// GroupStore forwards academic group operations to the upstream backend
type GroupStore struct {
	client *Client
}

// NewGroupStore creates a remote group store on the shared client.
func NewGroupStore(client *Client) *GroupStore {
	return &GroupStore{client: client}
}

// Search pushes the filters and pagination down to the upstream.
func (r *GroupStore) Search(ctx context.Context, filters models.GroupFilters, params search.Params) (search.Page[models.Group], error) {
	q := pageQuery(params)
	setIfPresent(q, "search", filters.SearchText)
	setIfPresent(q, "academicLevel", filters.AcademicLevel)
	setIfPresent(q, "grade", filters.Grade)
	setIfPresent(q, "name", filters.Name)
	setIfPresent(q, "academicYear", filters.AcademicYear)
	setBoolIfPresent(q, "isActive", filters.IsActive)
	if filters.AvailableOnly {
		q.Set("availableOnly", "true")
	}
	return get[search.Page[models.Group]](ctx, r.client, "/groups", q)
}

// GetByPublicID fetches one group.
func (r *GroupStore) GetByPublicID(ctx context.Context, publicID string) (models.Group, error) {
	return get[models.Group](ctx, r.client, "/groups/"+publicID, nil)
}

// Create posts a new group.
func (r *GroupStore) Create(ctx context.Context, group models.Group) (models.Group, error) {
	return send[models.Group](ctx, r.client, http.MethodPost, "/groups", group)
}

// Patch sends the sparse payload; the upstream applies merge semantics.
func (r *GroupStore) Patch(ctx context.Context, publicID string, patch dto.UpdateGroupRequest) (models.Group, error) {
	return send[models.Group](ctx, r.client, http.MethodPatch, "/groups/"+publicID, patch)
}

// Replace sends the full record; the upstream applies replace semantics.
func (r *GroupStore) Replace(ctx context.Context, publicID string, group models.Group) (models.Group, error) {
	return send[models.Group](ctx, r.client, http.MethodPut, "/groups/"+publicID, group)
}

// Delete removes the group upstream.
func (r *GroupStore) Delete(ctx context.Context, publicID string) error {
	return r.client.remove(ctx, "/groups/"+publicID)
}

// AdjustStudentCount shifts the occupancy counter upstream.
func (r *GroupStore) AdjustStudentCount(ctx context.Context, publicID string, increment int) (models.Group, error) {
	body := dto.AdjustStudentCountRequest{Increment: increment}
	return send[models.Group](ctx, r.client, http.MethodPatch, "/groups/"+publicID+"/student-count", body)
}
