package remote

import (
	"context"
	"net/http"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// StudentStore forwards student operations to the upstream backend
type StudentStore struct {
	client *Client
}

// NewStudentStore creates a remote student store on the shared client.
func NewStudentStore(client *Client) *StudentStore {
	return &StudentStore{client: client}
}

// Search pushes the filters and pagination down to the upstream search
// endpoint and returns its envelope unchanged.
func (r *StudentStore) Search(ctx context.Context, filters models.StudentFilters, params search.Params) (search.Page[models.Student], error) {
	q := pageQuery(params)
	setIfPresent(q, "search", filters.SearchText)
	setIfPresent(q, "grade", filters.Grade)
	setIfPresent(q, "section", filters.Section)
	setBoolIfPresent(q, "isActive", filters.IsActive)
	return get[search.Page[models.Student]](ctx, r.client, "/students", q)
}

// GetByPublicID fetches one student.
func (r *StudentStore) GetByPublicID(ctx context.Context, publicID string) (models.Student, error) {
	return get[models.Student](ctx, r.client, "/students/"+publicID, nil)
}

// Create posts a new student.
func (r *StudentStore) Create(ctx context.Context, student models.Student) (models.Student, error) {
	return send[models.Student](ctx, r.client, http.MethodPost, "/students", student)
}

// Patch sends the sparse payload; the upstream applies merge semantics.
func (r *StudentStore) Patch(ctx context.Context, publicID string, patch dto.UpdateStudentRequest) (models.Student, error) {
	return send[models.Student](ctx, r.client, http.MethodPatch, "/students/"+publicID, patch)
}

// Replace sends the full record; the upstream applies replace semantics.
func (r *StudentStore) Replace(ctx context.Context, publicID string, student models.Student) (models.Student, error) {
	return send[models.Student](ctx, r.client, http.MethodPut, "/students/"+publicID, student)
}

// Delete removes the student upstream.
func (r *StudentStore) Delete(ctx context.Context, publicID string) error {
	return r.client.remove(ctx, "/students/"+publicID)
}
