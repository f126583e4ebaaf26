package remote

import (
	"context"
	"net/http"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// EnrollmentStore forwards enrollment operations to the upstream backend
type EnrollmentStore struct {
	client *Client
}

// NewEnrollmentStore creates a remote enrollment store on the shared client.
func NewEnrollmentStore(client *Client) *EnrollmentStore {
	return &EnrollmentStore{client: client}
}

// Search pushes the filters and pagination down to the upstream.
func (r *EnrollmentStore) Search(ctx context.Context, filters models.EnrollmentFilters, params search.Params) (search.Page[models.Enrollment], error) {
	q := pageQuery(params)
	setIfPresent(q, "search", filters.SearchText)
	setIfPresent(q, "status", string(filters.Status))
	setIfPresent(q, "academicYear", filters.AcademicYear)
	setIfPresent(q, "groupId", filters.GroupID)
	setIfPresent(q, "studentId", filters.StudentID)
	setBoolIfPresent(q, "isActive", filters.IsActive)
	return get[search.Page[models.Enrollment]](ctx, r.client, "/enrollments", q)
}

// GetByPublicID fetches one enrollment.
func (r *EnrollmentStore) GetByPublicID(ctx context.Context, publicID string) (models.Enrollment, error) {
	return get[models.Enrollment](ctx, r.client, "/enrollments/"+publicID, nil)
}

// Create posts a new enrollment.
func (r *EnrollmentStore) Create(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	return send[models.Enrollment](ctx, r.client, http.MethodPost, "/enrollments", enrollment)
}

// Patch sends the sparse payload; the upstream applies merge semantics.
func (r *EnrollmentStore) Patch(ctx context.Context, publicID string, patch dto.UpdateEnrollmentRequest) (models.Enrollment, error) {
	return send[models.Enrollment](ctx, r.client, http.MethodPatch, "/enrollments/"+publicID, patch)
}

// Replace sends the full record; the upstream applies replace semantics.
func (r *EnrollmentStore) Replace(ctx context.Context, publicID string, enrollment models.Enrollment) (models.Enrollment, error) {
	return send[models.Enrollment](ctx, r.client, http.MethodPut, "/enrollments/"+publicID, enrollment)
}

// Delete removes the enrollment upstream.
func (r *EnrollmentStore) Delete(ctx context.Context, publicID string) error {
	return r.client.remove(ctx, "/enrollments/"+publicID)
}

// Confirm asks the upstream to run the PENDIENTE -> CONFIRMADA transition. A
// 409 from the upstream surfaces as an invalid transition error.
func (r *EnrollmentStore) Confirm(ctx context.Context, publicID string) (models.Enrollment, error) {
	return send[models.Enrollment](ctx, r.client, http.MethodPatch, "/enrollments/"+publicID+"/confirm", nil)
}

// Complete asks the upstream to run the CONFIRMADA -> COMPLETADA transition.
func (r *EnrollmentStore) Complete(ctx context.Context, publicID string) (models.Enrollment, error) {
	return send[models.Enrollment](ctx, r.client, http.MethodPatch, "/enrollments/"+publicID+"/complete", nil)
}

// Cancel asks the upstream to cancel and deactivate the enrollment.
func (r *EnrollmentStore) Cancel(ctx context.Context, publicID string) (models.Enrollment, error) {
	return send[models.Enrollment](ctx, r.client, http.MethodPatch, "/enrollments/"+publicID+"/cancel", nil)
}
