package memory

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// EnrollmentStore is the in-memory enrollment data source
type EnrollmentStore struct {
	records *Collection[models.Enrollment]
}

// NewEnrollmentStore creates an empty in-memory enrollment store
func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{
		records: NewCollection(
			func(e *models.Enrollment) (int64, string) { return e.ID, e.PublicID },
			func(e *models.Enrollment, id int64, publicID string) {
				e.ID = id
				e.PublicID = publicID
			},
		),
	}
}

// Search runs the filter/sort/paginate pipeline over all enrollments.
func (r *EnrollmentStore) Search(_ context.Context, filters models.EnrollmentFilters, params search.Params) (search.Page[models.Enrollment], error) {
	return r.records.Search(filters.Matches, models.EnrollmentSchema, params), nil
}

// GetByPublicID returns one enrollment by public id.
func (r *EnrollmentStore) GetByPublicID(_ context.Context, publicID string) (models.Enrollment, error) {
	e, ok := r.records.Find(publicID)
	if !ok {
		return models.Enrollment{}, apperrors.ErrEnrollmentNotFound
	}
	return e, nil
}

// Create stores a new enrollment.
func (r *EnrollmentStore) Create(_ context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	return r.records.Insert(enrollment), nil
}

// Patch merges the present fields of the request into the stored enrollment.
// Status is not patchable here; it only moves through the transition methods.
func (r *EnrollmentStore) Patch(_ context.Context, publicID string, patch dto.UpdateEnrollmentRequest) (models.Enrollment, error) {
	e, err := r.records.Mutate(publicID, func(e *models.Enrollment) error {
		patch.ApplyTo(e)
		return nil
	})
	if err != nil {
		return models.Enrollment{}, apperrors.ErrEnrollmentNotFound
	}
	return e, nil
}

// Replace swaps the stored enrollment for the given one, keeping its identity
// and status. A full replace does not bypass the state machine.
func (r *EnrollmentStore) Replace(_ context.Context, publicID string, enrollment models.Enrollment) (models.Enrollment, error) {
	e, err := r.records.Mutate(publicID, func(e *models.Enrollment) error {
		status := e.Status
		*e = enrollment
		e.Status = status
		return nil
	})
	if err != nil {
		return models.Enrollment{}, apperrors.ErrEnrollmentNotFound
	}
	return e, nil
}

// Delete removes the enrollment permanently.
func (r *EnrollmentStore) Delete(_ context.Context, publicID string) error {
	if err := r.records.Remove(publicID); err != nil {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// Confirm moves a pending enrollment to CONFIRMADA.
func (r *EnrollmentStore) Confirm(_ context.Context, publicID string) (models.Enrollment, error) {
	return r.transition(publicID, (*models.Enrollment).Confirm)
}

// Complete moves a confirmed enrollment to COMPLETADA.
func (r *EnrollmentStore) Complete(_ context.Context, publicID string) (models.Enrollment, error) {
	return r.transition(publicID, (*models.Enrollment).Complete)
}

// Cancel moves a pending or confirmed enrollment to CANCELADA and deactivates
// it.
func (r *EnrollmentStore) Cancel(_ context.Context, publicID string) (models.Enrollment, error) {
	return r.transition(publicID, (*models.Enrollment).Cancel)
}

func (r *EnrollmentStore) transition(publicID string, move func(*models.Enrollment) error) (models.Enrollment, error) {
	e, err := r.records.Mutate(publicID, move)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return models.Enrollment{}, apperrors.ErrEnrollmentNotFound
		}
		return models.Enrollment{}, err
	}
	return e, nil
}
