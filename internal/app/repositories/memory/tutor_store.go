package memory

import (
	"context"
	"time"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// TutorStore is the in-memory tutor data source
type TutorStore struct {
	records *Collection[models.Tutor]
}

// NewTutorStore creates an empty in-memory tutor store
func NewTutorStore() *TutorStore {
	return &TutorStore{
		records: NewCollection(
			func(t *models.Tutor) (int64, string) { return t.ID, t.PublicID },
			func(t *models.Tutor, id int64, publicID string) {
				t.ID = id
				t.PublicID = publicID
			},
		),
	}
}

// Search runs the filter/sort/paginate pipeline over all tutors.
func (r *TutorStore) Search(_ context.Context, filters models.TutorFilters, params search.Params) (search.Page[models.Tutor], error) {
	return r.records.Search(filters.Matches, models.TutorSchema, params), nil
}

// GetByPublicID returns one tutor by public id.
func (r *TutorStore) GetByPublicID(_ context.Context, publicID string) (models.Tutor, error) {
	t, ok := r.records.Find(publicID)
	if !ok {
		return models.Tutor{}, apperrors.ErrTutorNotFound
	}
	return t, nil
}

// Create stores a new tutor, stamping creation time.
func (r *TutorStore) Create(_ context.Context, tutor models.Tutor) (models.Tutor, error) {
	now := time.Now().UTC()
	if tutor.CreatedAt.IsZero() {
		tutor.CreatedAt = now
	}
	tutor.UpdatedAt = now
	return r.records.Insert(tutor), nil
}

// Patch merges the present fields of the request into the stored tutor.
func (r *TutorStore) Patch(_ context.Context, publicID string, patch dto.UpdateTutorRequest) (models.Tutor, error) {
	t, err := r.records.Mutate(publicID, func(t *models.Tutor) error {
		patch.ApplyTo(t)
		t.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return models.Tutor{}, apperrors.ErrTutorNotFound
	}
	return t, nil
}

// Replace swaps the stored tutor for the given one, keeping its identity and
// creation time.
func (r *TutorStore) Replace(_ context.Context, publicID string, tutor models.Tutor) (models.Tutor, error) {
	t, err := r.records.Mutate(publicID, func(t *models.Tutor) error {
		createdAt := t.CreatedAt
		*t = tutor
		t.CreatedAt = createdAt
		t.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return models.Tutor{}, apperrors.ErrTutorNotFound
	}
	return t, nil
}

// Delete deactivates the tutor. Tutors are referenced from student records, so
// the record itself is kept.
func (r *TutorStore) Delete(_ context.Context, publicID string) error {
	_, err := r.records.Mutate(publicID, func(t *models.Tutor) error {
		t.IsActive = false
		t.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return apperrors.ErrTutorNotFound
	}
	return nil
}
