package memory

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// StudentStore is the in-memory student data source
type StudentStore struct {
	records *Collection[models.Student]
}

// NewStudentStore creates an empty in-memory student store
func NewStudentStore() *StudentStore {
	return &StudentStore{
		records: NewCollection(
			func(s *models.Student) (int64, string) { return s.ID, s.PublicID },
			func(s *models.Student, id int64, publicID string) {
				s.ID = id
				s.PublicID = publicID
			},
		),
	}
}

// Search runs the filter/sort/paginate pipeline over all students.
func (r *StudentStore) Search(_ context.Context, filters models.StudentFilters, params search.Params) (search.Page[models.Student], error) {
	return r.records.Search(filters.Matches, models.StudentSchema, params), nil
}

// GetByPublicID returns one student by public id.
func (r *StudentStore) GetByPublicID(_ context.Context, publicID string) (models.Student, error) {
	s, ok := r.records.Find(publicID)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return s, nil
}

// Create stores a new student.
func (r *StudentStore) Create(_ context.Context, student models.Student) (models.Student, error) {
	return r.records.Insert(student), nil
}

// Patch merges the present fields of the request into the stored student.
func (r *StudentStore) Patch(_ context.Context, publicID string, patch dto.UpdateStudentRequest) (models.Student, error) {
	s, err := r.records.Mutate(publicID, func(s *models.Student) error {
		patch.ApplyTo(s)
		return nil
	})
	if err != nil {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return s, nil
}

// Replace swaps the stored student for the given one, keeping its identity.
func (r *StudentStore) Replace(_ context.Context, publicID string, student models.Student) (models.Student, error) {
	s, err := r.records.Replace(publicID, student)
	if err != nil {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return s, nil
}

// Delete removes the student permanently.
func (r *StudentStore) Delete(_ context.Context, publicID string) error {
	if err := r.records.Remove(publicID); err != nil {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
