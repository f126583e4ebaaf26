package services

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// TutorService handles tutor-related operations
type TutorService struct {
	tutorRepo repositories.TutorRepository
}

// NewTutorService creates a new tutor service instance
func NewTutorService(tutorRepo repositories.TutorRepository) *TutorService {
	return &TutorService{tutorRepo: tutorRepo}
}

// Search returns the page of tutors matching the filters. Deactivated tutors
// are excluded unless the caller filters on isActive explicitly.
func (s *TutorService) Search(ctx context.Context, filters models.TutorFilters, params search.Params) (search.Page[models.Tutor], error) {
	if filters.IsActive == nil {
		active := true
		filters.IsActive = &active
	}
	return s.tutorRepo.Search(ctx, filters, params)
}

// GetByPublicID returns one tutor.
func (s *TutorService) GetByPublicID(ctx context.Context, publicID string) (models.Tutor, error) {
	return s.tutorRepo.GetByPublicID(ctx, publicID)
}

// Create registers a new tutor. New tutors start active.
func (s *TutorService) Create(ctx context.Context, tutor models.Tutor) (models.Tutor, error) {
	tutor.IsActive = true
	return s.tutorRepo.Create(ctx, tutor)
}

// Patch merges the present fields into the stored tutor.
func (s *TutorService) Patch(ctx context.Context, publicID string, patch dto.UpdateTutorRequest) (models.Tutor, error) {
	return s.tutorRepo.Patch(ctx, publicID, patch)
}

// Replace swaps the stored tutor for the given record.
func (s *TutorService) Replace(ctx context.Context, publicID string, tutor models.Tutor) (models.Tutor, error) {
	return s.tutorRepo.Replace(ctx, publicID, tutor)
}

// Delete deactivates the tutor. Student records keep their references; the
// resolution endpoints simply return a deactivated tutor as stored.
func (s *TutorService) Delete(ctx context.Context, publicID string) error {
	return s.tutorRepo.Delete(ctx, publicID)
}
