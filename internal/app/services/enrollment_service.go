package services

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
	"github.com/escolar/escolar-backend/internal/pkg/validation"
)

// EnrollmentService handles enrollment operations and the status state
// machine around them
type EnrollmentService struct {
	enrollmentRepo repositories.EnrollmentRepository
	studentRepo    repositories.StudentRepository
	groupRepo      repositories.GroupRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo repositories.EnrollmentRepository, studentRepo repositories.StudentRepository, groupRepo repositories.GroupRepository) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		groupRepo:      groupRepo,
	}
}

// Search returns the page of enrollments matching the filters.
func (s *EnrollmentService) Search(ctx context.Context, filters models.EnrollmentFilters, params search.Params) (search.Page[models.Enrollment], error) {
	return s.enrollmentRepo.Search(ctx, filters, params)
}

// ByStudent returns the enrollments of one student.
func (s *EnrollmentService) ByStudent(ctx context.Context, studentID string, params search.Params) (search.Page[models.Enrollment], error) {
	return s.enrollmentRepo.Search(ctx, models.EnrollmentFilters{StudentID: studentID}, params)
}

// ByGroup returns the enrollments of one group.
func (s *EnrollmentService) ByGroup(ctx context.Context, groupID string, params search.Params) (search.Page[models.Enrollment], error) {
	return s.enrollmentRepo.Search(ctx, models.EnrollmentFilters{GroupID: groupID}, params)
}

// GetByPublicID returns one enrollment.
func (s *EnrollmentService) GetByPublicID(ctx context.Context, publicID string) (models.Enrollment, error) {
	return s.enrollmentRepo.GetByPublicID(ctx, publicID)
}

// Create registers a new enrollment. The student and group must exist; their
// display names are denormalized onto the record. New enrollments start in
// PENDIENTE unless a valid initial status is given, and start active.
func (s *EnrollmentService) Create(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	student, err := s.studentRepo.GetByPublicID(ctx, enrollment.StudentPublicID)
	if err != nil {
		return models.Enrollment{}, err
	}
	group, err := s.groupRepo.GetByPublicID(ctx, enrollment.GroupPublicID)
	if err != nil {
		return models.Enrollment{}, err
	}

	if enrollment.Status == "" {
		enrollment.Status = models.EnrollmentPending
	} else if !enrollment.Status.Valid() {
		return models.Enrollment{}, apperrors.NewValidationError("unknown enrollment status " + string(enrollment.Status))
	}
	if !validation.IsISODate(enrollment.EnrollmentDate) {
		return models.Enrollment{}, apperrors.NewValidationError("enrollmentDate must be an ISO-8601 date")
	}
	if !validation.IsAcademicYear(enrollment.AcademicYear) {
		return models.Enrollment{}, apperrors.NewValidationError("academicYear must look like 2024-2025")
	}

	enrollment.StudentFullName = student.FirstName + " " + student.LastName
	enrollment.GroupFullName = group.Grade + " " + group.Name + " (" + group.AcademicYear + ")"
	enrollment.IsActive = enrollment.Status != models.EnrollmentCancelled

	return s.enrollmentRepo.Create(ctx, enrollment)
}

// Patch merges the present fields into the stored enrollment. Status is not
// part of the patchable surface; it only moves through the transitions.
func (s *EnrollmentService) Patch(ctx context.Context, publicID string, patch dto.UpdateEnrollmentRequest) (models.Enrollment, error) {
	if patch.EnrollmentDate != nil && !validation.IsISODate(*patch.EnrollmentDate) {
		return models.Enrollment{}, apperrors.NewValidationError("enrollmentDate must be an ISO-8601 date")
	}
	if patch.AcademicYear != nil && !validation.IsAcademicYear(*patch.AcademicYear) {
		return models.Enrollment{}, apperrors.NewValidationError("academicYear must look like 2024-2025")
	}
	return s.enrollmentRepo.Patch(ctx, publicID, patch)
}

// Replace swaps the stored enrollment for the given record. The stored status
// is preserved by the data source.
func (s *EnrollmentService) Replace(ctx context.Context, publicID string, enrollment models.Enrollment) (models.Enrollment, error) {
	return s.enrollmentRepo.Replace(ctx, publicID, enrollment)
}

// Delete removes the enrollment.
func (s *EnrollmentService) Delete(ctx context.Context, publicID string) error {
	return s.enrollmentRepo.Delete(ctx, publicID)
}

// Confirm moves a pending enrollment to CONFIRMADA.
func (s *EnrollmentService) Confirm(ctx context.Context, publicID string) (models.Enrollment, error) {
	return s.enrollmentRepo.Confirm(ctx, publicID)
}

// Complete moves a confirmed enrollment to COMPLETADA.
func (s *EnrollmentService) Complete(ctx context.Context, publicID string) (models.Enrollment, error) {
	return s.enrollmentRepo.Complete(ctx, publicID)
}

// Cancel moves a pending or confirmed enrollment to CANCELADA and deactivates
// it.
func (s *EnrollmentService) Cancel(ctx context.Context, publicID string) (models.Enrollment, error) {
	return s.enrollmentRepo.Cancel(ctx, publicID)
}

// CountByStatus tallies enrollments per lifecycle state. Every state appears
// in the result, including zero tallies.
func (s *EnrollmentService) CountByStatus(ctx context.Context) (map[models.EnrollmentStatus]int, error) {
	page, err := s.enrollmentRepo.Search(ctx, models.EnrollmentFilters{}, search.Params{Unpaginated: true})
	if err != nil {
		return nil, err
	}
	counts := map[models.EnrollmentStatus]int{
		models.EnrollmentPending:   0,
		models.EnrollmentConfirmed: 0,
		models.EnrollmentCompleted: 0,
		models.EnrollmentCancelled: 0,
	}
	for _, e := range page.Content {
		counts[e.Status]++
	}
	return counts, nil
}

// CountByYear tallies enrollments per academic year.
func (s *EnrollmentService) CountByYear(ctx context.Context) (map[string]int, error) {
	page, err := s.enrollmentRepo.Search(ctx, models.EnrollmentFilters{}, search.Params{Unpaginated: true})
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, e := range page.Content {
		counts[e.AcademicYear]++
	}
	return counts, nil
}
