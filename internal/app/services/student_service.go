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

// StudentService handles student-related operations
type StudentService struct {
	studentRepo repositories.StudentRepository
	tutorRepo   repositories.TutorRepository
	contactRepo repositories.EmergencyContactRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, tutorRepo repositories.TutorRepository, contactRepo repositories.EmergencyContactRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		tutorRepo:   tutorRepo,
		contactRepo: contactRepo,
	}
}

// Search returns the page of students matching the filters.
func (s *StudentService) Search(ctx context.Context, filters models.StudentFilters, params search.Params) (search.Page[models.Student], error) {
	return s.studentRepo.Search(ctx, filters, params)
}

// GetByPublicID returns one student.
func (s *StudentService) GetByPublicID(ctx context.Context, publicID string) (models.Student, error) {
	return s.studentRepo.GetByPublicID(ctx, publicID)
}

// Create registers a new student. New students start active unless the caller
// says otherwise via PUT later; reference lists must not repeat an id.
func (s *StudentService) Create(ctx context.Context, student models.Student) (models.Student, error) {
	if err := s.validateStudent(&student); err != nil {
		return models.Student{}, err
	}
	student.IsActive = true
	return s.studentRepo.Create(ctx, student)
}

// Patch merges the present fields into the stored student.
func (s *StudentService) Patch(ctx context.Context, publicID string, patch dto.UpdateStudentRequest) (models.Student, error) {
	if patch.DateOfBirth != nil && !validation.IsISODate(*patch.DateOfBirth) {
		return models.Student{}, apperrors.NewValidationError("dateOfBirth must be an ISO-8601 date")
	}
	if patch.EnrollmentDate != nil && !validation.IsISODate(*patch.EnrollmentDate) {
		return models.Student{}, apperrors.NewValidationError("enrollmentDate must be an ISO-8601 date")
	}
	if patch.Email != nil && !validation.IsEmail(*patch.Email) {
		return models.Student{}, apperrors.NewValidationError("email is not a valid address")
	}
	if patch.Tutors != nil {
		if err := validateReferences(*patch.Tutors, "tutors"); err != nil {
			return models.Student{}, err
		}
	}
	if patch.EmergencyContacts != nil {
		if err := validateReferences(*patch.EmergencyContacts, "emergencyContacts"); err != nil {
			return models.Student{}, err
		}
	}
	return s.studentRepo.Patch(ctx, publicID, patch)
}

// Replace swaps the stored student for the given record.
func (s *StudentService) Replace(ctx context.Context, publicID string, student models.Student) (models.Student, error) {
	if err := s.validateStudent(&student); err != nil {
		return models.Student{}, err
	}
	return s.studentRepo.Replace(ctx, publicID, student)
}

// Delete removes the student.
func (s *StudentService) Delete(ctx context.Context, publicID string) error {
	return s.studentRepo.Delete(ctx, publicID)
}

// ResolveTutors hydrates the student's tutor references in list order,
// reporting ids that no longer resolve.
func (s *StudentService) ResolveTutors(ctx context.Context, publicID string) ([]models.Tutor, []string, error) {
	student, err := s.studentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, nil, err
	}
	return resolveReferences(ctx, student.Tutors, s.tutorRepo.GetByPublicID)
}

// ResolveEmergencyContacts hydrates the student's emergency contact
// references in list order, reporting ids that no longer resolve.
func (s *StudentService) ResolveEmergencyContacts(ctx context.Context, publicID string) ([]models.EmergencyContact, []string, error) {
	student, err := s.studentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, nil, err
	}
	return resolveReferences(ctx, student.EmergencyContacts, s.contactRepo.GetByPublicID)
}

func (s *StudentService) validateStudent(student *models.Student) error {
	if !validation.IsISODate(student.DateOfBirth) {
		return apperrors.NewValidationError("dateOfBirth must be an ISO-8601 date")
	}
	if !validation.IsISODate(student.EnrollmentDate) {
		return apperrors.NewValidationError("enrollmentDate must be an ISO-8601 date")
	}
	if !validation.IsEmail(student.Email) {
		return apperrors.NewValidationError("email is not a valid address")
	}
	if err := validateReferences(student.Tutors, "tutors"); err != nil {
		return err
	}
	return validateReferences(student.EmergencyContacts, "emergencyContacts")
}
