package repositories

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// The repository interfaces are the data source adapter boundary. Services
// are written against them and behave identically whether the backing store
// is the in-process memory variant or the remote HTTP variant; the variant
// only decides how much of the search pipeline is pushed down.

// StudentRepository is the data source for students
type StudentRepository interface {
	Search(ctx context.Context, filters models.StudentFilters, params search.Params) (search.Page[models.Student], error)
	GetByPublicID(ctx context.Context, publicID string) (models.Student, error)
	Create(ctx context.Context, student models.Student) (models.Student, error)
	Patch(ctx context.Context, publicID string, patch dto.UpdateStudentRequest) (models.Student, error)
	Replace(ctx context.Context, publicID string, student models.Student) (models.Student, error)
	Delete(ctx context.Context, publicID string) error
}

// TutorRepository is the data source for tutors. Delete is soft: the record
// is deactivated, not removed.
type TutorRepository interface {
	Search(ctx context.Context, filters models.TutorFilters, params search.Params) (search.Page[models.Tutor], error)
	GetByPublicID(ctx context.Context, publicID string) (models.Tutor, error)
	Create(ctx context.Context, tutor models.Tutor) (models.Tutor, error)
	Patch(ctx context.Context, publicID string, patch dto.UpdateTutorRequest) (models.Tutor, error)
	Replace(ctx context.Context, publicID string, tutor models.Tutor) (models.Tutor, error)
	Delete(ctx context.Context, publicID string) error
}

// EmergencyContactRepository is the data source for emergency contacts.
// Delete is soft, like tutors.
type EmergencyContactRepository interface {
	Search(ctx context.Context, filters models.EmergencyContactFilters, params search.Params) (search.Page[models.EmergencyContact], error)
	GetByPublicID(ctx context.Context, publicID string) (models.EmergencyContact, error)
	Create(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error)
	Patch(ctx context.Context, publicID string, patch dto.UpdateEmergencyContactRequest) (models.EmergencyContact, error)
	Replace(ctx context.Context, publicID string, contact models.EmergencyContact) (models.EmergencyContact, error)
	Delete(ctx context.Context, publicID string) error
}

// GroupRepository is the data source for academic groups
type GroupRepository interface {
	Search(ctx context.Context, filters models.GroupFilters, params search.Params) (search.Page[models.Group], error)
	GetByPublicID(ctx context.Context, publicID string) (models.Group, error)
	Create(ctx context.Context, group models.Group) (models.Group, error)
	Patch(ctx context.Context, publicID string, patch dto.UpdateGroupRequest) (models.Group, error)
	Replace(ctx context.Context, publicID string, group models.Group) (models.Group, error)
	Delete(ctx context.Context, publicID string) error
	// AdjustStudentCount shifts the derived occupancy counter, clamped at zero.
	AdjustStudentCount(ctx context.Context, publicID string, increment int) (models.Group, error)
}

// EnrollmentRepository is the data source for enrollments. The transition
// methods enforce the status state machine in whichever variant backs them.
type EnrollmentRepository interface {
	Search(ctx context.Context, filters models.EnrollmentFilters, params search.Params) (search.Page[models.Enrollment], error)
	GetByPublicID(ctx context.Context, publicID string) (models.Enrollment, error)
	Create(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error)
	Patch(ctx context.Context, publicID string, patch dto.UpdateEnrollmentRequest) (models.Enrollment, error)
	Replace(ctx context.Context, publicID string, enrollment models.Enrollment) (models.Enrollment, error)
	Delete(ctx context.Context, publicID string) error
	Confirm(ctx context.Context, publicID string) (models.Enrollment, error)
	Complete(ctx context.Context, publicID string) (models.Enrollment, error)
	Cancel(ctx context.Context, publicID string) (models.Enrollment, error)
}

// PaymentRepository is the data source for payments
type PaymentRepository interface {
	Search(ctx context.Context, filters models.PaymentFilters, params search.Params) (search.Page[models.Payment], error)
	GetByPublicID(ctx context.Context, publicID string) (models.Payment, error)
	Create(ctx context.Context, payment models.Payment) (models.Payment, error)
	Patch(ctx context.Context, publicID string, patch dto.UpdatePaymentRequest) (models.Payment, error)
	Replace(ctx context.Context, publicID string, payment models.Payment) (models.Payment, error)
	Delete(ctx context.Context, publicID string) error
}

// Repositories holds one repository per entity type
type Repositories struct {
	Students          StudentRepository
	Tutors            TutorRepository
	EmergencyContacts EmergencyContactRepository
	Groups            GroupRepository
	Enrollments       EnrollmentRepository
	Payments          PaymentRepository
}
