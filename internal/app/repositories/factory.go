package repositories

import (
	"time"

	"github.com/escolar/escolar-backend/internal/app/repositories/memory"
	"github.com/escolar/escolar-backend/internal/app/repositories/remote"
)

// NewMemoryRepositories initializes the in-process data source variant.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Students:          memory.NewStudentStore(),
		Tutors:            memory.NewTutorStore(),
		EmergencyContacts: memory.NewEmergencyContactStore(),
		Groups:            memory.NewGroupStore(),
		Enrollments:       memory.NewEnrollmentStore(),
		Payments:          memory.NewPaymentStore(),
	}
}

// NewRemoteRepositories initializes the HTTP data source variant against the
// backend at baseURL.
func NewRemoteRepositories(baseURL string, timeout time.Duration) *Repositories {
	client := remote.NewClient(baseURL, timeout)
	return &Repositories{
		Students:          remote.NewStudentStore(client),
		Tutors:            remote.NewTutorStore(client),
		EmergencyContacts: remote.NewEmergencyContactStore(client),
		Groups:            remote.NewGroupStore(client),
		Enrollments:       remote.NewEnrollmentStore(client),
		Payments:          remote.NewPaymentStore(client),
	}
}
