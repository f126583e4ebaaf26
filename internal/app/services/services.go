package services

import "github.com/escolar/escolar-backend/internal/app/repositories"

// Services holds all the business service instances
type Services struct {
	Student          *StudentService
	Tutor            *TutorService
	EmergencyContact *EmergencyContactService
	Group            *GroupService
	Enrollment       *EnrollmentService
	Payment          *PaymentService
	Grade            *GradeService
	Dashboard        *DashboardService
}

// NewServices initializes all services on top of the given data source.
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Student:          NewStudentService(repos.Students, repos.Tutors, repos.EmergencyContacts),
		Tutor:            NewTutorService(repos.Tutors),
		EmergencyContact: NewEmergencyContactService(repos.EmergencyContacts),
		Group:            NewGroupService(repos.Groups),
		Enrollment:       NewEnrollmentService(repos.Enrollments, repos.Students, repos.Groups),
		Payment:          NewPaymentService(repos.Payments, repos.Students),
		Grade:            NewGradeService(),
		Dashboard:        NewDashboardService(repos.Students, repos.Payments),
	}
}
