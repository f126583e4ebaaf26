package dto

import "github.com/escolar/escolar-backend/internal/app/models"

// Partial-update request bodies. Every field is a pointer so that absent JSON
// keys leave the stored value untouched (merge semantics); PATCH handlers bind
// these, PUT handlers bind the full model instead (replace semantics).

// UpdateStudentRequest is the sparse payload for PATCH /students/{id}
type UpdateStudentRequest struct {
	FirstName         *string             `json:"firstName,omitempty"`
	LastName          *string             `json:"lastName,omitempty"`
	Email             *string             `json:"email,omitempty"`
	Phone             *string             `json:"phone,omitempty"`
	DateOfBirth       *string             `json:"dateOfBirth,omitempty"`
	Grade             *string             `json:"grade,omitempty"`
	Section           *string             `json:"section,omitempty"`
	ParentName        *string             `json:"parentName,omitempty"`
	ParentPhone       *string             `json:"parentPhone,omitempty"`
	ParentEmail       *string             `json:"parentEmail,omitempty"`
	Address           *string             `json:"address,omitempty"`
	EnrollmentDate    *string             `json:"enrollmentDate,omitempty"`
	IsActive          *bool               `json:"isActive,omitempty"`
	Tutors            *[]models.Reference `json:"tutors,omitempty"`
	EmergencyContacts *[]models.Reference `json:"emergencyContacts,omitempty"`
}

// ApplyTo merges the present fields into s.
func (r UpdateStudentRequest) ApplyTo(s *models.Student) {
	applyString(r.FirstName, &s.FirstName)
	applyString(r.LastName, &s.LastName)
	applyString(r.Email, &s.Email)
	applyString(r.Phone, &s.Phone)
	applyString(r.DateOfBirth, &s.DateOfBirth)
	applyString(r.Grade, &s.Grade)
	applyString(r.Section, &s.Section)
	applyString(r.ParentName, &s.ParentName)
	applyString(r.ParentPhone, &s.ParentPhone)
	applyString(r.ParentEmail, &s.ParentEmail)
	applyString(r.Address, &s.Address)
	applyString(r.EnrollmentDate, &s.EnrollmentDate)
	applyBool(r.IsActive, &s.IsActive)
	if r.Tutors != nil {
		s.Tutors = *r.Tutors
	}
	if r.EmergencyContacts != nil {
		s.EmergencyContacts = *r.EmergencyContacts
	}
}

// UpdateTutorRequest is the sparse payload for PATCH /tutors/{id}
type UpdateTutorRequest struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Relationship   *string `json:"relationship,omitempty"`
	DocumentNumber *string `json:"documentNumber,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// ApplyTo merges the present fields into t.
func (r UpdateTutorRequest) ApplyTo(t *models.Tutor) {
	applyString(r.FirstName, &t.FirstName)
	applyString(r.LastName, &t.LastName)
	applyString(r.Email, &t.Email)
	applyString(r.Phone, &t.Phone)
	applyString(r.Address, &t.Address)
	applyString(r.Relationship, &t.Relationship)
	applyString(r.DocumentNumber, &t.DocumentNumber)
	applyBool(r.IsActive, &t.IsActive)
}

// UpdateEmergencyContactRequest is the sparse payload for
// PATCH /emergency-contacts/{id}
type UpdateEmergencyContactRequest struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Relationship   *string `json:"relationship,omitempty"`
	DocumentNumber *string `json:"documentNumber,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// ApplyTo merges the present fields into c.
func (r UpdateEmergencyContactRequest) ApplyTo(c *models.EmergencyContact) {
	applyString(r.FirstName, &c.FirstName)
	applyString(r.LastName, &c.LastName)
	applyString(r.Email, &c.Email)
	applyString(r.Phone, &c.Phone)
	applyString(r.Address, &c.Address)
	applyString(r.Relationship, &c.Relationship)
	applyString(r.DocumentNumber, &c.DocumentNumber)
	applyBool(r.IsActive, &c.IsActive)
}

// UpdateGroupRequest is the sparse payload for PATCH /groups/{id}
type UpdateGroupRequest struct {
	AcademicLevel *string `json:"academicLevel,omitempty"`
	Grade         *string `json:"grade,omitempty"`
	Name          *string `json:"name,omitempty"`
	AcademicYear  *string `json:"academicYear,omitempty"`
	MaxStudents   *int    `json:"maxStudents,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// ApplyTo merges the present fields into g.
func (r UpdateGroupRequest) ApplyTo(g *models.Group) {
	applyString(r.AcademicLevel, &g.AcademicLevel)
	applyString(r.Grade, &g.Grade)
	applyString(r.Name, &g.Name)
	applyString(r.AcademicYear, &g.AcademicYear)
	if r.MaxStudents != nil {
		g.MaxStudents = *r.MaxStudents
	}
	applyBool(r.IsActive, &g.IsActive)
}

// UpdateEnrollmentRequest is the sparse payload for PATCH /enrollments/{id}.
// Status changes go through the dedicated transition endpoints, not here.
type UpdateEnrollmentRequest struct {
	EnrollmentDate *string  `json:"enrollmentDate,omitempty"`
	AcademicYear   *string  `json:"academicYear,omitempty"`
	EnrollmentFee  *float64 `json:"enrollmentFee,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// ApplyTo merges the present fields into e.
func (r UpdateEnrollmentRequest) ApplyTo(e *models.Enrollment) {
	applyString(r.EnrollmentDate, &e.EnrollmentDate)
	applyString(r.AcademicYear, &e.AcademicYear)
	if r.EnrollmentFee != nil {
		e.EnrollmentFee = *r.EnrollmentFee
	}
	applyString(r.Notes, &e.Notes)
}

// UpdatePaymentRequest is the sparse payload for PATCH /payments/{id}
type UpdatePaymentRequest struct {
	Amount        *float64              `json:"amount,omitempty"`
	PaymentDate   *string               `json:"paymentDate,omitempty"`
	Description   *string               `json:"description,omitempty"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod,omitempty"`
	Status        *models.PaymentStatus `json:"status,omitempty"`
	DueDate       *string               `json:"dueDate,omitempty"`
	Period        *string               `json:"period,omitempty"`
	PeriodType    *models.PeriodType    `json:"periodType,omitempty"`
}

// ApplyTo merges the present fields into p.
func (r UpdatePaymentRequest) ApplyTo(p *models.Payment) {
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	applyString(r.PaymentDate, &p.PaymentDate)
	applyString(r.Description, &p.Description)
	if r.PaymentMethod != nil {
		p.PaymentMethod = *r.PaymentMethod
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	applyString(r.DueDate, &p.DueDate)
	applyString(r.Period, &p.Period)
	if r.PeriodType != nil {
		p.PeriodType = *r.PeriodType
	}
}

// AdjustStudentCountRequest is the payload for
// PATCH /groups/{id}/student-count
type AdjustStudentCountRequest struct {
	Increment int `json:"increment" binding:"required"`
}

func applyString(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(src *bool, dst *bool) {
	if src != nil {
		*dst = *src
	}
}
