package models

import (
	"fmt"

	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// EnrollmentStatus is the lifecycle state of an enrollment
type EnrollmentStatus string

// Enrollment states. PENDIENTE is the initial state; COMPLETADA and CANCELADA
// are terminal.
const (
	EnrollmentPending   EnrollmentStatus = "PENDIENTE"
	EnrollmentConfirmed EnrollmentStatus = "CONFIRMADA"
	EnrollmentCompleted EnrollmentStatus = "COMPLETADA"
	EnrollmentCancelled EnrollmentStatus = "CANCELADA"
)

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentPending, EnrollmentConfirmed, EnrollmentCompleted, EnrollmentCancelled:
		return true
	}
	return false
}

// transitions is the full transition table of the enrollment state machine.
var transitions = map[EnrollmentStatus][]EnrollmentStatus{
	EnrollmentPending:   {EnrollmentConfirmed, EnrollmentCancelled},
	EnrollmentConfirmed: {EnrollmentCompleted, EnrollmentCancelled},
	EnrollmentCompleted: {},
	EnrollmentCancelled: {},
}

// CanTransition reports whether the machine allows moving from s to target.
func (s EnrollmentStatus) CanTransition(target EnrollmentStatus) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Enrollment represents a student's registration into a group for one
// academic year
type Enrollment struct {
	ID              int64            `json:"-"`
	PublicID        string           `json:"id"`
	StudentPublicID string           `json:"studentId" binding:"required"`
	StudentFullName string           `json:"studentFullName,omitempty"`
	GroupPublicID   string           `json:"groupId" binding:"required"`
	GroupFullName   string           `json:"groupFullName,omitempty"`
	EnrollmentDate  string           `json:"enrollmentDate" example:"2024-02-01"` // ISO-8601 date
	AcademicYear    string           `json:"academicYear" binding:"required"`
	EnrollmentFee   float64          `json:"enrollmentFee"`
	Status          EnrollmentStatus `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	IsActive        bool             `json:"isActive"`
}

// Transition moves the enrollment to target or fails with an explicit
// InvalidStateTransition error. Cancelling also deactivates the record.
func (e *Enrollment) Transition(target EnrollmentStatus) error {
	if !e.Status.CanTransition(target) {
		return apperrors.NewInvalidTransitionError(
			fmt.Sprintf("cannot transition enrollment from %s to %s", e.Status, target))
	}
	e.Status = target
	if target == EnrollmentCancelled {
		e.IsActive = false
	}
	return nil
}

// Confirm moves a pending enrollment to CONFIRMADA.
func (e *Enrollment) Confirm() error { return e.Transition(EnrollmentConfirmed) }

// Complete moves a confirmed enrollment to COMPLETADA.
func (e *Enrollment) Complete() error { return e.Transition(EnrollmentCompleted) }

// Cancel moves a pending or confirmed enrollment to CANCELADA and
// deactivates it.
func (e *Enrollment) Cancel() error { return e.Transition(EnrollmentCancelled) }

// EnrollmentFilters narrows an enrollment search.
type EnrollmentFilters struct {
	SearchText   string
	Status       EnrollmentStatus
	AcademicYear string
	GroupID      string
	StudentID    string
	IsActive     *bool
}

// Matches reports whether the enrollment satisfies every present filter.
// Status matches case-sensitively; the status set is an enum, not free text.
func (f EnrollmentFilters) Matches(e Enrollment) bool {
	return search.MatchText(f.SearchText, e.StudentFullName, e.GroupFullName, e.AcademicYear) &&
		search.MatchExact(string(f.Status), string(e.Status)) &&
		search.MatchExact(f.AcademicYear, e.AcademicYear) &&
		search.MatchExact(f.GroupID, e.GroupPublicID) &&
		search.MatchExact(f.StudentID, e.StudentPublicID) &&
		search.MatchBool(f.IsActive, e.IsActive)
}

// EnrollmentSchema lists the searchable and sortable attributes of an
// enrollment.
var EnrollmentSchema = search.Schema[Enrollment]{
	SearchFields: func(e Enrollment) []string {
		return []string{e.StudentFullName, e.GroupFullName, e.AcademicYear}
	},
	SortKeys: map[string]func(Enrollment) search.Value{
		"studentFullName": func(e Enrollment) search.Value { return search.String(e.StudentFullName) },
		"groupFullName":   func(e Enrollment) search.Value { return search.String(e.GroupFullName) },
		"enrollmentDate":  func(e Enrollment) search.Value { return search.String(e.EnrollmentDate) },
		"academicYear":    func(e Enrollment) search.Value { return search.String(e.AcademicYear) },
		"enrollmentFee":   func(e Enrollment) search.Value { return search.Number(e.EnrollmentFee) },
		"status":          func(e Enrollment) search.Value { return search.String(string(e.Status)) },
		"isActive":        func(e Enrollment) search.Value { return search.Bool(e.IsActive) },
	},
}
