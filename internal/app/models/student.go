package models

import "github.com/escolar/escolar-backend/internal/pkg/search"

// Reference points at a related entity by its public id, together with the
// relationship label shown for the link (e.g. "Madre", "Médico"). The list a
// reference lives in is order-preserving and holds each public id at most once.
type Reference struct {
	PublicID     string `json:"id" binding:"required"`
	Relationship string `json:"relationship"`
}

// Student represents an enrolled or formerly enrolled pupil
type Student struct {
	ID             int64  `json:"-"`
	PublicID       string `json:"id" example:"6f1c0b2e-8c1d-4d3a-9f7e-0a1b2c3d4e5f"`
	FirstName      string `json:"firstName" binding:"required" example:"Ana"`
	LastName       string `json:"lastName" binding:"required" example:"García"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DateOfBirth    string `json:"dateOfBirth" example:"2015-03-15"` // ISO-8601 date
	Grade          string `json:"grade" binding:"required" example:"Primero"`
	Section        string `json:"section" example:"A"`
	ParentName     string `json:"parentName"`
	ParentPhone    string `json:"parentPhone"`
	ParentEmail    string `json:"parentEmail,omitempty"`
	Address        string `json:"address"`
	EnrollmentDate string `json:"enrollmentDate,omitempty"` // ISO-8601 date
	IsActive       bool   `json:"isActive"`

	// Relationship references, resolved on demand
	Tutors            []Reference `json:"tutors,omitempty"`
	EmergencyContacts []Reference `json:"emergencyContacts,omitempty"`
}

// StudentFilters narrows a student search. Every field is optional; a zero
// value means no constraint on that attribute.
type StudentFilters struct {
	SearchText string
	Grade      string
	Section    string
	IsActive   *bool
}

// Matches reports whether the student satisfies every present filter.
func (f StudentFilters) Matches(s Student) bool {
	return search.MatchText(f.SearchText, s.FirstName, s.LastName, s.Email, s.ParentName) &&
		search.MatchFold(f.Grade, s.Grade) &&
		search.MatchFold(f.Section, s.Section) &&
		search.MatchBool(f.IsActive, s.IsActive)
}

// StudentSchema lists the searchable and sortable attributes of a student.
var StudentSchema = search.Schema[Student]{
	SearchFields: func(s Student) []string {
		return []string{s.FirstName, s.LastName, s.Email, s.ParentName}
	},
	SortKeys: map[string]func(Student) search.Value{
		"firstName":      func(s Student) search.Value { return search.String(s.FirstName) },
		"lastName":       func(s Student) search.Value { return search.String(s.LastName) },
		"email":          func(s Student) search.Value { return search.String(s.Email) },
		"grade":          func(s Student) search.Value { return search.String(s.Grade) },
		"section":        func(s Student) search.Value { return search.String(s.Section) },
		"dateOfBirth":    func(s Student) search.Value { return search.String(s.DateOfBirth) },
		"enrollmentDate": func(s Student) search.Value { return search.String(s.EnrollmentDate) },
		"isActive":       func(s Student) search.Value { return search.Bool(s.IsActive) },
	},
}
