package models

import (
	"time"

	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// Tutor represents a legal guardian or tutor linked to students
type Tutor struct {
	ID             int64     `json:"-"`
	PublicID       string    `json:"id"`
	FirstName      string    `json:"firstName" binding:"required"`
	LastName       string    `json:"lastName" binding:"required"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone" binding:"required"`
	Address        string    `json:"address"`
	Relationship   string    `json:"relationship"` // e.g. "Madre", "Padre"
	DocumentNumber string    `json:"documentNumber,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TutorFilters narrows a tutor search.
type TutorFilters struct {
	SearchText   string
	Relationship string
	IsActive     *bool
}

// Matches reports whether the tutor satisfies every present filter.
func (f TutorFilters) Matches(t Tutor) bool {
	return search.MatchText(f.SearchText, t.FirstName, t.LastName, t.Email, t.Phone, t.DocumentNumber) &&
		search.MatchExact(f.Relationship, t.Relationship) &&
		search.MatchBool(f.IsActive, t.IsActive)
}

// TutorSchema lists the searchable and sortable attributes of a tutor.
var TutorSchema = search.Schema[Tutor]{
	SearchFields: func(t Tutor) []string {
		return []string{t.FirstName, t.LastName, t.Email, t.Phone, t.DocumentNumber}
	},
	SortKeys: map[string]func(Tutor) search.Value{
		"firstName":    func(t Tutor) search.Value { return search.String(t.FirstName) },
		"lastName":     func(t Tutor) search.Value { return search.String(t.LastName) },
		"email":        func(t Tutor) search.Value { return search.String(t.Email) },
		"relationship": func(t Tutor) search.Value { return search.String(t.Relationship) },
		"createdAt":    func(t Tutor) search.Value { return search.String(t.CreatedAt.Format(time.RFC3339)) },
		"isActive":     func(t Tutor) search.Value { return search.Bool(t.IsActive) },
	},
}
