package models

import (
	"time"

	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// EmergencyContact represents a person to call when a student's tutors are
// unreachable (family doctor, relative, family friend)
type EmergencyContact struct {
	ID             int64     `json:"-"`
	PublicID       string    `json:"id"`
	FirstName      string    `json:"firstName" binding:"required"`
	LastName       string    `json:"lastName" binding:"required"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone" binding:"required"`
	Address        string    `json:"address"`
	Relationship   string    `json:"relationship"` // e.g. "Médico", "Familiar"
	DocumentNumber string    `json:"documentNumber,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EmergencyContactFilters narrows an emergency contact search.
type EmergencyContactFilters struct {
	SearchText   string
	Relationship string
	IsActive     *bool
}

// Matches reports whether the contact satisfies every present filter.
func (f EmergencyContactFilters) Matches(c EmergencyContact) bool {
	return search.MatchText(f.SearchText, c.FirstName, c.LastName, c.Email, c.Phone, c.DocumentNumber, c.Relationship) &&
		search.MatchExact(f.Relationship, c.Relationship) &&
		search.MatchBool(f.IsActive, c.IsActive)
}

// EmergencyContactSchema lists the searchable and sortable attributes of an
// emergency contact.
var EmergencyContactSchema = search.Schema[EmergencyContact]{
	SearchFields: func(c EmergencyContact) []string {
		return []string{c.FirstName, c.LastName, c.Email, c.Phone, c.DocumentNumber, c.Relationship}
	},
	SortKeys: map[string]func(EmergencyContact) search.Value{
		"firstName":    func(c EmergencyContact) search.Value { return search.String(c.FirstName) },
		"lastName":     func(c EmergencyContact) search.Value { return search.String(c.LastName) },
		"email":        func(c EmergencyContact) search.Value { return search.String(c.Email) },
		"relationship": func(c EmergencyContact) search.Value { return search.String(c.Relationship) },
		"createdAt":    func(c EmergencyContact) search.Value { return search.String(c.CreatedAt.Format(time.RFC3339)) },
		"isActive":     func(c EmergencyContact) search.Value { return search.Bool(c.IsActive) },
	},
}
