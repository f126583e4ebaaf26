package models

import "github.com/escolar/escolar-backend/internal/pkg/search"

// Academic levels a group can belong to
const (
	LevelMaternal   = "Maternal"
	LevelPreescolar = "Preescolar"
	LevelPrimaria   = "Primaria"
	LevelSecundaria = "Secundaria"
)

// Group represents an academic group (a grade section for one school year)
type Group struct {
	ID            int64  `json:"-"`
	PublicID      string `json:"id"`
	AcademicLevel string `json:"academicLevel" binding:"required" example:"Primaria"`
	Grade         string `json:"grade" binding:"required" example:"Primero"`
	Name          string `json:"name" binding:"required" example:"A"`
	AcademicYear  string `json:"academicYear" binding:"required" example:"2024-2025"`
	MaxStudents   int    `json:"maxStudents" binding:"required,gt=0"`
	StudentsCount int    `json:"studentsCount"`
	IsActive      bool   `json:"isActive"`
}

// Full reports whether the group has reached its capacity. This is a soft
// business rule surfaced to callers, not a constraint the model enforces.
func (g Group) Full() bool {
	return g.StudentsCount >= g.MaxStudents
}

// GroupFilters narrows a group search.
type GroupFilters struct {
	SearchText    string
	AcademicLevel string
	Grade         string
	Name          string
	AcademicYear  string
	IsActive      *bool
	AvailableOnly bool
}

// Matches reports whether the group satisfies every present filter.
// AvailableOnly keeps only groups with spare capacity.
func (f GroupFilters) Matches(g Group) bool {
	if f.AvailableOnly && g.Full() {
		return false
	}
	return search.MatchText(f.SearchText, g.Name, g.Grade, g.AcademicYear) &&
		search.MatchFold(f.AcademicLevel, g.AcademicLevel) &&
		search.MatchFold(f.Grade, g.Grade) &&
		search.MatchFold(f.Name, g.Name) &&
		search.MatchExact(f.AcademicYear, g.AcademicYear) &&
		search.MatchBool(f.IsActive, g.IsActive)
}

// GroupSchema lists the searchable and sortable attributes of a group.
var GroupSchema = search.Schema[Group]{
	SearchFields: func(g Group) []string {
		return []string{g.Name, g.Grade, g.AcademicYear}
	},
	SortKeys: map[string]func(Group) search.Value{
		"academicLevel": func(g Group) search.Value { return search.String(g.AcademicLevel) },
		"grade":         func(g Group) search.Value { return search.String(g.Grade) },
		"name":          func(g Group) search.Value { return search.String(g.Name) },
		"academicYear":  func(g Group) search.Value { return search.String(g.AcademicYear) },
		"maxStudents":   func(g Group) search.Value { return search.Int(g.MaxStudents) },
		"studentsCount": func(g Group) search.Value { return search.Int(g.StudentsCount) },
		"isActive":      func(g Group) search.Value { return search.Bool(g.IsActive) },
	},
}

// GroupStats aggregates occupancy over all groups
type GroupStats struct {
	TotalGroups      int     `json:"totalGroups"`
	TotalStudents    int     `json:"totalStudents"`
	FullGroups       int     `json:"fullGroups"`
	AverageOccupancy float64 `json:"averageOccupancy"` // percentage, two decimals
}
